// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

// Package meteo fetches current weather conditions from Open-Meteo and
// normalizes them into canonical-unit measurements.
package meteo

import (
	"context"
	"fmt"
	"time"

	"github.com/hectormalot/omgo"

	"github.com/decarbonization/outside/internal/units"
)

// Conditions is the normalized view of the weather at one place and time.
// All measurements are in canonical units: Celsius, km/h, millibars, meters,
// millimeters and degrees from north. Fields the provider did not report are
// absent measurements.
type Conditions struct {
	AsOf      time.Time
	Latitude  float64
	Longitude float64
	Code      int
	IsDay     bool

	Temperature         units.Measurement
	ApparentTemperature units.Measurement
	Humidity            units.Measurement
	PressureMSL         units.Measurement
	PreviousPressureMSL units.Measurement
	WindSpeed           units.Measurement
	WindDirection       units.Measurement
	CloudCover          units.Measurement
	Visibility          units.Measurement
	UVIndex             units.Measurement
	PrecipProbability   units.Measurement
	Precipitation       units.Measurement
}

// PressureTrend derives the barometric trend from the previous hour's
// reading. Missing measurements yield a steady trend.
func (c Conditions) PressureTrend(previous units.Measurement) units.PressureTrend {
	if !c.PressureMSL.IsSet() || !previous.IsSet() {
		return units.PressureSteady
	}
	switch {
	case c.PressureMSL.Value() > previous.Value():
		return units.PressureRising
	case c.PressureMSL.Value() < previous.Value():
		return units.PressureFalling
	default:
		return units.PressureSteady
	}
}

// hourlyMetrics are requested in canonical units so no conversion happens at
// the fetch boundary.
var hourlyMetrics = []string{
	"temperature_2m", "apparent_temperature", "weather_code", "is_day",
	"wind_speed_10m", "wind_direction_10m", "relative_humidity_2m",
	"pressure_msl", "cloud_cover", "visibility", "uv_index",
	"precipitation_probability", "precipitation",
}

// Client fetches conditions through the Open-Meteo API.
type Client struct {
	om omgo.Client
}

// New returns a new Open-Meteo backed conditions client. An empty baseURL
// keeps the library's default endpoint.
func New(baseURL string) (*Client, error) {
	om, err := omgo.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create Open-Meteo client: %w", err)
	}
	if baseURL != "" {
		om.URL = baseURL
	}
	return &Client{om: om}, nil
}

// Current fetches the current conditions for the given coordinates.
func (c *Client) Current(ctx context.Context, latitude, longitude float64) (*Conditions, error) {
	location, err := omgo.NewLocation(latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to create Open-Meteo location: %w", err)
	}

	opts := &omgo.Options{
		Timezone:          "auto",
		TemperatureUnit:   "celsius",
		WindspeedUnit:     "kmh",
		PrecipitationUnit: "mm",
		HourlyMetrics:     hourlyMetrics,
	}
	forecast, err := c.om.Forecast(ctx, location, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	return conditionsFrom(forecast), nil
}

// conditionsFrom normalizes an Open-Meteo forecast into Conditions. The
// current weather block carries the headline values; the remaining metrics
// come from the hourly series at the current hour, when present.
func conditionsFrom(forecast *omgo.Forecast) *Conditions {
	cw := forecast.CurrentWeather
	conditions := &Conditions{
		AsOf:          cw.Time.Time,
		Latitude:      forecast.Latitude,
		Longitude:     forecast.Longitude,
		Code:          int(cw.WeatherCode),
		Temperature:   units.NewMeasurement(cw.Temperature),
		WindSpeed:     units.NewMeasurement(cw.WindSpeed),
		WindDirection: units.NewMeasurement(cw.WindDirection),
	}

	idx := -1
	hour := cw.Time.Time.Truncate(time.Hour)
	for i, t := range forecast.HourlyTimes {
		if t.Equal(hour) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return conditions
	}

	conditions.IsDay = hourlyValue(forecast, "is_day", idx).Value() == 1
	conditions.ApparentTemperature = hourlyValue(forecast, "apparent_temperature", idx)
	conditions.PressureMSL = hourlyValue(forecast, "pressure_msl", idx)
	if idx > 0 {
		conditions.PreviousPressureMSL = hourlyValue(forecast, "pressure_msl", idx-1)
	}
	conditions.Visibility = hourlyValue(forecast, "visibility", idx)
	conditions.UVIndex = hourlyValue(forecast, "uv_index", idx)
	conditions.Precipitation = hourlyValue(forecast, "precipitation", idx)
	// Fractions arrive as 0-100 percentages and are stored as [0,1] values.
	if humidity := hourlyValue(forecast, "relative_humidity_2m", idx); humidity.IsSet() {
		conditions.Humidity = units.NewMeasurement(humidity.Value() / 100)
	}
	if cover := hourlyValue(forecast, "cloud_cover", idx); cover.IsSet() {
		conditions.CloudCover = units.NewMeasurement(cover.Value() / 100)
	}
	if chance := hourlyValue(forecast, "precipitation_probability", idx); chance.IsSet() {
		conditions.PrecipProbability = units.NewMeasurement(chance.Value() / 100)
	}

	return conditions
}

func hourlyValue(forecast *omgo.Forecast, metric string, idx int) units.Measurement {
	values, ok := forecast.HourlyMetrics[metric]
	if !ok || idx >= len(values) {
		return units.Absent()
	}
	return units.NewMeasurement(values[idx])
}
