// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

// Package aqi declares the normalized air quality domain entities and the
// rewriters that derive them from raw AirNow responses.
package aqi

import (
	"time"

	"github.com/decarbonization/outside/internal/airnow"
)

// Pollutant identifies the measured pollutant of a reading. Values are copied
// verbatim from the provider's ParameterName field.
type Pollutant string

const (
	Ozone           Pollutant = "O3"
	FineParticles   Pollutant = "PM2.5"
	CoarseParticles Pollutant = "PM10"
)

// Category is the provider's 1-7 severity bucket for a reading. 7 marks a
// reading the provider could not categorize.
type Category int

const (
	CategoryGood Category = iota + 1
	CategoryModerate
	CategoryUnhealthyForSensitiveGroups
	CategoryUnhealthy
	CategoryVeryUnhealthy
	CategoryHazardous
	CategoryUnavailable
)

// Reading is a single pollutant's AQI and category for one place and time
// period. AQI values are copied through unchanged, including the provider's
// -1 "unavailable" sentinel.
type Reading struct {
	Pollutant Pollutant `json:"pollutant"`
	Category  Category  `json:"category"`
	AQI       int       `json:"aqi"`
}

// Location is a latitude/longitude pair in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CurrentAirQuality is the normalized view of a current observation response.
// AQI and Category are the rounded arithmetic means of all contributing
// readings; Readings preserves the provider's entry order.
type CurrentAirQuality struct {
	AsOf          time.Time `json:"asOf"`
	TimeZone      string    `json:"timeZone"`
	Location      Location  `json:"location"`
	ReportingArea string    `json:"reportingArea"`
	StateCode     string    `json:"stateCode"`
	AQI           int       `json:"aqi"`
	Category      Category  `json:"category"`
	Readings      []Reading `json:"readings"`
}

// ForecastDay is one forecasted calendar day. ForecastEnd is always exactly
// one day after ForecastStart.
type ForecastDay struct {
	ForecastStart time.Time `json:"forecastStart"`
	ForecastEnd   time.Time `json:"forecastEnd"`
	Location      Location  `json:"location"`
	ReportingArea string    `json:"reportingArea"`
	StateCode     string    `json:"stateCode"`
	Readings      []Reading `json:"readings"`
	ActionDay     bool      `json:"actionDay"`
	Discussion    string    `json:"discussion"`
}

// Forecast is the normalized view of a forecast response. Days are ordered by
// first appearance of their forecast date in the raw response.
type Forecast struct {
	Days []ForecastDay `json:"days"`
}

func readingFromObservation(entry airnow.ObservationEntry) Reading {
	return Reading{
		Pollutant: Pollutant(entry.ParameterName),
		Category:  Category(entry.Category.Number),
		AQI:       entry.AQI,
	}
}

func readingFromForecast(entry airnow.ForecastEntry) Reading {
	return Reading{
		Pollutant: Pollutant(entry.ParameterName),
		Category:  Category(entry.Category.Number),
		AQI:       entry.AQI,
	}
}
