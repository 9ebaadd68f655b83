// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

// Package presenter turns domain values into display-ready view models for
// the HTML templates. All numbers and labels going into a page pass through
// here, so the templates never format or localize anything themselves.
package presenter

import (
	"strconv"

	"github.com/vorlif/spreak"

	"github.com/decarbonization/outside/internal/aqi"
	"github.com/decarbonization/outside/internal/meteo"
	"github.com/decarbonization/outside/internal/units"
)

// Presenter builds view models for one request's locale and unit system.
type Presenter struct {
	fmtr      *units.Formatter
	localizer *spreak.Localizer
}

func New(fmtr *units.Formatter, localizer *spreak.Localizer) *Presenter {
	return &Presenter{fmtr: fmtr, localizer: localizer}
}

// Formatter exposes the underlying formatter for templates that need it.
func (p *Presenter) Formatter() *units.Formatter {
	return p.fmtr
}

// ReadingView is one pollutant's formatted reading.
type ReadingView struct {
	Pollutant string
	AQI       string
	Category  string
	ClassName string
}

// AirQualityView is the current air quality card.
type AirQualityView struct {
	AsOf          string
	ReportingArea string
	StateCode     string
	AQI           string
	Category      string
	ClassName     string
	Readings      []ReadingView
}

// AirDayView is one forecasted day in the air quality outlook.
type AirDayView struct {
	Date          string
	ReportingArea string
	StateCode     string
	ActionDay     bool
	Discussion    string
	Readings      []ReadingView
}

// AirForecastView is the multi-day air quality outlook.
type AirForecastView struct {
	Days []AirDayView
}

// ConditionsView is the current weather card. Every field is a finished,
// localized string ready to print.
type ConditionsView struct {
	AsOf               string
	Condition          string
	Icon               string
	IconWithSpace      string
	ClassName          string
	Temperature        string
	FeelsLike          string
	Humidity           string
	Pressure           string
	PressureTrendGlyph string
	WindSpeed          string
	WindDirection      string
	WindShort          string
	WindClass          string
	WindGlyph          string
	CloudCover         string
	Visibility         string
	UVIndex            string
	UVRisk             string
	UVClass            string
	PrecipProbability  string
	Precipitation      string
	PrecipClass        string
	Sunrise            string
	Sunset             string
	MoonPhase          string
	MoonClass          string
}

// CurrentAirQuality builds the current air quality card.
func (p *Presenter) CurrentAirQuality(aq *aqi.CurrentAirQuality) AirQualityView {
	return AirQualityView{
		AsOf:          p.fmtr.Time(aq.AsOf),
		ReportingArea: aq.ReportingArea,
		StateCode:     aq.StateCode,
		AQI:           p.aqiValue(aq.AQI),
		Category:      p.categoryLabel(aq.Category),
		ClassName:     categoryClass(aq.Category),
		Readings:      p.readingViews(aq.Readings),
	}
}

// AirForecast builds the multi-day air quality outlook.
func (p *Presenter) AirForecast(fc *aqi.Forecast) AirForecastView {
	days := make([]AirDayView, 0, len(fc.Days))
	for _, day := range fc.Days {
		days = append(days, AirDayView{
			Date:          p.fmtr.Date(day.ForecastStart),
			ReportingArea: day.ReportingArea,
			StateCode:     day.StateCode,
			ActionDay:     day.ActionDay,
			Discussion:    day.Discussion,
			Readings:      p.readingViews(day.Readings),
		})
	}
	return AirForecastView{Days: days}
}

// CurrentConditions builds the current weather card. previousPressure is last
// hour's barometric reading used for the trend glyph; pass an absent
// measurement when none is available.
func (p *Presenter) CurrentConditions(cond *meteo.Conditions, previousPressure units.Measurement,
	daylight meteo.Daylight, moonPhase string,
) ConditionsView {
	icon := meteo.ConditionIcon(cond.Code, cond.IsDay)
	view := ConditionsView{
		AsOf:               p.fmtr.Time(cond.AsOf),
		Condition:          p.localizer.Get(meteo.ConditionName(cond.Code)),
		Icon:               icon,
		IconWithSpace:      EmojiWithSpace(icon),
		ClassName:          meteo.ConditionClass(cond.Code, cond.IsDay),
		Temperature:        p.fmtr.Temperature(cond.Temperature),
		FeelsLike:          p.fmtr.Temperature(cond.ApparentTemperature),
		Humidity:           p.fmtr.Percentage(cond.Humidity),
		Pressure:           p.fmtr.Pressure(cond.PressureMSL),
		PressureTrendGlyph: cond.PressureTrend(previousPressure).Glyph(),
		WindSpeed:          p.fmtr.Speed(cond.WindSpeed),
		CloudCover:         p.fmtr.Percentage(cond.CloudCover),
		Visibility:         p.fmtr.Visibility(cond.Visibility),
		UVIndex:            p.fmtr.UVIndex(cond.UVIndex),
		PrecipProbability:  p.fmtr.Percentage(cond.PrecipProbability),
		Precipitation:      p.fmtr.Depth(cond.Precipitation),
		Sunrise:            p.fmtr.Time(daylight.Sunrise),
		Sunset:             p.fmtr.Time(daylight.Sunset),
		MoonPhase:          p.moonPhaseLabel(moonPhase),
		MoonClass:          meteo.MoonPhaseClass(moonPhase),
	}
	p.applyWind(&view, cond.WindDirection)
	p.applyUVRisk(&view, cond.UVIndex)
	p.applyPrecipIntensity(&view, cond.Precipitation)
	return view
}

func (p *Presenter) readingViews(readings []aqi.Reading) []ReadingView {
	views := make([]ReadingView, 0, len(readings))
	for _, r := range readings {
		views = append(views, ReadingView{
			Pollutant: pollutantName(r.Pollutant),
			AQI:       p.aqiValue(r.AQI),
			Category:  p.categoryLabel(r.Category),
			ClassName: categoryClass(r.Category),
		})
	}
	return views
}

// aqiValue renders an index value, mapping the provider's -1 "no data"
// sentinel to the localized placeholder.
func (p *Presenter) aqiValue(value int) string {
	if value < 0 {
		return p.fmtr.Placeholder()
	}
	return strconv.Itoa(value)
}

func (p *Presenter) applyWind(view *ConditionsView, direction units.Measurement) {
	if !direction.IsSet() {
		view.WindDirection = p.fmtr.Placeholder()
		view.WindShort = p.fmtr.Placeholder()
		return
	}
	point, err := units.CompassPointFor(direction.Value())
	if err != nil {
		view.WindDirection = p.fmtr.Placeholder()
		view.WindShort = p.fmtr.Placeholder()
		return
	}
	view.WindDirection = p.fmtr.CompassLabel(point)
	view.WindShort = point.ShortLabel()
	view.WindClass = point.ClassName()
	view.WindGlyph = point.Glyph()
}

func (p *Presenter) applyUVRisk(view *ConditionsView, index units.Measurement) {
	if !index.IsSet() {
		view.UVRisk = p.fmtr.Placeholder()
		return
	}
	risk, err := units.UVRiskFor(index.Value())
	if err != nil {
		view.UVRisk = p.fmtr.Placeholder()
		return
	}
	view.UVRisk = p.fmtr.UVRiskLabel(risk)
	view.UVClass = risk.ClassName()
}

func (p *Presenter) applyPrecipIntensity(view *ConditionsView, depth units.Measurement) {
	if !depth.IsSet() {
		return
	}
	intensity, err := units.PrecipIntensityFor(depth.Value())
	if err != nil {
		return
	}
	view.PrecipClass = intensity.ClassName()
}
