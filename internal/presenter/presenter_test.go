// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/decarbonization/outside/internal/aqi"
	"github.com/decarbonization/outside/internal/i18n"
	"github.com/decarbonization/outside/internal/meteo"
	"github.com/decarbonization/outside/internal/units"
)

func testPresenter(t *testing.T, system units.System, locale string) *Presenter {
	t.Helper()
	bundle, err := i18n.New("en")
	if err != nil {
		t.Fatalf("failed to create i18n bundle: %s", err)
	}
	localizer := bundle.Localizer(locale)
	fmtr := units.NewFormatter(system, language.Make(locale), localizer)
	return New(fmtr, localizer)
}

func TestCurrentAirQuality(t *testing.T) {
	asOf := time.Date(2024, 6, 27, 21, 0, 0, 0, time.UTC)
	current := &aqi.CurrentAirQuality{
		AsOf:          asOf,
		TimeZone:      "PST",
		ReportingArea: "Oakland",
		StateCode:     "CA",
		AQI:           29,
		Category:      aqi.CategoryGood,
		Readings: []aqi.Reading{
			{Pollutant: aqi.Ozone, Category: aqi.CategoryGood, AQI: 34},
			{Pollutant: aqi.FineParticles, Category: aqi.CategoryModerate, AQI: 23},
		},
	}

	t.Run("formats the card", func(t *testing.T) {
		p := testPresenter(t, units.Metric, "en")
		view := p.CurrentAirQuality(current)
		if view.AQI != "29" {
			t.Errorf("expected AQI 29, got %q", view.AQI)
		}
		if view.Category != "Good" {
			t.Errorf("expected category Good, got %q", view.Category)
		}
		if view.ClassName != "aqi-good" {
			t.Errorf("expected class aqi-good, got %q", view.ClassName)
		}
		if view.ReportingArea != "Oakland" || view.StateCode != "CA" {
			t.Errorf("unexpected area %q/%q", view.ReportingArea, view.StateCode)
		}
		if len(view.Readings) != 2 {
			t.Fatalf("expected 2 readings, got %d", len(view.Readings))
		}
		if view.Readings[0].Pollutant != "Ozone" {
			t.Errorf("expected Ozone, got %q", view.Readings[0].Pollutant)
		}
		if view.Readings[1].Category != "Moderate" {
			t.Errorf("expected Moderate, got %q", view.Readings[1].Category)
		}
	})
	t.Run("maps the no-data sentinel to the placeholder", func(t *testing.T) {
		p := testPresenter(t, units.Metric, "en")
		missing := *current
		missing.AQI = -1
		view := p.CurrentAirQuality(&missing)
		if view.AQI != "Unavailable" {
			t.Errorf("expected Unavailable, got %q", view.AQI)
		}
	})
	t.Run("localizes the placeholder", func(t *testing.T) {
		p := testPresenter(t, units.Metric, "de")
		missing := *current
		missing.AQI = -1
		view := p.CurrentAirQuality(&missing)
		if view.AQI != "Nicht verfügbar" {
			t.Errorf("expected German placeholder, got %q", view.AQI)
		}
	})
}

func TestAirForecast(t *testing.T) {
	t.Run("renders each day in order", func(t *testing.T) {
		p := testPresenter(t, units.Metric, "en")
		forecast := &aqi.Forecast{
			Days: []aqi.ForecastDay{
				{
					ForecastStart: time.Date(2024, 6, 27, 0, 0, 0, 0, time.UTC),
					ForecastEnd:   time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC),
					ReportingArea: "Oakland",
					StateCode:     "CA",
					ActionDay:     true,
					Discussion:    "Smoke from wildfires.",
					Readings:      []aqi.Reading{{Pollutant: aqi.Ozone, Category: aqi.CategoryGood, AQI: 30}},
				},
				{
					ForecastStart: time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC),
					ForecastEnd:   time.Date(2024, 6, 29, 0, 0, 0, 0, time.UTC),
					ReportingArea: "Oakland",
					StateCode:     "CA",
				},
			},
		}
		view := p.AirForecast(forecast)
		if len(view.Days) != 2 {
			t.Fatalf("expected 2 days, got %d", len(view.Days))
		}
		if !view.Days[0].ActionDay {
			t.Error("expected first day to be an action day")
		}
		if view.Days[0].Discussion != "Smoke from wildfires." {
			t.Errorf("unexpected discussion %q", view.Days[0].Discussion)
		}
		if view.Days[1].ActionDay {
			t.Error("expected second day not to be an action day")
		}
	})
}

func TestCurrentConditions(t *testing.T) {
	conditions := &meteo.Conditions{
		AsOf:              time.Date(2024, 6, 27, 12, 0, 0, 0, time.UTC),
		Code:              0,
		IsDay:             true,
		Temperature:       units.NewMeasurement(20),
		Humidity:          units.NewMeasurement(0.5),
		PressureMSL:       units.NewMeasurement(1013),
		WindSpeed:         units.NewMeasurement(10),
		WindDirection:     units.NewMeasurement(90),
		CloudCover:        units.NewMeasurement(0.25),
		Visibility:        units.NewMeasurement(10000),
		UVIndex:           units.NewMeasurement(7),
		PrecipProbability: units.NewMeasurement(0.1),
		Precipitation:     units.NewMeasurement(0),
	}
	daylight := meteo.Daylight{
		Sunrise: time.Date(2024, 6, 27, 5, 30, 0, 0, time.UTC),
		Sunset:  time.Date(2024, 6, 27, 21, 15, 0, 0, time.UTC),
	}

	t.Run("formats the card", func(t *testing.T) {
		p := testPresenter(t, units.Metric, "en")
		view := p.CurrentConditions(conditions, units.NewMeasurement(1010), daylight, "Full Moon")
		if view.Condition != "Clear sky" {
			t.Errorf("expected Clear sky, got %q", view.Condition)
		}
		if view.ClassName != "clear-day" {
			t.Errorf("expected clear-day, got %q", view.ClassName)
		}
		if view.Temperature != "20°C" {
			t.Errorf("expected 20°C, got %q", view.Temperature)
		}
		if view.WindDirection != "East" || view.WindShort != "E" || view.WindClass != "wind-e" {
			t.Errorf("unexpected wind %q/%q/%q", view.WindDirection, view.WindShort, view.WindClass)
		}
		if view.PressureTrendGlyph != "↑" {
			t.Errorf("expected rising glyph, got %q", view.PressureTrendGlyph)
		}
		if view.UVRisk != "High" || view.UVClass != "uv-high" {
			t.Errorf("unexpected UV %q/%q", view.UVRisk, view.UVClass)
		}
		if view.MoonPhase != "Full moon" {
			t.Errorf("expected Full moon, got %q", view.MoonPhase)
		}
		if !strings.HasPrefix(view.IconWithSpace, view.Icon) {
			t.Errorf("expected padded icon to start with %q", view.Icon)
		}
	})
	t.Run("absent measurements render the placeholder", func(t *testing.T) {
		p := testPresenter(t, units.Metric, "en")
		empty := &meteo.Conditions{AsOf: conditions.AsOf, Code: 0, IsDay: true}
		view := p.CurrentConditions(empty, units.Absent(), daylight, "Full Moon")
		if view.Temperature != "Unavailable" {
			t.Errorf("expected placeholder temperature, got %q", view.Temperature)
		}
		if view.WindDirection != "Unavailable" {
			t.Errorf("expected placeholder wind, got %q", view.WindDirection)
		}
		if view.UVRisk != "Unavailable" {
			t.Errorf("expected placeholder UV risk, got %q", view.UVRisk)
		}
		if view.PressureTrendGlyph != "" {
			t.Errorf("expected steady trend glyph, got %q", view.PressureTrendGlyph)
		}
	})
	t.Run("localizes condition names", func(t *testing.T) {
		p := testPresenter(t, units.Metric, "de")
		view := p.CurrentConditions(conditions, units.Absent(), daylight, "Full Moon")
		if view.Condition != "Klarer Himmel" {
			t.Errorf("expected Klarer Himmel, got %q", view.Condition)
		}
	})
}

func TestEmojiWithSpace(t *testing.T) {
	t.Run("pads by terminal cell width", func(t *testing.T) {
		got := EmojiWithSpace("x")
		if got != "x  " {
			t.Errorf("expected two trailing spaces, got %q", got)
		}
	})
}

func TestCoverageGaps(t *testing.T) {
	t.Run("all categories have names and classes", func(t *testing.T) {
		if gaps := CoverageGaps(); len(gaps) != 0 {
			t.Errorf("expected no gaps, got %v", gaps)
		}
	})
}
