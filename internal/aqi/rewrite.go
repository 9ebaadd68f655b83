// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package aqi

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/decarbonization/outside/internal/airnow"
)

// ErrEmptyResponse is returned when a rewriter receives a response with no
// entries. The provider guarantees at least one entry for a covered area, so
// callers treat this as an upstream data failure.
var ErrEmptyResponse = errors.New("empty provider response")

const dateLayout = "2006-01-02"

// CurrentAirQualityFrom normalizes a current observation response. Entries
// are trusted to share the same date, hour and reporting area; shared fields
// are read from the first entry only.
func CurrentAirQualityFrom(entries []airnow.ObservationEntry) (*CurrentAirQuality, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("current observation: %w", ErrEmptyResponse)
	}

	first := entries[0]
	asOf, err := parseDate(first.DateObserved)
	if err != nil {
		return nil, fmt.Errorf("failed to parse observation date: %w", err)
	}
	// HourObserved replaces the time of day as a local wall-clock hour. This
	// is a field substitution, not a time zone conversion.
	asOf = time.Date(asOf.Year(), asOf.Month(), asOf.Day(), first.HourObserved, 0, 0, 0, asOf.Location())

	var aqiSum, categorySum int
	readings := make([]Reading, 0, len(entries))
	for _, entry := range entries {
		aqiSum += entry.AQI
		categorySum += entry.Category.Number
		readings = append(readings, readingFromObservation(entry))
	}

	return &CurrentAirQuality{
		AsOf:          asOf,
		TimeZone:      first.LocalTimeZone,
		Location:      Location{Latitude: first.Latitude, Longitude: first.Longitude},
		ReportingArea: first.ReportingArea,
		StateCode:     first.StateCode,
		AQI:           roundedMean(aqiSum, len(entries)),
		Category:      Category(roundedMean(categorySum, len(entries))),
		Readings:      readings,
	}, nil
}

// ForecastFrom normalizes a forecast response. Entries are grouped by their
// literal forecast date string; days come out in first-seen group order.
func ForecastFrom(entries []airnow.ForecastEntry) (*Forecast, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("forecast: %w", ErrEmptyResponse)
	}

	var order []string
	groups := make(map[string][]airnow.ForecastEntry)
	for _, entry := range entries {
		if _, ok := groups[entry.DateForecast]; !ok {
			order = append(order, entry.DateForecast)
		}
		groups[entry.DateForecast] = append(groups[entry.DateForecast], entry)
	}

	days := make([]ForecastDay, 0, len(order))
	for _, date := range order {
		day, err := forecastDayFrom(date, groups[date])
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return &Forecast{Days: days}, nil
}

func forecastDayFrom(date string, entries []airnow.ForecastEntry) (ForecastDay, error) {
	start, err := parseDate(date)
	if err != nil {
		return ForecastDay{}, fmt.Errorf("failed to parse forecast date: %w", err)
	}

	first := entries[0]
	readings := make([]Reading, 0, len(entries))
	actionDay := false
	var discussions []string
	seen := make(map[string]struct{})
	for _, entry := range entries {
		readings = append(readings, readingFromForecast(entry))
		if entry.ActionDay {
			actionDay = true
		}
		// Distinct discussion texts in first-occurrence order.
		if entry.Discussion == "" {
			continue
		}
		if _, ok := seen[entry.Discussion]; ok {
			continue
		}
		seen[entry.Discussion] = struct{}{}
		discussions = append(discussions, entry.Discussion)
	}

	return ForecastDay{
		ForecastStart: start,
		ForecastEnd:   start.AddDate(0, 0, 1),
		Location:      Location{Latitude: first.Latitude, Longitude: first.Longitude},
		ReportingArea: first.ReportingArea,
		StateCode:     first.StateCode,
		Readings:      readings,
		ActionDay:     actionDay,
		Discussion:    strings.Join(discussions, "\n"),
	}, nil
}

func parseDate(raw string) (time.Time, error) {
	// AirNow pads its date fields with trailing whitespace.
	return time.Parse(dateLayout, strings.TrimSpace(raw))
}

func roundedMean(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}
