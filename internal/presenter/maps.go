// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"github.com/vorlif/spreak/localize"

	"github.com/decarbonization/outside/internal/aqi"
)

var categoryNames = map[aqi.Category]localize.MsgID{
	aqi.CategoryGood:                        "Good",
	aqi.CategoryModerate:                    "Moderate",
	aqi.CategoryUnhealthyForSensitiveGroups: "Unhealthy for sensitive groups",
	aqi.CategoryUnhealthy:                   "Unhealthy",
	aqi.CategoryVeryUnhealthy:               "Very unhealthy",
	aqi.CategoryHazardous:                   "Hazardous",
	aqi.CategoryUnavailable:                 "Unavailable",
}

var categoryClasses = map[aqi.Category]string{
	aqi.CategoryGood:                        "aqi-good",
	aqi.CategoryModerate:                    "aqi-moderate",
	aqi.CategoryUnhealthyForSensitiveGroups: "aqi-usg",
	aqi.CategoryUnhealthy:                   "aqi-unhealthy",
	aqi.CategoryVeryUnhealthy:               "aqi-very-unhealthy",
	aqi.CategoryHazardous:                   "aqi-hazardous",
	aqi.CategoryUnavailable:                 "aqi-unavailable",
}

var pollutantNames = map[aqi.Pollutant]string{
	aqi.Ozone:           "Ozone",
	aqi.FineParticles:   "PM2.5",
	aqi.CoarseParticles: "PM10",
}

// moonPhaseNames keys off the phase names the moon phase library emits.
var moonPhaseNames = map[string]localize.MsgID{
	"New Moon":        "New moon",
	"Waxing Crescent": "Waxing crescent",
	"First Quarter":   "First quarter",
	"Waxing Gibbous":  "Waxing gibbous",
	"Full Moon":       "Full moon",
	"Waning Gibbous":  "Waning gibbous",
	"Third Quarter":   "Third quarter",
	"Waning Crescent": "Waning crescent",
}

const (
	fallbackCategoryName  localize.MsgID = "Unavailable"
	fallbackCategoryClass                = "aqi-unavailable"
)

func (p *Presenter) categoryLabel(cat aqi.Category) string {
	name, ok := categoryNames[cat]
	if !ok {
		name = fallbackCategoryName
	}
	return p.localizer.Get(name)
}

func categoryClass(cat aqi.Category) string {
	class, ok := categoryClasses[cat]
	if !ok {
		return fallbackCategoryClass
	}
	return class
}

func pollutantName(pol aqi.Pollutant) string {
	if name, ok := pollutantNames[pol]; ok {
		return name
	}
	return string(pol)
}

func (p *Presenter) moonPhaseLabel(phase string) string {
	if name, ok := moonPhaseNames[phase]; ok {
		return p.localizer.Get(name)
	}
	return phase
}

// CoverageGaps reports AQI categories missing a display name or CSS class.
func CoverageGaps() []aqi.Category {
	var gaps []aqi.Category
	for cat := aqi.CategoryGood; cat <= aqi.CategoryUnavailable; cat++ {
		if _, ok := categoryNames[cat]; !ok {
			gaps = append(gaps, cat)
			continue
		}
		if _, ok := categoryClasses[cat]; !ok {
			gaps = append(gaps, cat)
		}
	}
	return gaps
}
