// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package meteo

import "github.com/vorlif/spreak/localize"

// Fallbacks for weather codes the provider may add before the tables learn
// about them. An unmapped code renders these instead of an empty string.
const (
	fallbackConditionName  localize.MsgID = "Unknown conditions"
	fallbackConditionClass                = "conditions-unknown"
)

// conditionNames maps WMO weather code integers to their localizable descriptions.
var conditionNames = map[int]localize.MsgID{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow fall",
	73: "Moderate snow fall",
	75: "Heavy snow fall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// conditionClasses maps WMO weather codes to markup class tokens for day (true)
// and night (false) renderings.
var conditionClasses = map[int]map[bool]string{
	0:  {true: "clear-day", false: "clear-night"},
	1:  {true: "mostly-clear-day", false: "clear-night"},
	2:  {true: "partly-cloudy-day", false: "partly-cloudy-night"},
	3:  {true: "overcast", false: "overcast"},
	45: {true: "fog", false: "fog"},
	48: {true: "fog", false: "fog"},
	51: {true: "drizzle", false: "drizzle"},
	53: {true: "drizzle", false: "drizzle"},
	55: {true: "drizzle", false: "drizzle"},
	56: {true: "freezing-drizzle", false: "freezing-drizzle"},
	57: {true: "freezing-drizzle", false: "freezing-drizzle"},
	61: {true: "rain-light", false: "rain-light"},
	63: {true: "rain", false: "rain"},
	65: {true: "rain-heavy", false: "rain-heavy"},
	66: {true: "freezing-rain", false: "freezing-rain"},
	67: {true: "freezing-rain", false: "freezing-rain"},
	71: {true: "snow-light", false: "snow-light"},
	73: {true: "snow", false: "snow"},
	75: {true: "snow-heavy", false: "snow-heavy"},
	77: {true: "snow-grains", false: "snow-grains"},
	80: {true: "showers-light", false: "showers-light"},
	81: {true: "showers", false: "showers"},
	82: {true: "showers-violent", false: "showers-violent"},
	85: {true: "snow-showers", false: "snow-showers"},
	86: {true: "snow-showers", false: "snow-showers"},
	95: {true: "thunderstorm", false: "thunderstorm"},
	96: {true: "thunderstorm-hail", false: "thunderstorm-hail"},
	99: {true: "thunderstorm-hail", false: "thunderstorm-hail"},
}

// conditionIcons maps WMO weather codes to emoji for day (true) and night (false).
var conditionIcons = map[int]map[bool]string{
	0:  {true: "☀️", false: "🌙"},
	1:  {true: "🌤️", false: "🌙"},
	2:  {true: "⛅", false: "☁️"},
	3:  {true: "☁️", false: "☁️"},
	45: {true: "🌫️", false: "🌫️"},
	48: {true: "🌫️", false: "🌫️"},
	51: {true: "🌦️", false: "🌧️"},
	53: {true: "🌧️", false: "🌧️"},
	55: {true: "🌧️", false: "🌧️"},
	56: {true: "🌨️", false: "🌨️"},
	57: {true: "🌨️", false: "🌨️"},
	61: {true: "🌦️", false: "🌧️"},
	63: {true: "🌧️", false: "🌧️"},
	65: {true: "🌧️", false: "🌧️"},
	66: {true: "🌨️", false: "🌨️"},
	67: {true: "🌨️", false: "🌨️"},
	71: {true: "🌨️", false: "🌨️"},
	73: {true: "🌨️", false: "🌨️"},
	75: {true: "🌨️", false: "🌨️"},
	77: {true: "🌨️", false: "🌨️"},
	80: {true: "🌦️", false: "🌧️"},
	81: {true: "🌧️", false: "🌧️"},
	82: {true: "🌧️", false: "🌧️"},
	85: {true: "🌨️", false: "🌨️"},
	86: {true: "🌨️", false: "🌨️"},
	95: {true: "🌩️", false: "🌩️"},
	96: {true: "⛈️", false: "⛈️"},
	99: {true: "⛈️", false: "⛈️"},
}

// moonPhaseClasses maps go-moonphase phase names to markup class tokens.
var moonPhaseClasses = map[string]string{
	"New Moon":        "moon-new",
	"Waxing Crescent": "moon-waxing-crescent",
	"First Quarter":   "moon-first-quarter",
	"Waxing Gibbous":  "moon-waxing-gibbous",
	"Full Moon":       "moon-full",
	"Waning Gibbous":  "moon-waning-gibbous",
	"Third Quarter":   "moon-third-quarter",
	"Waning Crescent": "moon-waning-crescent",
}

const fallbackMoonPhaseClass = "moon-unknown"

// ConditionName returns the localizable description of a weather code,
// falling back for unmapped codes.
func ConditionName(code int) localize.MsgID {
	if name, ok := conditionNames[code]; ok {
		return name
	}
	return fallbackConditionName
}

// ConditionClass returns the markup class token for a weather code and
// daylight state, falling back for unmapped codes.
func ConditionClass(code int, isDay bool) string {
	if classes, ok := conditionClasses[code]; ok {
		return classes[isDay]
	}
	return fallbackConditionClass
}

// ConditionIcon returns the emoji for a weather code and daylight state.
func ConditionIcon(code int, isDay bool) string {
	if icons, ok := conditionIcons[code]; ok {
		return icons[isDay]
	}
	return ""
}

// MoonPhaseClass returns the markup class token for a moon phase name.
func MoonPhaseClass(phase string) string {
	if class, ok := moonPhaseClasses[phase]; ok {
		return class
	}
	return fallbackMoonPhaseClass
}

// KnownConditionCodes returns the weather codes the name table covers, for
// coverage validation.
func KnownConditionCodes() []int {
	codes := make([]int, 0, len(conditionNames))
	for code := range conditionNames {
		codes = append(codes, code)
	}
	return codes
}

// CoverageGaps reports weather codes that have a description but are missing
// from the class or icon tables. Tests assert it returns nothing.
func CoverageGaps() []int {
	var gaps []int
	for code := range conditionNames {
		if _, ok := conditionClasses[code]; !ok {
			gaps = append(gaps, code)
			continue
		}
		if _, ok := conditionIcons[code]; !ok {
			gaps = append(gaps, code)
		}
	}
	return gaps
}
