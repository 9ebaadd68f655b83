// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package units

import "github.com/vorlif/spreak/localize"

// compassLongNames maps compass points to their localizable long labels.
var compassLongNames = map[CompassPoint]localize.MsgID{
	North:     "North",
	Northeast: "Northeast",
	East:      "East",
	Southeast: "Southeast",
	South:     "South",
	Southwest: "Southwest",
	West:      "West",
	Northwest: "Northwest",
}

// compassShortNames maps compass points to their abbreviated labels. These are
// not localized.
var compassShortNames = map[CompassPoint]string{
	North:     "N",
	Northeast: "NE",
	East:      "E",
	Southeast: "SE",
	South:     "S",
	Southwest: "SW",
	West:      "W",
	Northwest: "NW",
}

// compassClassNames maps compass points to icon-oriented class tokens for markup.
var compassClassNames = map[CompassPoint]string{
	North:     "wind-n",
	Northeast: "wind-ne",
	East:      "wind-e",
	Southeast: "wind-se",
	South:     "wind-s",
	Southwest: "wind-sw",
	West:      "wind-w",
	Northwest: "wind-nw",
}

// compassGlyphs maps compass points to arrow glyphs pointing the way the wind blows.
var compassGlyphs = map[CompassPoint]string{
	North:     "↑",
	Northeast: "↗",
	East:      "→",
	Southeast: "↘",
	South:     "↓",
	Southwest: "↙",
	West:      "←",
	Northwest: "↖",
}

// uvRiskNames maps UV risk tiers to their localizable labels.
var uvRiskNames = map[UVRisk]localize.MsgID{
	UVRiskLow:      "Low",
	UVRiskModerate: "Moderate",
	UVRiskHigh:     "High",
	UVRiskVeryHigh: "Very High",
	UVRiskExtreme:  "Extreme",
}

// uvRiskClassNames maps UV risk tiers to class tokens for markup.
var uvRiskClassNames = map[UVRisk]string{
	UVRiskLow:      "uv-low",
	UVRiskModerate: "uv-moderate",
	UVRiskHigh:     "uv-high",
	UVRiskVeryHigh: "uv-very-high",
	UVRiskExtreme:  "uv-extreme",
}

// precipIntensityClassNames maps precipitation buckets to chart class tokens.
var precipIntensityClassNames = map[PrecipIntensity]string{
	PrecipNone:     "precip-none",
	PrecipLight:    "precip-light",
	PrecipModerate: "precip-moderate",
	PrecipHeavy:    "precip-heavy",
	PrecipViolent:  "precip-violent",
}

var allCompassPoints = []CompassPoint{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

var allUVRisks = []UVRisk{UVRiskLow, UVRiskModerate, UVRiskHigh, UVRiskVeryHigh, UVRiskExtreme}

var allPrecipIntensities = []PrecipIntensity{PrecipNone, PrecipLight, PrecipModerate, PrecipHeavy, PrecipViolent}

// CoverageGaps reports enum variants any of the label tables is missing. It
// returns nil when every variant has a label in every table; test suites
// assert this so an unmapped code can never render as an empty string.
func CoverageGaps() []string {
	var gaps []string
	for _, point := range allCompassPoints {
		if _, ok := compassLongNames[point]; !ok {
			gaps = append(gaps, "compassLongNames: "+compassShortNames[point])
		}
		if _, ok := compassShortNames[point]; !ok {
			gaps = append(gaps, "compassShortNames")
		}
		if _, ok := compassClassNames[point]; !ok {
			gaps = append(gaps, "compassClassNames: "+compassShortNames[point])
		}
		if _, ok := compassGlyphs[point]; !ok {
			gaps = append(gaps, "compassGlyphs: "+compassShortNames[point])
		}
	}
	for _, risk := range allUVRisks {
		if _, ok := uvRiskNames[risk]; !ok {
			gaps = append(gaps, "uvRiskNames: "+uvRiskClassNames[risk])
		}
		if _, ok := uvRiskClassNames[risk]; !ok {
			gaps = append(gaps, "uvRiskClassNames")
		}
	}
	for _, intensity := range allPrecipIntensities {
		if _, ok := precipIntensityClassNames[intensity]; !ok {
			gaps = append(gaps, "precipIntensityClassNames")
		}
	}
	return gaps
}
