// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package units

import "golang.org/x/text/language"

// System selects the physical units a formatter renders in.
type System int

const (
	// Metric renders Celsius, meters/kilometers, millibars, km/h and millimeters.
	Metric System = iota
	// USCustomary renders Fahrenheit, feet/miles, inches of mercury, mph and inches.
	USCustomary
)

// String returns the configuration name of the unit system.
func (s System) String() string {
	if s == USCustomary {
		return "imperial"
	}
	return "metric"
}

// SystemFor resolves the default unit system for a language tag. US region
// variants get US customary units, everything else metric. Callers resolve
// this once at the request boundary and pass the result down; formatters
// never consult ambient locale state themselves.
func SystemFor(tag language.Tag) System {
	region, conf := tag.Region()
	if conf > language.No && region.String() == "US" {
		return USCustomary
	}
	return Metric
}

// SystemNamed maps a configuration string to a unit system, defaulting to metric.
func SystemNamed(name string) System {
	if name == "imperial" {
		return USCustomary
	}
	return Metric
}
