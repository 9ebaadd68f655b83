// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

// Package units renders canonical-unit measurements for a locale and unit
// system, and classifies measurements into discrete presentation labels.
//
// Every measurement is a plain number in one canonical unit: Celsius, meters,
// millibars, km/h, millimeters, or degrees from north. The formatter alone
// decides how a value is converted and rendered.
package units

// Measurement is an optional numeric value in a canonical unit. The absent
// state is a first-class case: formatters render a localized placeholder for
// it and never fail.
type Measurement struct {
	value float64
	isset bool
}

// NewMeasurement returns a present Measurement holding the given value.
func NewMeasurement(value float64) Measurement {
	return Measurement{value: value, isset: true}
}

// Absent returns a Measurement without a value.
func Absent() Measurement {
	return Measurement{}
}

// Value retrieves the measurement's value. Only meaningful when IsSet reports true.
func (m Measurement) Value() float64 {
	return m.value
}

// IsSet returns true if the Measurement holds a value.
func (m Measurement) IsSet() bool {
	return m.isset
}
