// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package meteo

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/wneessen/go-moonphase"
)

// Daylight describes the sun times for a place and day.
type Daylight struct {
	Sunrise time.Time
	Sunset  time.Time
}

// DaylightAt computes sunrise and sunset for the given coordinates and day.
func DaylightAt(latitude, longitude float64, day time.Time) Daylight {
	rise, set := sunrise.SunriseSunset(latitude, longitude, day.Year(), day.Month(), day.Day())
	return Daylight{Sunrise: rise, Sunset: set}
}

// IsDaytime reports whether the given instant falls between sunrise and sunset.
func (d Daylight) IsDaytime(at time.Time) bool {
	return at.After(d.Sunrise) && at.Before(d.Sunset)
}

// MoonPhaseName returns the name of the moon phase at the given time, as
// reported by the phase tables.
func MoonPhaseName(at time.Time) string {
	return moonphase.New(at).PhaseName()
}
