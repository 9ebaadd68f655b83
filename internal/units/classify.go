// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package units

import "fmt"

// OutOfDomainError reports a measurement value outside a classifier's defined
// input domain. It indicates a data quality problem upstream and is never
// silently clamped away.
type OutOfDomainError struct {
	Quantity string
	Value    float64
	Min      float64
	Max      float64
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("%s value %g outside domain [%g, %g]", e.Quantity, e.Value, e.Min, e.Max)
}

// CompassPoint is one of the eight labeled wind direction sectors.
type CompassPoint int

const (
	North CompassPoint = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

// CompassPointFor classifies a bearing in degrees from north into a compass
// point. Exact boundary values map to the cardinal points; open intervals map
// to the intervening intercardinals. 360 folds into the (270,360] northwest
// sector rather than wrapping back to north, since bearings are periodic.
// Values outside [0, 360] fail with an OutOfDomainError.
func CompassPointFor(degrees float64) (CompassPoint, error) {
	switch {
	case degrees < 0 || degrees > 360:
		return 0, &OutOfDomainError{Quantity: "compass degrees", Value: degrees, Min: 0, Max: 360}
	case degrees == 0:
		return North, nil
	case degrees < 90:
		return Northeast, nil
	case degrees == 90:
		return East, nil
	case degrees < 180:
		return Southeast, nil
	case degrees == 180:
		return South, nil
	case degrees < 270:
		return Southwest, nil
	case degrees == 270:
		return West, nil
	default:
		return Northwest, nil
	}
}

// UVRisk is a discrete risk tier for a UV index value. It selects a
// localization key only; the displayed number is never altered.
type UVRisk int

const (
	UVRiskLow UVRisk = iota
	UVRiskModerate
	UVRiskHigh
	UVRiskVeryHigh
	UVRiskExtreme
)

// UVRiskFor classifies a UV index into its risk tier. Negative indices fail
// with an OutOfDomainError.
func UVRiskFor(index float64) (UVRisk, error) {
	switch {
	case index < 0:
		return 0, &OutOfDomainError{Quantity: "uv index", Value: index, Min: 0, Max: maxUVIndex}
	case index < 3:
		return UVRiskLow, nil
	case index < 6:
		return UVRiskModerate, nil
	case index < 8:
		return UVRiskHigh, nil
	case index < 11:
		return UVRiskVeryHigh, nil
	default:
		return UVRiskExtreme, nil
	}
}

// maxUVIndex only bounds the reported error domain; the classifier itself is
// open-ended above 11.
const maxUVIndex = 20

// PrecipIntensity is a discrete bucket for a precipitation rate, used to pick
// a visual style in charts.
type PrecipIntensity int

const (
	PrecipNone PrecipIntensity = iota
	PrecipLight
	PrecipModerate
	PrecipHeavy
	PrecipViolent
)

// PrecipIntensityFor classifies a precipitation rate in millimeters per hour.
// Negative rates fail with an OutOfDomainError.
func PrecipIntensityFor(mmPerHour float64) (PrecipIntensity, error) {
	switch {
	case mmPerHour < 0:
		return 0, &OutOfDomainError{Quantity: "precipitation rate", Value: mmPerHour, Min: 0, Max: 500}
	case mmPerHour == 0:
		return PrecipNone, nil
	case mmPerHour < 2.5:
		return PrecipLight, nil
	case mmPerHour < 7.6:
		return PrecipModerate, nil
	case mmPerHour < 50:
		return PrecipHeavy, nil
	default:
		return PrecipViolent, nil
	}
}

// PressureTrend is the direction barometric pressure is moving in.
type PressureTrend string

const (
	PressureRising  PressureTrend = "rising"
	PressureSteady  PressureTrend = "steady"
	PressureFalling PressureTrend = "falling"
)

// Glyph returns the directional arrow for a pressure trend. Steady renders nothing.
func (t PressureTrend) Glyph() string {
	switch t {
	case PressureRising:
		return "↑"
	case PressureFalling:
		return "↓"
	default:
		return ""
	}
}
