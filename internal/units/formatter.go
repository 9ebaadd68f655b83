// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package units

import (
	"time"

	"github.com/vorlif/humanize"
	delocale "github.com/vorlif/humanize/locale/de"
	eslocale "github.com/vorlif/humanize/locale/es"
	"github.com/vorlif/spreak"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is the localization key rendered for absent measurements.
const Placeholder = "Unavailable"

// Unit conversion factors. The canonical units are Celsius, meters,
// millibars, km/h, millimeters and degrees from north.
const (
	millibarsToInHg = 0.029529980
	metersPerFoot   = 0.3048
	metersPerMile   = 1609.34
	kmhPerMph       = 1.609344
	mmPerInch       = 25.4

	// visibility switches from small to large units at these canonical thresholds
	visibilityMetricCutover = 1000.0   // meters
	visibilityUSCutover     = 160.934  // meters, one tenth mile
)

// humanizeLocales carries the translation data for relative time rendering.
var humanizeLocales = humanize.MustNew(humanize.WithLocale(delocale.New(), eslocale.New()))

// Formatter renders measurements for one locale and unit system. It holds
// only read-only localization state and is safe for concurrent use.
type Formatter struct {
	system    System
	localizer *spreak.Localizer
	humanizer *humanize.Humanizer
	printer   *message.Printer
}

// NewFormatter returns a formatter for the given unit system and locale. The
// caller resolves both once per request and passes them down explicitly.
func NewFormatter(system System, tag language.Tag, localizer *spreak.Localizer) *Formatter {
	return &Formatter{
		system:    system,
		localizer: localizer,
		humanizer: humanizeLocales.CreateHumanizer(tag),
		printer:   message.NewPrinter(tag),
	}
}

// System returns the unit system the formatter renders in.
func (f *Formatter) System() System {
	return f.system
}

// Placeholder returns the localized token rendered for absent measurements.
func (f *Formatter) Placeholder() string {
	return f.localizer.Get(Placeholder)
}

// Temperature renders a Celsius measurement, converting to Fahrenheit for US
// customary units.
func (f *Formatter) Temperature(m Measurement) string {
	if !m.IsSet() {
		return f.Placeholder()
	}
	if f.system == USCustomary {
		return f.decimal(m.Value()*9/5+32, 0) + "°F"
	}
	return f.decimal(m.Value(), 0) + "°C"
}

// Percentage renders a [0,1] fraction as a localized percentage. Percentages
// are unit-system independent.
func (f *Formatter) Percentage(m Measurement) string {
	if !m.IsSet() {
		return f.Placeholder()
	}
	return f.printer.Sprint(number.Percent(m.Value(), number.MaxFractionDigits(0)))
}

// UVIndex renders a UV index as a localized integer intensity.
func (f *Formatter) UVIndex(m Measurement) string {
	if !m.IsSet() {
		return f.Placeholder()
	}
	return f.decimal(m.Value(), 0)
}

// Visibility renders a distance measured in meters. Metric output switches
// from meters to kilometers at 1000 m; US customary output switches from feet
// to miles at a tenth of a mile.
func (f *Formatter) Visibility(m Measurement) string {
	if !m.IsSet() {
		return f.Placeholder()
	}
	meters := m.Value()
	if f.system == USCustomary {
		if meters < visibilityUSCutover {
			return f.decimal(meters/metersPerFoot, 0) + " ft"
		}
		return f.decimal(meters/metersPerMile, 1) + " mi"
	}
	if meters < visibilityMetricCutover {
		return f.decimal(meters, 0) + " m"
	}
	return f.decimal(meters/1000, 1) + " km"
}

// Pressure renders a millibars measurement, converting to inches of mercury
// for US customary units.
func (f *Formatter) Pressure(m Measurement) string {
	if !m.IsSet() {
		return f.Placeholder()
	}
	if f.system == USCustomary {
		return f.decimal(m.Value()*millibarsToInHg, 2) + " inHg"
	}
	return f.decimal(m.Value(), 0) + " mbar"
}

// Speed renders a km/h measurement, converting to mph for US customary units.
func (f *Formatter) Speed(m Measurement) string {
	if !m.IsSet() {
		return f.Placeholder()
	}
	if f.system == USCustomary {
		return f.decimal(m.Value()/kmhPerMph, 0) + " mph"
	}
	return f.decimal(m.Value(), 0) + " km/h"
}

// Depth renders a precipitation amount measured in millimeters, converting to
// inches for US customary units.
func (f *Formatter) Depth(m Measurement) string {
	if !m.IsSet() {
		return f.Placeholder()
	}
	if f.system == USCustomary {
		return f.decimal(m.Value()/mmPerInch, 2) + " in"
	}
	return f.decimal(m.Value(), 1) + " mm"
}

// WindDirection renders a bearing in degrees from north as a localized long
// compass label. Bearings outside [0,360] fail with an OutOfDomainError.
func (f *Formatter) WindDirection(m Measurement) (string, error) {
	if !m.IsSet() {
		return f.Placeholder(), nil
	}
	point, err := CompassPointFor(m.Value())
	if err != nil {
		return "", err
	}
	return f.CompassLabel(point), nil
}

// CompassLabel returns the localized long label for a compass point.
func (f *Formatter) CompassLabel(point CompassPoint) string {
	return f.localizer.Get(compassLongNames[point])
}

// UVRiskLabel returns the localized label for a UV risk tier.
func (f *Formatter) UVRiskLabel(risk UVRisk) string {
	return f.localizer.Get(uvRiskNames[risk])
}

// Time renders a timestamp in the formatter's locale.
func (f *Formatter) Time(val time.Time) string {
	return f.humanizer.FormatTime(val, humanize.TimeFormat)
}

// Date renders a calendar date in the formatter's locale.
func (f *Formatter) Date(val time.Time) string {
	return f.humanizer.FormatTime(val, humanize.DateFormat)
}

func (f *Formatter) decimal(val float64, digits int) string {
	return f.printer.Sprint(number.Decimal(val,
		number.MaxFractionDigits(digits), number.MinFractionDigits(digits)))
}

// ShortLabel returns the abbreviated, locale-independent label of a compass point.
func (p CompassPoint) ShortLabel() string {
	return compassShortNames[p]
}

// ClassName returns the icon-oriented class token of a compass point.
func (p CompassPoint) ClassName() string {
	return compassClassNames[p]
}

// Glyph returns the arrow glyph of a compass point.
func (p CompassPoint) Glyph() string {
	return compassGlyphs[p]
}

// ClassName returns the markup class token of a UV risk tier.
func (r UVRisk) ClassName() string {
	return uvRiskClassNames[r]
}

// ClassName returns the chart class token of a precipitation bucket.
func (i PrecipIntensity) ClassName() string {
	return precipIntensityClassNames[i]
}
