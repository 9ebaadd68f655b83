// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package units

import (
	"errors"
	"testing"
)

func TestCompassPointFor(t *testing.T) {
	t.Run("bearings classify into the eight sectors", func(t *testing.T) {
		tests := []struct {
			degrees float64
			want    CompassPoint
		}{
			{0, North},
			{45, Northeast},
			{89.9, Northeast},
			{90, East},
			{135, Southeast},
			{180, South},
			{225, Southwest},
			{270, West},
			{315, Northwest},
			{360, Northwest}, // periodic wraparound, not a separate north case
		}
		for _, tt := range tests {
			point, err := CompassPointFor(tt.degrees)
			if err != nil {
				t.Fatalf("failed to classify %g degrees: %s", tt.degrees, err)
			}
			if point != tt.want {
				t.Errorf("%g degrees: expected %s, got %s", tt.degrees, tt.want.ShortLabel(), point.ShortLabel())
			}
		}
	})
	t.Run("bearings outside the domain fail with OutOfDomainError", func(t *testing.T) {
		for _, degrees := range []float64{-1, -0.001, 360.001, 361} {
			_, err := CompassPointFor(degrees)
			var domainErr *OutOfDomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("%g degrees: expected OutOfDomainError, got %s", degrees, err)
			}
			if domainErr.Value != degrees {
				t.Errorf("expected error to carry value %g, got %g", degrees, domainErr.Value)
			}
		}
	})
}

func TestUVRiskFor(t *testing.T) {
	t.Run("uv indices classify into risk tiers", func(t *testing.T) {
		tests := []struct {
			index float64
			want  UVRisk
		}{
			{0, UVRiskLow},
			{2.9, UVRiskLow},
			{3, UVRiskModerate},
			{5.9, UVRiskModerate},
			{6, UVRiskHigh},
			{7.9, UVRiskHigh},
			{8, UVRiskVeryHigh},
			{10.9, UVRiskVeryHigh},
			{11, UVRiskExtreme},
			{15, UVRiskExtreme},
		}
		for _, tt := range tests {
			risk, err := UVRiskFor(tt.index)
			if err != nil {
				t.Fatalf("failed to classify uv index %g: %s", tt.index, err)
			}
			if risk != tt.want {
				t.Errorf("uv index %g: expected tier %d, got %d", tt.index, tt.want, risk)
			}
		}
	})
	t.Run("negative uv index fails with OutOfDomainError", func(t *testing.T) {
		_, err := UVRiskFor(-0.1)
		var domainErr *OutOfDomainError
		if !errors.As(err, &domainErr) {
			t.Errorf("expected OutOfDomainError, got %s", err)
		}
	})
}

func TestPrecipIntensityFor(t *testing.T) {
	t.Run("precipitation rates classify into buckets", func(t *testing.T) {
		tests := []struct {
			rate float64
			want PrecipIntensity
		}{
			{0, PrecipNone},
			{0.1, PrecipLight},
			{2.4, PrecipLight},
			{2.5, PrecipModerate},
			{7.5, PrecipModerate},
			{7.6, PrecipHeavy},
			{49.9, PrecipHeavy},
			{50, PrecipViolent},
		}
		for _, tt := range tests {
			intensity, err := PrecipIntensityFor(tt.rate)
			if err != nil {
				t.Fatalf("failed to classify rate %g: %s", tt.rate, err)
			}
			if intensity != tt.want {
				t.Errorf("rate %g: expected bucket %d, got %d", tt.rate, tt.want, intensity)
			}
		}
	})
	t.Run("negative rate fails with OutOfDomainError", func(t *testing.T) {
		_, err := PrecipIntensityFor(-1)
		var domainErr *OutOfDomainError
		if !errors.As(err, &domainErr) {
			t.Errorf("expected OutOfDomainError, got %s", err)
		}
	})
}

func TestPressureTrendGlyph(t *testing.T) {
	tests := []struct {
		trend PressureTrend
		want  string
	}{
		{PressureRising, "↑"},
		{PressureFalling, "↓"},
		{PressureSteady, ""},
	}
	for _, tt := range tests {
		if got := tt.trend.Glyph(); got != tt.want {
			t.Errorf("trend %s: expected glyph %q, got %q", tt.trend, tt.want, got)
		}
	}
}

func TestCoverageGaps(t *testing.T) {
	t.Run("every enum variant has a label in every table", func(t *testing.T) {
		if gaps := CoverageGaps(); len(gaps) > 0 {
			t.Errorf("expected no coverage gaps, got %v", gaps)
		}
	})
}
