// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNew(t *testing.T) {
	t.Run("new bundle with empty locale string succeeds", func(t *testing.T) {
		bundle, err := New("")
		if err != nil {
			t.Fatalf("failed to create i18n bundle: %s", err)
		}
		if bundle == nil {
			t.Fatal("expected i18n bundle to be non-nil")
		}
	})
	t.Run("new bundle with explicit locale succeeds", func(t *testing.T) {
		bundle, err := New("de-DE")
		if err != nil {
			t.Fatalf("failed to create i18n bundle: %s", err)
		}
		if got := bundle.DefaultTag(); got != language.Make("de-DE") {
			t.Errorf("expected default tag to be de-DE, got %s", got)
		}
	})
}

func TestBundleLocalizer(t *testing.T) {
	bundle, err := New("en")
	if err != nil {
		t.Fatalf("failed to create i18n bundle: %s", err)
	}
	t.Run("localizer translates known messages", func(t *testing.T) {
		loc := bundle.Localizer("de")
		if got := loc.Get("Unavailable"); got != "Nicht verfügbar" {
			t.Errorf("expected German translation, got %q", got)
		}
	})
	t.Run("localizer falls back to source language", func(t *testing.T) {
		loc := bundle.Localizer("fr")
		if got := loc.Get("Unavailable"); got != "Unavailable" {
			t.Errorf("expected English fallback, got %q", got)
		}
	})
	t.Run("empty locale string uses the bundle default", func(t *testing.T) {
		loc := bundle.Localizer("")
		if got := loc.Get("Unavailable"); got != "Unavailable" {
			t.Errorf("expected English default, got %q", got)
		}
	})
}
