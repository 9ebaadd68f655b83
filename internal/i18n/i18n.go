// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

// Package i18n provides the message catalog and locale resolution for the web frontend.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/Xuanwo/go-locale"
	"github.com/vorlif/spreak"
	"golang.org/x/text/language"
)

//go:embed locale/*
var locales embed.FS

// Bundle holds the loaded message catalog and hands out per-locale localizers.
type Bundle struct {
	bundle *spreak.Bundle
	defTag language.Tag
}

// New loads the embedded message catalog. The given locale becomes the default
// language; when empty, the system locale is detected, falling back to English.
func New(loc string) (*Bundle, error) {
	tag := language.Make(loc)
	var err error
	if loc == "" {
		tag, err = locale.Detect()
		if err != nil {
			tag = language.English // Unable to detect locale, fallback to English
		}
	}

	localeFS, err := fs.Sub(locales, "locale")
	if err != nil {
		return nil, fmt.Errorf("failed to load locales: %w", err)
	}

	bundle, err := spreak.NewBundle(
		spreak.WithSourceLanguage(language.English),
		spreak.WithFallbackLanguage(language.English),
		spreak.WithDomainFs("", localeFS),
		spreak.WithLanguage(tag, language.German, language.Spanish),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create i18n bundle: %w", err)
	}
	return &Bundle{bundle: bundle, defTag: tag}, nil
}

// DefaultTag returns the bundle's default language tag.
func (b *Bundle) DefaultTag() language.Tag {
	return b.defTag
}

// Localizer returns a localizer for the given locale string, falling back to
// the bundle default when the string is empty or unparseable.
func (b *Bundle) Localizer(loc string) *spreak.Localizer {
	tag := b.defTag
	if loc != "" {
		if parsed := language.Make(loc); parsed != language.Und {
			tag = parsed
		}
	}
	return spreak.NewLocalizer(b.bundle, tag)
}
