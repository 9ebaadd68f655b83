// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package server

import (
	"html/template"
	"strings"
	"time"

	"github.com/decarbonization/outside/internal/presenter"
)

// neutralFuncMap mirrors the presenter's template helpers with locale-free
// stand-ins. The templates parse against these once at startup; requests
// rebind the real helpers on a clone.
func neutralFuncMap() template.FuncMap {
	return template.FuncMap{
		"loc":        func(val string) string { return val },
		"lc":         strings.ToLower,
		"uc":         strings.ToUpper,
		"timeFormat": func(val time.Time, layout string) string { return val.Format(layout) },
		"emojiSpace": presenter.EmojiWithSpace,
	}
}
