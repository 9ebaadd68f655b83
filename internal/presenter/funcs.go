// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/vorlif/spreak/localize"
)

// FuncMap returns the template helpers bound to this presenter's locale.
func (p *Presenter) FuncMap() template.FuncMap {
	return template.FuncMap{
		"loc":        p.loc,
		"lc":         strings.ToLower,
		"uc":         strings.ToUpper,
		"timeFormat": timeFormat,
		"emojiSpace": EmojiWithSpace,
	}
}

func (p *Presenter) loc(val string) string {
	return p.localizer.Get(localize.MsgID(val))
}

func timeFormat(val time.Time, layout string) string {
	return val.Format(layout)
}

// EmojiWithSpace pads an emoji with spaces matching its terminal cell width,
// so double-width glyphs line up in monospace contexts.
func EmojiWithSpace(emoji string) string {
	width := runewidth.StringWidth(emoji)
	return fmt.Sprintf("%s%s", emoji, strings.Repeat(" ", width+1))
}
