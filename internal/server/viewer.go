// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/decarbonization/outside/internal/account"
	"github.com/decarbonization/outside/internal/logger"
	"github.com/decarbonization/outside/internal/presenter"
	"github.com/decarbonization/outside/internal/units"
)

const (
	sessionCookie = "outside_session"
	viewerKey     = "outside.viewer"
)

// viewer carries the resolved identity and display settings for one request.
// Anonymous visitors fall back to the configured locale and unit system.
type viewer struct {
	user   *account.User
	prefs  account.Preferences
	locale string
	system units.System
	pres   *presenter.Presenter
}

// resolveViewer is the middleware that turns a session cookie into a viewer
// and builds the request's presenter from the resulting locale and units.
func (s *Server) resolveViewer(c *gin.Context) {
	v := &viewer{locale: s.config.Locale}
	unitsName := s.config.Units
	if raw, err := c.Cookie(sessionCookie); err == nil {
		if token, err := uuid.Parse(raw); err == nil {
			if user, err := s.accounts.UserForSession(token); err == nil {
				v.user = user
				v.prefs = s.accounts.PreferencesFor(user.ID)
				if v.prefs.Locale != "" {
					v.locale = v.prefs.Locale
				}
				if v.prefs.Units != "" {
					unitsName = v.prefs.Units
				}
			}
		}
	}
	if v.locale == "" {
		v.locale = s.bundle.DefaultTag().String()
	}

	// A viewer preference or operator setting pins the unit system. With
	// neither, the locale decides and US-region tags get US customary units.
	tag := language.Make(v.locale)
	if unitsName != "" {
		v.system = units.SystemNamed(unitsName)
	} else {
		v.system = units.SystemFor(tag)
	}

	localizer := s.bundle.Localizer(v.locale)
	fmtr := units.NewFormatter(v.system, tag, localizer)
	v.pres = presenter.New(fmtr, localizer)

	c.Set(viewerKey, v)
	c.Next()
}

func viewerFrom(c *gin.Context) *viewer {
	return c.MustGet(viewerKey).(*viewer)
}

// render executes the named page template with the viewer's locale bound in.
// Pages render into a buffer first so a failing template yields a clean 500
// instead of a truncated page.
func (s *Server) render(c *gin.Context, page string, data any) {
	v := viewerFrom(c)
	views, err := s.views.Clone()
	if err != nil {
		s.failRender(c, page, err)
		return
	}
	buf := bytes.NewBuffer(nil)
	if err := views.Funcs(v.pres.FuncMap()).ExecuteTemplate(buf, page, data); err != nil {
		s.failRender(c, page, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	s.metrics.PageRenders.WithLabelValues(page, "success").Inc()
}

func (s *Server) failRender(c *gin.Context, page string, err error) {
	s.logger.Error("failed to render page", "page", page, logger.Err(err))
	s.metrics.PageRenders.WithLabelValues(page, "error").Inc()
	c.AbortWithStatus(http.StatusInternalServerError)
}
