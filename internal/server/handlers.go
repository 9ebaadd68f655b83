// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/decarbonization/outside/internal/aqi"
	"github.com/decarbonization/outside/internal/logger"
	"github.com/decarbonization/outside/internal/meteo"
	"github.com/decarbonization/outside/internal/presenter"
)

// viewerData is the signed-in state shared by every page.
type viewerData struct {
	SignedIn bool
	Email    string
	Units    string
	Locale   string
}

type homePage struct {
	LocationName string
	Viewer       viewerData
	Conditions   *presenter.ConditionsView
	Air          *presenter.AirQualityView
}

type airForecastPage struct {
	LocationName string
	Viewer       viewerData
	Forecast     *presenter.AirForecastView
}

func (s *Server) handleHome(c *gin.Context) {
	v := viewerFrom(c)
	lat, lon, name := s.coordinates(c)
	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
	defer cancel()

	page := homePage{
		LocationName: name,
		Viewer:       s.viewerData(v),
	}

	start := time.Now()
	conditions, err := s.weather.Current(ctx, lat, lon)
	s.observeUpstream("openmeteo", start, err)
	if err != nil {
		s.logger.Error("failed to fetch current conditions", logger.Err(err))
	} else {
		daylight := meteo.DaylightAt(lat, lon, conditions.AsOf)
		moon := meteo.MoonPhaseName(conditions.AsOf)
		view := v.pres.CurrentConditions(conditions, conditions.PreviousPressureMSL, daylight, moon)
		page.Conditions = &view
	}

	start = time.Now()
	observations, err := s.air.CurrentObservation(ctx, lat, lon)
	s.observeUpstream("airnow", start, err)
	if err != nil {
		s.logger.Error("failed to fetch air quality", logger.Err(err))
	} else if current, err := aqi.CurrentAirQualityFrom(observations); err != nil {
		s.logger.Error("failed to rewrite air quality", logger.Err(err))
	} else {
		view := v.pres.CurrentAirQuality(current)
		page.Air = &view
	}

	s.render(c, "home.html", page)
}

func (s *Server) handleAirForecast(c *gin.Context) {
	v := viewerFrom(c)
	lat, lon, name := s.coordinates(c)
	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
	defer cancel()

	page := airForecastPage{
		LocationName: name,
		Viewer:       s.viewerData(v),
	}

	start := time.Now()
	entries, err := s.air.Forecast(ctx, lat, lon, "")
	s.observeUpstream("airnow", start, err)
	if err != nil {
		s.logger.Error("failed to fetch air quality forecast", logger.Err(err))
	} else if forecast, err := aqi.ForecastFrom(entries); err != nil {
		s.logger.Error("failed to rewrite air quality forecast", logger.Err(err))
	} else {
		view := v.pres.AirForecast(forecast)
		page.Forecast = &view
	}

	s.render(c, "air.html", page)
}

func (s *Server) viewerData(v *viewer) viewerData {
	data := viewerData{
		Units:  v.system.String(),
		Locale: v.locale,
	}
	if v.user != nil {
		data.SignedIn = true
		data.Email = v.user.Email
	}
	return data
}

// coordinates resolves the requested location, preferring explicit lat/lon
// query parameters over the configured default.
func (s *Server) coordinates(c *gin.Context) (lat, lon float64, name string) {
	lat = s.config.Location.Latitude
	lon = s.config.Location.Longitude
	name = s.config.Location.Name

	rawLat, rawLon := c.Query("lat"), c.Query("lon")
	if rawLat == "" || rawLon == "" {
		return lat, lon, name
	}
	parsedLat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil || parsedLat < -90 || parsedLat > 90 {
		return lat, lon, name
	}
	parsedLon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil || parsedLon < -180 || parsedLon > 180 {
		return lat, lon, name
	}
	return parsedLat, parsedLon, fmt.Sprintf("%.4f, %.4f", parsedLat, parsedLon)
}
