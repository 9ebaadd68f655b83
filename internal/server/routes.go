// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) newRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.resolveViewer)

	router.GET("/", s.handleHome)
	router.GET("/air/forecast", s.handleAirForecast)

	router.GET("/sign-in", s.handleSignInPage)
	router.POST("/sign-in", s.handleSignInBegin)
	router.POST("/sign-in/verify", s.handleSignInVerify)
	router.POST("/sign-out", s.handleSignOut)
	router.POST("/preferences", s.handlePreferences)

	router.GET("/healthz", s.handleHealthz)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry,
		promhttp.HandlerOpts{})))

	return router
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
