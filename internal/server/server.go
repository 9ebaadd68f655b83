// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

// Package server implements the HTTP surface of the outside web service.
package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron/v2"

	"github.com/decarbonization/outside/internal/account"
	"github.com/decarbonization/outside/internal/airnow"
	"github.com/decarbonization/outside/internal/config"
	httpx "github.com/decarbonization/outside/internal/http"
	"github.com/decarbonization/outside/internal/i18n"
	"github.com/decarbonization/outside/internal/logger"
	"github.com/decarbonization/outside/internal/meteo"
	"github.com/decarbonization/outside/internal/observability"
)

//go:embed templates/*.html
var viewFS embed.FS

const upstreamTimeout = 10 * time.Second

// Server wires the domain clients, the account store and the view templates
// behind a gin router.
type Server struct {
	config    *config.Config
	logger    *logger.Logger
	bundle    *i18n.Bundle
	air       *airnow.Client
	weather   *meteo.Client
	accounts  *account.Store
	metrics   *observability.Metrics
	router    *gin.Engine
	scheduler gocron.Scheduler
	views     *template.Template
}

// New builds a fully wired server from the given configuration.
func New(conf *config.Config, log *logger.Logger, bundle *i18n.Bundle) (*Server, error) {
	return newServer(conf, log, bundle, observability.New())
}

// NewForTesting builds a server whose metrics stay out of the default
// Prometheus registry, so tests can construct servers repeatedly.
func NewForTesting(conf *config.Config, log *logger.Logger, bundle *i18n.Bundle) (*Server, error) {
	return newServer(conf, log, bundle, observability.NewForTesting())
}

func newServer(conf *config.Config, log *logger.Logger, bundle *i18n.Bundle,
	metrics *observability.Metrics,
) (*Server, error) {
	weather, err := meteo.New(conf.OpenMeteo.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create Open-Meteo client: %w", err)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	// Parsed once with no-op funcs; each request clones the set and rebinds
	// the funcs to its own locale before executing.
	views, err := template.New("views").Funcs(neutralFuncMap()).ParseFS(viewFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse view templates: %w", err)
	}

	srv := &Server{
		config:    conf,
		logger:    log,
		bundle:    bundle,
		air:       airnow.New(httpx.New(log), conf.AirNow.APIKey, conf.AirNow.BaseURL),
		weather:   weather,
		accounts:  account.NewStore(conf.Sessions.OTPTTL, conf.Sessions.TTL),
		metrics:   metrics,
		scheduler: scheduler,
		views:     views,
	}
	srv.router = srv.newRouter()
	return srv, nil
}

// Accounts exposes the account store, mainly for tests and the sweep job.
func (s *Server) Accounts() *account.Store {
	return s.accounts
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if err := s.createScheduledJob(ctx, s.config.Sessions.SweepInterval, s.sweepSessions,
		"session_sweep_job"); err != nil {
		return err
	}
	s.scheduler.Start()

	httpSrv := &http.Server{
		Addr:              s.config.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", s.config.ListenAddr)

	select {
	case err := <-errCh:
		_ = s.scheduler.Shutdown()
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		_ = s.scheduler.Shutdown()
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return s.scheduler.Shutdown()
}

func (s *Server) createScheduledJob(ctx context.Context, interval time.Duration, task func(context.Context),
	jobName string,
) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName(jobName),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", jobName, err)
	}
	return nil
}

func (s *Server) sweepSessions(context.Context) {
	if removed := s.accounts.Sweep(); removed > 0 {
		s.logger.Info("swept expired sessions and codes", "removed", removed)
	}
}

func (s *Server) observeUpstream(provider string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.metrics.UpstreamReqs.WithLabelValues(provider, outcome).Inc()
	s.metrics.UpstreamTime.WithLabelValues(provider).Observe(time.Since(start).Seconds())
}
