// SPDX-License-Identifier: GPL-3.0-or-later
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/CrawX/go-spamblocker/domain"
	"github.com/CrawX/go-spamblocker/log"
	"github.com/CrawX/go-spamblocker/pipeline"
	"github.com/CrawX/go-spamblocker/submission"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Decider interface {
	Decide(ctx context.Context, securityCheck bool, submission domain.Submission) *pipeline.Decision
}

type SiteSource interface {
	Site() domain.SiteMetadata
}

// CheckRequest is what the donation form hook posts for every submission that passed its
// own validation, or failed it with SecurityCheck set to false.
type CheckRequest struct {
	SecurityCheck *bool             `json:"security_check"`
	Values        map[string]string `json:"values"`
	Request       struct {
		RemoteIP  string            `json:"remote_ip"`
		UserAgent string            `json:"user_agent"`
		Referrer  string            `json:"referrer"`
		Headers   map[string]string `json:"headers"`
	} `json:"request"`
}

func (cr *CheckRequest) SubmittedValues() map[string]string {
	return cr.Values
}

func (cr *CheckRequest) RemoteIP() string {
	return cr.Request.RemoteIP
}

func (cr *CheckRequest) UserAgent() string {
	return cr.Request.UserAgent
}

func (cr *CheckRequest) Referrer() string {
	return cr.Request.Referrer
}

func (cr *CheckRequest) Headers() http.Header {
	headers := http.Header{}
	for k, v := range cr.Request.Headers {
		headers[k] = []string{v}
	}
	return headers
}

type CheckResponse struct {
	ID        string `json:"id"`
	Allow     bool   `json:"allow"`
	BlockedBy string `json:"blocked_by,omitempty"`
}

type Server struct {
	echo    *echo.Echo
	decider Decider
	site    SiteSource

	l *logrus.Logger
}

func NewServer(decider Decider, site SiteSource) *Server {
	s := &Server{
		echo:    echo.New(),
		decider: decider,
		site:    site,
		l:       log.Logger(log.LOG_SERVER),
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := s.l.WithFields(logrus.Fields{"method": v.Method, "uri": v.URI, "status": v.Status, "duration": v.Latency})
			if v.Error != nil {
				entry.WithField("error", v.Error).Warn("Request failed")
			} else {
				entry.Debug("Request")
			}
			return nil
		},
	}))

	s.echo.GET("/ping", s.handlePing)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.POST("/v1/check", s.handleCheck)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks until the server is shut down.
func (s *Server) Start(address string) error {
	s.l.WithField("address", address).Info("Listening")
	err := s.echo.Start(address)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not serve: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.echo.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("could not shut down server: %w", err)
	}

	return nil
}

func (s *Server) handlePing(c echo.Context) error {
	return c.String(http.StatusOK, "pong")
}

func (s *Server) handleCheck(c echo.Context) error {
	req := &CheckRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid check request")
	}

	securityCheck := true
	if req.SecurityCheck != nil {
		securityCheck = *req.SecurityCheck
	}

	decision := s.decider.Decide(c.Request().Context(), securityCheck, submission.New(req, s.site.Site()))

	return c.JSON(http.StatusOK, CheckResponse{
		ID:        decision.ID,
		Allow:     decision.Allow,
		BlockedBy: decision.BlockedBy,
	})
}
