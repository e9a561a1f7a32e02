// Package httpapi is the small echo-based HTTP front end for duckling:
// POST /parse, GET /healthz, and GET /metrics. Grounded in
// fyrsmithlabs-contextd's use of echo for its own HTTP API
// (internal/http/server.go): a request-ID-tagged middleware chain, JSON
// request/response bodies, and a promhttp.Handler mount for /metrics.
package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/extractly/duckling"
	"github.com/extractly/duckling/entity"
	"github.com/extractly/duckling/internal/xlog"
	"github.com/extractly/duckling/locale"
	"github.com/extractly/duckling/token"
)

// Server wraps an *echo.Echo configured with duckling's HTTP routes.
type Server struct {
	echo *echo.Echo
}

// New builds a Server with request-ID, recovery, and request-logging
// middleware installed, then registers routes.
func New() *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			xlog.Infof("http %s %s status=%d duration=%s request_id=%s",
				c.Request().Method, c.Request().RequestURI, c.Response().Status,
				time.Since(start), c.Response().Header().Get(echo.HeaderXRequestID))
			return err
		}
	})

	s := &Server{echo: e}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/healthz", s.handleHealthz)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.POST("/parse", s.handleParse)
}

// Echo exposes the underlying *echo.Echo for tests and for embedding in a
// larger server.
func (s *Server) Echo() *echo.Echo { return s.echo }

// Start blocks serving on addr.
func (s *Server) Start(addr string) error {
	xlog.Infof("http server listening on %s", addr)
	return s.echo.Start(addr)
}

func (s *Server) handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// parseRequest is the POST /parse request body: the spec.md §6 parse
// signature over the wire.
type parseRequest struct {
	Text          string   `json:"text"`
	Lang          string   `json:"lang"`
	Region        string   `json:"region,omitempty"`
	Dims          []string `json:"dims,omitempty"`
	ReferenceTime string   `json:"reference_time"`
	WithLatent    bool     `json:"with_latent"`
}

func (s *Server) handleParse(c echo.Context) error {
	var req parseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}
	if req.Lang == "" {
		req.Lang = "en"
	}

	ref := time.Now().UTC()
	if req.ReferenceTime != "" {
		t, err := time.Parse(time.RFC3339, req.ReferenceTime)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "reference_time must be RFC3339")
		}
		ref = t
	}

	dims := make([]token.Dimension, len(req.Dims))
	for i, d := range req.Dims {
		dims[i] = token.Dimension(d)
	}

	loc := locale.Locale{Lang: req.Lang, Region: req.Region}
	entities := duckling.Parse(req.Text, loc, dims, ref, duckling.Options{WithLatent: req.WithLatent})
	if entities == nil {
		entities = []entity.Entity{}
	}
	return c.JSON(http.StatusOK, entities)
}
