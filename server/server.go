// Package server exposes the pipeline validator over HTTP. It owns the
// Fiber app, the CORS/logging/recovery middleware and the Prometheus
// collectors; the validation itself lives in the root pipecheck package.
package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recovermw "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server bundles the Fiber app with its config, logger and metrics.
type Server struct {
	cfg     Config
	log     *slog.Logger
	metrics *metrics
	app     *fiber.App
}

// New builds a ready-to-listen server.
func New(cfg Config, log *slog.Logger) *Server {
	s := &Server{cfg: cfg, log: log, metrics: newMetrics()}

	app := fiber.New()
	app.Use(recovermw.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowOrigin},
		AllowCredentials: true,
	}))

	app.Get("/", s.handlePing)
	app.Post("/pipelines/parse", s.handleParsePipeline)
	app.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	s.app = app
	return s
}

// Listen blocks serving HTTP on the configured address.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Addr)
}

// App exposes the underlying Fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
