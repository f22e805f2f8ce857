package server

import "os"

const (
	defaultAddr        = ":8000"
	defaultFrontendURL = "http://localhost:3000"
)

// Config holds process-wide settings, loaded once at startup and never
// touched by the validator.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string
	// AllowOrigin is the single origin allowed by CORS, typically the
	// frontend serving the pipeline editor.
	AllowOrigin string
}

// FromEnv builds a Config from PIPECHECK_ADDR and FRONTEND_URL, falling
// back to defaults when unset.
func FromEnv() Config {
	cfg := Config{Addr: defaultAddr, AllowOrigin: defaultFrontendURL}
	if v := os.Getenv("PIPECHECK_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.AllowOrigin = v
	}
	return cfg
}
