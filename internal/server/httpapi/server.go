// Package httpapi exposes the finance tracker over HTTP+JSON: routing,
// the bearer-token authentication gate, request logging, CORS and
// Prometheus metrics.
package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/cauafjorge/personal-finance-tracker/internal/logging"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/config"
	"github.com/cauafjorge/personal-finance-tracker/internal/server/services"
)

// Server owns the HTTP endpoint and its dependencies. Handlers receive
// the authenticated user explicitly via the request context populated
// by the authentication middleware; there is no other ambient state.
type Server struct {
	address        string
	logger         logging.Logger
	users          *services.UserService
	transactions   *services.TransactionService
	db             *sql.DB
	jwtSecret      []byte
	allowedOrigins []string
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, ts *services.TransactionService, db *sql.DB) *Server {
	return &Server{
		address:        cfg.EndpointAddr,
		logger:         l.With("module", "http_server"),
		users:          us,
		transactions:   ts,
		db:             db,
		jwtSecret:      []byte(cfg.SecretKey),
		allowedOrigins: cfg.AllowedOrigins,
	}
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
