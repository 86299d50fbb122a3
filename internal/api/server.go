// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kerem-isiktasli/logos/internal/logging"
)

// Server wraps http.Server so it can be registered in the supervisor
// tree's API layer (internal/supervisor.SupervisorTree.AddAPIService):
// Serve blocks until ctx is canceled, then shuts the listener down
// gracefully.
type Server struct {
	httpServer *http.Server
}

// NewServer builds a Server listening on addr (host:port) and serving
// handler.
func NewServer(addr string, handler http.Handler, timeout time.Duration) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: timeout,
			ReadTimeout:       timeout,
			WriteTimeout:      timeout,
		},
	}
}

// Serve implements suture.Service: it starts the listener and blocks
// until ctx is canceled, at which point it shuts down within 10s.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", s.httpServer.Addr).Msg("api: listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("api: graceful shutdown: %w", err)
		}
		return nil
	}
}
