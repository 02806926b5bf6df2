// README: API gateway; owns the gin engine and the listening server's lifecycle.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"travelbuddy/internal/modules/preference"
	"travelbuddy/internal/service"
)

type ServerDeps struct {
	Assistant      *service.Assistant
	Preferences    *preference.Service
	Origins        []string
	RequestTimeout time.Duration
	Version        string
	Log            *zap.Logger
}

type Server struct {
	srv   *http.Server
	log   *zap.Logger
	grace time.Duration
}

func NewServer(addr string, grace time.Duration, deps ServerDeps) *Server {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	if grace <= 0 {
		grace = 10 * time.Second
	}
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log:   log,
		grace: grace,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
