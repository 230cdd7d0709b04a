package devserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/itchan-dev/forum/shared/logger"
)

const (
	readTimeout     = 5 * time.Second
	writeTimeout    = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server is the development stand-in for the remote forum service.
type Server struct {
	Store *Store
	http  *http.Server
}

func New(addr string, allowedOrigins []string, users ...string) *Server {
	store := NewStore(users...)
	return &Server{
		Store: store,
		http: &http.Server{
			Addr:         addr,
			Handler:      NewRouter(NewHandler(store), allowedOrigins),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("starting devserver", "component", "devserver", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Log.Info("devserver shutting down gracefully", "component", "devserver")
	return s.http.Shutdown(shutdownCtx)
}
