package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/dispatchdesk/internal/platform/timeouts"
	"github.com/louisbranch/dispatchdesk/internal/services/admin/storage/memory"
)

// Config defines the inputs for the admin dashboard process.
type Config struct {
	HTTPAddr string
	// Seed loads the sample managers, drivers, and orders on startup.
	Seed bool
	// HTMXSrc overrides where pages load htmx from.
	HTMXSrc string
}

// Server hosts the admin dashboard over an in-memory store.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *memory.Store
}

// NewServer builds the dashboard server. Data lives only as long as the process.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	store := memory.New(memory.Options{})
	if config.Seed {
		store.Seed()
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(store, WithHTMXSrc(config.HTMXSrc)),
		ReadHeaderTimeout: timeouts.ReadHeader,
		WriteTimeout:      timeouts.Write,
		IdleTimeout:       timeouts.Idle,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		store:      store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close admin store: %v", err)
		}
	}
}
