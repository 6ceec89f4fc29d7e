package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
)

// Server exposes a hub over HTTP
type Server struct {
	hub *Hub
	srv *http.Server
	ln  net.Listener
}

// Listen binds the configured address and mounts the hub
func Listen(hub *Hub) (*Server, error) {
	if hub.cfg.Address == "" {
		return nil, fmt.Errorf("listen: address is required")
	}

	ln, err := net.Listen("tcp", hub.cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", hub.cfg.Address, err)
	}

	mux := http.NewServeMux()
	mux.Handle(hub.cfg.Path, hub)

	return &Server{
		hub: hub,
		srv: &http.Server{Handler: mux},
		ln:  ln,
	}, nil
}

// Addr returns the bound address
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Serve blocks until ctx is cancelled, then shuts down
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(s.ln)
	}()
	log.Printf("[network] event stream on ws://%s%s", s.Addr(), s.hub.cfg.Path)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.hub.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
