package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"user-service/internal/config"
	"user-service/internal/http"
	"user-service/internal/identity/cognito"
)

// Service wires configuration, the identity provider gateway and the HTTP
// server together.
type Service struct {
	config *config.Config
	server *http.Server
}

// NewService creates and initializes a new Service instance
func NewService() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	gateway, err := cognito.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity provider client: %w", err)
	}

	server := http.NewServer(&http.ServerDependencies{
		Config:  cfg,
		Gateway: gateway,
	})

	return &Service{
		config: cfg,
		server: server,
	}, nil
}

// Start runs the HTTP server and blocks until shutdown.
func (s *Service) Start() error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Start(":" + s.config.Server.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	return s.Shutdown(ctx)
}

// Shutdown gracefully shuts down the service
func (s *Service) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
