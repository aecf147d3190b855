package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FACorreiaa/go-local-discovery/app/observability/metrics"
	"github.com/FACorreiaa/go-local-discovery/config"
	"github.com/FACorreiaa/go-local-discovery/internal/api/discovery"
	generativeAI "github.com/FACorreiaa/go-local-discovery/internal/api/generative_ai"
)

// Container holds application-level dependencies.
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	DiscoveryHandler *discovery.DiscoveryHandler
}

// NewContainer creates and wires application dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	repo, err := discovery.NewRepositoryImpl(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load curated place data: %w", err)
	}

	aiClient, err := generativeAI.NewAIClient(ctx, cfg.Gemini.Model)
	if err != nil {
		// Missing or invalid credentials are a startup failure, not a
		// condition to degrade around at request time.
		return nil, fmt.Errorf("failed to initialise Gemini client: %w", err)
	}

	discoveryService := discovery.NewServiceImpl(repo, aiClient, cfg.Gemini.Timeout, metrics.Get(), logger)
	discoveryHandler := discovery.NewDiscoveryHandler(discoveryService, logger)

	logger.InfoContext(ctx, "Dependency container initialized")

	return &Container{
		Config:           cfg,
		Logger:           logger,
		DiscoveryHandler: discoveryHandler,
	}, nil
}
