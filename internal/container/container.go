package container

import (
	"context"
	"log/slog"
	"net/http"

	appMiddleware "github.com/FACorreiaa/go-travel-itinerary-ai/app/middleware"
	"github.com/FACorreiaa/go-travel-itinerary-ai/config"
	generativeAI "github.com/FACorreiaa/go-travel-itinerary-ai/internal/api/generative_ai"
	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/api/itinerary"
)

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	AIClient         *generativeAI.AIClient
	ItineraryService *itinerary.ItineraryServiceImpl
	ItineraryHandler *itinerary.HandlerImpl
}

// NewContainer initializes and returns a new dependency container. The
// generative backend configuration is validated here, so a missing
// credential stops the process before it serves anything.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	aiClient, err := generativeAI.NewAIClient(ctx, cfg.GenerativeAI(), logger)
	if err != nil {
		logger.Error("Failed to initialize AI client", slog.Any("error", err))
		return nil, err
	}

	itineraryService := itinerary.NewItineraryService(aiClient, logger)
	itineraryHandler := itinerary.NewHandlerImpl(itineraryService, logger)

	return &Container{
		Config:           cfg,
		Logger:           logger,
		AIClient:         aiClient,
		ItineraryService: itineraryService,
		ItineraryHandler: itineraryHandler,
	}, nil
}

// AuthMiddleware returns the bearer token check, or nil when no secret is
// configured.
func (c *Container) AuthMiddleware() func(http.Handler) http.Handler {
	if c.Config.Auth.JWTSecret == "" {
		return nil
	}
	return appMiddleware.Authenticate([]byte(c.Config.Auth.JWTSecret), c.Config.Auth.Audience)
}
