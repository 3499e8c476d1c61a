package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

const (
	DefaultModel       = "gemini-2.0-flash"
	jsonResponseMIME   = "application/json"
	defaultTemperature = 0.5
)

// ErrNoResponse is returned when the backend answers with an empty payload.
var ErrNoResponse = errors.New("no response from generative backend")

// Config is the process-wide backend configuration. It is read once at
// startup and never mutated afterwards.
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
}

// Validate fails fast on a configuration that could never reach the backend.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return errors.New("generative AI api key is not set (GOOGLE_GEMINI_API_KEY)")
	}
	if strings.TrimSpace(c.Model) == "" {
		return errors.New("generative AI model is not set")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("generative AI temperature %.2f out of range [0,2]", c.Temperature)
	}
	return nil
}

// ContentGenerator sends one instruction under a response schema and returns
// the raw JSON text the backend produced.
type ContentGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// contentModel is the subset of *genai.Models the client depends on.
type contentModel interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var _ ContentGenerator = (*AIClient)(nil)

type AIClient struct {
	models      contentModel
	model       string
	temperature float32
	logger      *slog.Logger
}

func NewAIClient(ctx context.Context, cfg Config, logger *slog.Logger) (*AIClient, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewAIClient")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid configuration")
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	span.SetStatus(codes.Ok, "AI client created successfully")
	return newAIClient(client.Models, cfg, logger), nil
}

func newAIClient(models contentModel, cfg Config, logger *slog.Logger) *AIClient {
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	return &AIClient{
		models:      models,
		model:       cfg.Model,
		temperature: temperature,
		logger:      logger,
	}
}

func (ai *AIClient) Model() string { return ai.model }

// GenerateJSON performs exactly one backend call configured for
// schema-constrained JSON output. The shape of the payload is not checked
// here; only that some text came back.
func (ai *AIClient) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateJSON", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", ai.model),
	))
	defer span.End()

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(ai.temperature),
		ResponseMIMEType: jsonResponseMIME,
		ResponseSchema:   schema,
	}

	result, err := ai.models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	var responseText string
	if result != nil {
		responseText = result.Text()
	}
	if strings.TrimSpace(responseText) == "" {
		span.RecordError(ErrNoResponse)
		span.SetStatus(codes.Error, "Empty response")
		return "", ErrNoResponse
	}

	ai.logger.DebugContext(ctx, "Generated content",
		slog.String("model", ai.model),
		slog.Int("response_length", len(responseText)))
	span.SetAttributes(attribute.Int("response.length", len(responseText)))
	span.SetStatus(codes.Ok, "Content generated successfully")
	return responseText, nil
}
