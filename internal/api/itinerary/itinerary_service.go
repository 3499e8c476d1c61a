package itinerary

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-travel-itinerary-ai/app/observability/metrics"
	generativeAI "github.com/FACorreiaa/go-travel-itinerary-ai/internal/api/generative_ai"
	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/types"
)

const (
	errorSolutionTitle   = "Error"
	errorSolutionContent = "Could not generate a solution at this time."
)

// ErrorSolution is the stand-in answer returned when a creative query fails.
func ErrorSolution() types.CreativeSolution {
	return types.CreativeSolution{Title: errorSolutionTitle, Content: errorSolutionContent}
}

// Ensure implementation satisfies the interface
var _ ItineraryService = (*ItineraryServiceImpl)(nil)

// ItineraryService is the entry point of the generation pipeline. The trip
// plan is the primary flow and reports every failure; the tour guide and
// creative flows never fail and instead report a degraded Outcome.
type ItineraryService interface {
	PlanTrip(ctx context.Context, input types.TravelInput) (*types.ItineraryResult, error)
	DescribeLocation(ctx context.Context, locationName, destination string, lang types.Language) types.Outcome[[]types.SubSpot]
	SolveTravelProblem(ctx context.Context, query, destination string, lang types.Language) types.Outcome[types.CreativeSolution]
}

// ItineraryServiceImpl holds no per-call state and is safe for concurrent use.
type ItineraryServiceImpl struct {
	logger    *slog.Logger
	generator generativeAI.ContentGenerator
	metrics   *metrics.AppMetrics
}

func NewItineraryService(generator generativeAI.ContentGenerator, logger *slog.Logger) *ItineraryServiceImpl {
	metrics.InitAppMetrics()
	return &ItineraryServiceImpl{
		logger:    logger,
		generator: generator,
		metrics:   metrics.Get(),
	}
}

// ValidateTravelInput rejects input that can never yield a usable itinerary.
// Dates and budget are free text and are not checked.
func ValidateTravelInput(in types.TravelInput) error {
	if strings.TrimSpace(in.Destination) == "" {
		return &ValidationError{Field: "destination", Message: "must not be empty"}
	}
	if !in.Language.Valid() {
		return &ValidationError{Field: "language", Message: "must be zh or en"}
	}
	return nil
}

func (s *ItineraryServiceImpl) PlanTrip(ctx context.Context, input types.TravelInput) (*types.ItineraryResult, error) {
	if err := ValidateTravelInput(input); err != nil {
		return nil, err
	}

	result, err := generate(ctx, s, ItineraryPayload{Input: input}, ParseItinerary)
	if err != nil {
		return nil, &GenerationError{Kind: KindItinerary, Err: err}
	}
	return result, nil
}

func (s *ItineraryServiceImpl) DescribeLocation(ctx context.Context, locationName, destination string, lang types.Language) types.Outcome[[]types.SubSpot] {
	payload := SpotDetailPayload{LocationName: locationName, Destination: destination, Language: lang}
	spots, err := generate(ctx, s, payload, ParseSubSpots)
	if err != nil {
		s.degraded(ctx, KindSpotDetail, err)
		return types.Degraded([]types.SubSpot{}, err)
	}
	return types.Ok(spots)
}

func (s *ItineraryServiceImpl) SolveTravelProblem(ctx context.Context, query, destination string, lang types.Language) types.Outcome[types.CreativeSolution] {
	payload := CreativeQueryPayload{Query: query, Destination: destination, Language: lang}
	solution, err := generate(ctx, s, payload, ParseCreativeSolution)
	if err != nil {
		s.degraded(ctx, KindCreativeQuery, err)
		return types.Degraded(ErrorSolution(), err)
	}
	return types.Ok(solution)
}

func (s *ItineraryServiceImpl) degraded(ctx context.Context, kind Kind, err error) {
	s.logger.WarnContext(ctx, "Generation failed, returning fallback result",
		slog.String("kind", string(kind)),
		slog.Any("error", err))
	s.metrics.GenerationDegradedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(kind))))
}

// generate runs one build → invoke → parse pass. It makes exactly one
// backend call.
func generate[T any](ctx context.Context, s *ItineraryServiceImpl, payload Payload, parse func(string) (T, error)) (T, error) {
	kind := payload.Kind()
	generationID := uuid.New()

	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "Generate", trace.WithAttributes(
		attribute.String("generation.kind", string(kind)),
		attribute.String("generation.id", generationID.String()),
	))
	defer span.End()

	l := s.logger.With(slog.String("kind", string(kind)), slog.String("generation_id", generationID.String()))
	start := time.Now()

	var zero T
	result, err := func() (T, error) {
		req, err := BuildRequest(payload)
		if err != nil {
			return zero, err
		}
		l.DebugContext(ctx, "Instruction composed", slog.Int("instruction_length", len(req.Instruction)))

		raw, err := s.generator.GenerateJSON(ctx, req.Instruction, req.Schema)
		if err != nil {
			return zero, err
		}
		return parse(raw)
	}()

	elapsed := time.Since(start)
	outcome := string(types.OutcomeOK)
	if err != nil {
		outcome = string(types.OutcomeFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Generation failed")
		l.ErrorContext(ctx, "Generation failed", slog.Any("error", err), slog.Duration("latency", elapsed))
	} else {
		span.SetStatus(codes.Ok, "Generation succeeded")
		l.InfoContext(ctx, "Generation succeeded", slog.Duration("latency", elapsed))
	}

	kindAttr := attribute.String("kind", string(kind))
	s.metrics.GenerationRequestsTotal.Add(ctx, 1, metric.WithAttributes(kindAttr, attribute.String("outcome", outcome)))
	s.metrics.GenerationDurationSeconds.Record(ctx, elapsed.Seconds(), metric.WithAttributes(kindAttr))

	return result, err
}
