package itinerary

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/api"
	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/types"
)

type HandlerImpl struct {
	itineraryService ItineraryService
	logger           *slog.Logger
}

func NewHandlerImpl(itineraryService ItineraryService, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// PlanTrip generates a multi-day itinerary. Failures are reported to the
// caller so it can offer a retry.
func (h *HandlerImpl) PlanTrip(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "PlanTrip", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itinerary"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "PlanTrip"))
	l.DebugContext(ctx, "Plan trip handler invoked")

	var input types.TravelInput
	if err := api.DecodeJSONBody(w, r, &input); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.itineraryService.PlanTrip(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			l.WarnContext(ctx, "Invalid travel input", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		default:
			span.RecordError(err)
			l.ErrorContext(ctx, "Failed to plan trip", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusBadGateway, "Failed to generate itinerary, please try again")
		}
		return
	}

	l.InfoContext(ctx, "Itinerary generated", slog.Int("days", len(result.Days)))
	api.WriteJSONResponse(w, r, http.StatusOK, result)
}

// DescribeLocation answers with sub-spots; a failed generation yields an
// empty list flagged as degraded.
func (h *HandlerImpl) DescribeLocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "DescribeLocation", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itinerary/spots"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "DescribeLocation"))

	var req types.SpotDetailRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.LocationName) == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "locationName is required")
		return
	}

	outcome := h.itineraryService.DescribeLocation(ctx, req.LocationName, req.Destination, req.Language)
	resp := types.SubSpotsResponse{Status: outcome.Status, SubSpots: outcome.Value}
	if outcome.Err != nil {
		resp.Error = outcome.Err.Error()
	}
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// SolveTravelProblem answers a free-form travel question; a failed
// generation yields the fixed error solution flagged as degraded.
func (h *HandlerImpl) SolveTravelProblem(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "SolveTravelProblem", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itinerary/creative"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SolveTravelProblem"))

	var req types.CreativeQueryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "query is required")
		return
	}

	outcome := h.itineraryService.SolveTravelProblem(ctx, req.Query, req.Destination, req.Language)
	resp := types.CreativeSolutionResponse{Status: outcome.Status, Solution: outcome.Value}
	if outcome.Err != nil {
		resp.Error = outcome.Err.Error()
	}
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

func (h *HandlerImpl) GetInterests(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, map[string][]string{"interests": types.DefaultInterests()})
}
