package discovery

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-local-discovery/internal/api"
	"github.com/FACorreiaa/go-local-discovery/internal/types"
)

type DiscoveryHandler struct {
	discoveryService Service
	logger           *slog.Logger
}

func NewDiscoveryHandler(discoveryService Service, logger *slog.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryService: discoveryService,
		logger:           logger,
	}
}

// DiscoverLocal handles POST /api/v1/local/discover. Only request-shape
// problems surface as failures; every internal fallback error has already
// been absorbed by the service.
func (h *DiscoveryHandler) DiscoverLocal(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("DiscoveryHandler").Start(r.Context(), "DiscoverLocal", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/local/discover"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "DiscoverLocal"))
	l.DebugContext(ctx, "Discover local handler invoked")

	var req types.DiscoveryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		l.ErrorContext(ctx, "Invalid discovery request", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	span.SetAttributes(semconv.HTTPResponseStatusCodeKey.Int(http.StatusOK))

	data, err := h.discoveryService.DiscoverPlaces(ctx, req)
	if err != nil {
		l.ErrorContext(ctx, "Failed to discover places", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to discover places")
		return
	}

	l.InfoContext(ctx, "Local discovery completed",
		slog.String("location", req.Location),
		slog.String("source", string(data.Source)),
		slog.Int("total_results", data.TotalResults))
	api.WriteJSONResponse(w, r, http.StatusOK, types.DiscoveryResponse{
		Success: true,
		Message: "Local discovery completed successfully",
		Data:    data,
	})
}
