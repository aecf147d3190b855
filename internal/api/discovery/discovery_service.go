package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/FACorreiaa/go-local-discovery/app/observability/metrics"
	"github.com/FACorreiaa/go-local-discovery/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for local discovery.
type Service interface {
	DiscoverPlaces(ctx context.Context, req types.DiscoveryRequest) (*types.LocalDiscoveryData, error)
}

// Generator is the generative text backend used by the fallback tier.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type ServiceImpl struct {
	logger     *slog.Logger
	repo       Repository
	generator  Generator
	metrics    *metrics.AppMetrics
	cache      *cache.Cache
	group      singleflight.Group
	genTimeout time.Duration
}

// NewServiceImpl wires the discovery pipeline. appMetrics may be nil (tests);
// genTimeout bounds a single generative attempt and defaults to 8s.
func NewServiceImpl(repo Repository, generator Generator, genTimeout time.Duration, appMetrics *metrics.AppMetrics, logger *slog.Logger) *ServiceImpl {
	if genTimeout <= 0 {
		genTimeout = 8 * time.Second
	}
	return &ServiceImpl{
		logger:     logger,
		repo:       repo,
		generator:  generator,
		metrics:    appMetrics,
		cache:      cache.New(24*time.Hour, 1*time.Hour), // Cache generated cities for 24 hours with cleanup every hour
		genTimeout: genTimeout,
	}
}

// DiscoverPlaces runs the three-tier pipeline: curated database, generative
// fallback, generic defaults. It never returns an error for a valid request;
// availability is prioritised over precision.
func (s *ServiceImpl) DiscoverPlaces(ctx context.Context, req types.DiscoveryRequest) (*types.LocalDiscoveryData, error) {
	ctx, span := otel.Tracer("DiscoveryService").Start(ctx, "DiscoverPlaces", trace.WithAttributes(
		attribute.String("discovery.location", req.Location),
		attribute.Int("discovery.interests_count", len(req.Interests)),
	))
	defer span.End()

	if err := req.Validate(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DiscoveryRequestsTotal.Add(ctx, 1)
	}

	places := s.repo.GetCityPlaces(ctx, req.Location)
	if len(places) > 0 {
		matched := matchByInterests(places, req.Interests)
		if len(matched) > 0 {
			if s.metrics != nil {
				s.metrics.CuratedHitsTotal.Add(ctx, 1)
			}
			span.SetAttributes(attribute.String("discovery.source", string(types.SourceCurated)))
			span.SetStatus(codes.Ok, "Served from curated database")
			return newDiscoveryData(req, matched, types.SourceCurated), nil
		}
		// An empty match is treated exactly like a database miss.
		s.logger.DebugContext(ctx, "No curated places matched interests, engaging fallback",
			slog.String("location", req.Location))
	}

	generated, source := s.generatePlaces(ctx, req)
	span.SetAttributes(attribute.String("discovery.source", string(source)))
	span.SetStatus(codes.Ok, "Served from fallback")
	return newDiscoveryData(req, generated, source), nil
}

// generatePlaces asks the generative backend for a place list. Identical
// in-flight requests are collapsed via singleflight and successful results
// cached per city+interests. Any failure degrades to the generic default set.
func (s *ServiceImpl) generatePlaces(ctx context.Context, req types.DiscoveryRequest) ([]types.PlaceDetail, types.DiscoverySource) {
	cacheKey := generationCacheKey(req.Location, req.Interests)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]types.PlaceDetail), types.SourceGenerated
	}

	if s.metrics != nil {
		s.metrics.FallbackGenerationsTotal.Add(ctx, 1)
	}

	result, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
		defer cancel()

		start := time.Now()
		response, genErr := s.generator.GenerateContent(genCtx, getDiscoveryPlacesPrompt(req))
		if s.metrics != nil {
			s.metrics.GenerationDurationSeconds.Record(ctx, time.Since(start).Seconds())
		}
		if genErr != nil {
			return nil, fmt.Errorf("%w: %s", types.ErrBackendUnavailable, genErr)
		}

		places, parseErr := parseGeneratedPlaces(response)
		if parseErr != nil {
			return nil, parseErr
		}
		s.cache.Set(cacheKey, places, cache.DefaultExpiration)
		return places, nil
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.FallbackFailuresTotal.Add(ctx, 1)
		}
		s.logger.WarnContext(ctx, "Generative fallback failed, serving generic defaults",
			slog.Any("error", err), slog.String("location", req.Location))
		return defaultPlaces(), types.SourceDefault
	}
	return result.([]types.PlaceDetail), types.SourceGenerated
}

func generationCacheKey(location string, interests []string) string {
	normalized := make([]string, 0, len(interests))
	for _, interest := range interests {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(interest)))
	}
	return fmt.Sprintf("discover:%s:%s", normalizeCityKey(location), strings.Join(normalized, ","))
}

// matchByInterests keeps the places whose interest tags, category or
// description overlap at least one requested interest. The filter is stable:
// database order is preserved and no relevance re-ranking is applied.
func matchByInterests(places []types.PlaceDetail, interests []string) []types.PlaceDetail {
	normalized := make([]string, 0, len(interests))
	for _, interest := range interests {
		if trimmed := strings.ToLower(strings.TrimSpace(interest)); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}

	var matched []types.PlaceDetail
	for _, place := range places {
		if placeMatchesInterests(place, normalized) {
			matched = append(matched, place)
		}
	}
	return matched
}

func placeMatchesInterests(place types.PlaceDetail, interests []string) bool {
	category := string(place.Category)
	description := strings.ToLower(place.Description)

	for _, interest := range interests {
		for _, tag := range place.Interests {
			tag = strings.ToLower(tag)
			if strings.Contains(tag, interest) || strings.Contains(interest, tag) {
				return true
			}
		}
		if strings.Contains(category, interest) || strings.Contains(interest, category) {
			return true
		}
		if string(types.NormalizeCategory(interest)) == category {
			return true
		}
		if strings.Contains(description, interest) {
			return true
		}
	}
	return false
}
