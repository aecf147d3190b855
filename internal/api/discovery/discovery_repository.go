package discovery

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/FACorreiaa/go-local-discovery/internal/types"
)

//go:embed places.json
var curatedPlaces []byte

var _ Repository = (*RepositoryImpl)(nil)

// Repository exposes the curated city database. Lookups never fail: an
// unknown city is an empty result, which is the signal to engage the
// generative fallback.
type Repository interface {
	GetCityPlaces(ctx context.Context, location string) []types.PlaceDetail
	CityKeys() []string
}

// RepositoryImpl is a read-only lookup table loaded once at startup and never
// mutated afterwards, so it is safe for concurrent use without locking.
type RepositoryImpl struct {
	logger *slog.Logger
	cities map[string][]types.PlaceDetail
}

type curatedCity struct {
	Country string `json:"country"`
	Places  []struct {
		Name           string   `json:"name"`
		Category       string   `json:"category"`
		Description    string   `json:"description"`
		Rating         float64  `json:"rating"`
		PriceRange     string   `json:"price_range"`
		OpeningHours   string   `json:"opening_hours"`
		Interests      []string `json:"interests"`
		WhyRecommended string   `json:"why_recommended"`
	} `json:"places"`
}

// NewRepositoryImpl parses the embedded dataset. Each city is indexed under
// both "city" and "city, country" so requests with an optional country suffix
// resolve directly.
func NewRepositoryImpl(logger *slog.Logger) (*RepositoryImpl, error) {
	var raw map[string]curatedCity
	if err := json.Unmarshal(curatedPlaces, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse embedded places dataset: %w", err)
	}

	cities := make(map[string][]types.PlaceDetail, len(raw)*2)
	for cityKey, city := range raw {
		places := make([]types.PlaceDetail, 0, len(city.Places))
		for _, p := range city.Places {
			places = append(places, types.PlaceDetail{
				ID:             uuid.New(),
				Name:           p.Name,
				Category:       types.NormalizeCategory(p.Category),
				Description:    p.Description,
				Rating:         p.Rating,
				PriceRange:     p.PriceRange,
				OpeningHours:   p.OpeningHours,
				Interests:      p.Interests,
				WhyRecommended: p.WhyRecommended,
			})
		}
		key := normalizeCityKey(cityKey)
		cities[key] = places
		if city.Country != "" {
			cities[key+", "+normalizeCityKey(city.Country)] = places
		}
	}

	logger.Info("Curated city database loaded", slog.Int("cities", len(raw)))
	return &RepositoryImpl{logger: logger, cities: cities}, nil
}

// GetCityPlaces returns the curated places for a location, or an empty slice
// if the city is not in the database. The lookup tries the full
// "city, country" form first, then the city alone.
func (r *RepositoryImpl) GetCityPlaces(ctx context.Context, location string) []types.PlaceDetail {
	key := normalizeCityKey(location)
	if places, ok := r.cities[key]; ok {
		return places
	}
	if city, _, found := strings.Cut(key, ","); found {
		if places, ok := r.cities[strings.TrimSpace(city)]; ok {
			return places
		}
	}
	r.logger.DebugContext(ctx, "City not in curated database", slog.String("location", location))
	return nil
}

// CityKeys lists the bare city keys of the curated database, sorted.
func (r *RepositoryImpl) CityKeys() []string {
	keys := make([]string, 0, len(r.cities))
	for k := range r.cities {
		if !strings.Contains(k, ",") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// normalizeCityKey lower-cases and collapses internal whitespace so that
// "Tokyo, Japan" and "tokyo,japan" resolve to the same key.
func normalizeCityKey(location string) string {
	key := strings.ToLower(strings.TrimSpace(location))
	parts := strings.Split(key, ",")
	for i, p := range parts {
		parts[i] = strings.Join(strings.Fields(p), " ")
	}
	return strings.Join(parts, ", ")
}
