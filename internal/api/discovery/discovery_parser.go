package discovery

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/FACorreiaa/go-local-discovery/internal/types"
)

// cleanJSONResponse strips markdown code fences and surrounding prose from a
// model response, leaving the first {...} object.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	if strings.HasSuffix(response, "```") {
		response = strings.TrimSuffix(response, "```")
	}
	response = strings.TrimSpace(response)

	firstBrace := strings.Index(response, "{")
	if firstBrace == -1 {
		return response
	}
	lastBrace := strings.LastIndex(response, "}")
	if lastBrace == -1 || lastBrace <= firstBrace {
		return response
	}
	return strings.TrimSpace(response[firstBrace : lastBrace+1])
}

// parseGeneratedPlaces coerces a generative response into the same record
// type the curated path produces. Any shape problem is reported as
// ErrGenerationParse so the caller can degrade to generic defaults.
func parseGeneratedPlaces(response string) ([]types.PlaceDetail, error) {
	var payload struct {
		Places []struct {
			Name           string  `json:"name"`
			Category       string  `json:"category"`
			Description    string  `json:"description"`
			Rating         float64 `json:"rating"`
			PriceRange     string  `json:"price_range"`
			OpeningHours   string  `json:"opening_hours"`
			WhyRecommended string  `json:"why_recommended"`
		} `json:"places"`
	}

	cleaned := cleanJSONResponse(response)
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrGenerationParse, err)
	}
	if len(payload.Places) == 0 {
		return nil, fmt.Errorf("%w: response contained no places", types.ErrGenerationParse)
	}

	places := make([]types.PlaceDetail, 0, len(payload.Places))
	for _, p := range payload.Places {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		rating := p.Rating
		if rating < 0 || rating > 5 {
			rating = 0
		}
		places = append(places, types.PlaceDetail{
			ID:             uuid.New(),
			Name:           p.Name,
			Category:       types.NormalizeCategory(p.Category),
			Description:    p.Description,
			Rating:         rating,
			PriceRange:     p.PriceRange,
			OpeningHours:   p.OpeningHours,
			WhyRecommended: p.WhyRecommended,
		})
	}
	if len(places) == 0 {
		return nil, fmt.Errorf("%w: all generated places were unnamed", types.ErrGenerationParse)
	}
	return places, nil
}
