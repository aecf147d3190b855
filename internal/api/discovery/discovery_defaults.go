package discovery

import (
	"github.com/google/uuid"

	"github.com/FACorreiaa/go-local-discovery/internal/types"
)

// defaultPlaces is the last-resort tier: a small generic set returned when
// both the curated database and the generative fallback come up empty, so
// the map client always has something to render.
func defaultPlaces() []types.PlaceDetail {
	return []types.PlaceDetail{
		{
			ID:             uuid.New(),
			Name:           "City Center",
			Category:       types.CategoryDistrict,
			Description:    "Main city center with shops and restaurants",
			Rating:         4.0,
			PriceRange:     "Free",
			OpeningHours:   "24/7",
			WhyRecommended: "Heart of the city",
		},
		{
			ID:             uuid.New(),
			Name:           "Central Museum",
			Category:       types.CategoryMuseum,
			Description:    "Main city museum with local history",
			Rating:         4.2,
			PriceRange:     "$10-15",
			OpeningHours:   "10:00-17:00",
			WhyRecommended: "Learn about local culture and history",
		},
		{
			ID:             uuid.New(),
			Name:           "Historic District",
			Category:       types.CategoryLandmark,
			Description:    "Old part of town with historic buildings",
			Rating:         4.1,
			PriceRange:     "Free",
			OpeningHours:   "24/7",
			WhyRecommended: "Beautiful historic architecture",
		},
		{
			ID:             uuid.New(),
			Name:           "Local Market",
			Category:       types.CategoryRestaurant,
			Description:    "Traditional market with local products",
			Rating:         4.3,
			PriceRange:     "$5-20",
			OpeningHours:   "8:00-18:00",
			WhyRecommended: "Authentic local experience",
		},
	}
}

// sampleEvents returns a deterministic set of local events for the location.
// Deterministic on purpose: identical requests must produce identical
// responses on the curated path.
func sampleEvents(location string) []types.EventDetail {
	return []types.EventDetail{
		{Name: "Local Food Festival", Date: "This weekend", Location: location},
		{Name: "Art Gallery Opening", Date: "Next Friday", Location: location},
		{Name: "Cultural Performance", Date: "Every evening", Location: location},
	}
}

func sampleDeals(location string) []types.DealDetail {
	return []types.DealDetail{
		{Description: "10% off museum admissions", Discount: "10%", Expires: "End of month"},
		{Description: "Free walking tour booking", Discount: "100%", Expires: "Limited time"},
		{Description: "Happy hour at local restaurants", Discount: "20%", Expires: "Daily 4-6 PM"},
	}
}
