package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected PlaceCategory
	}{
		{name: "Exact canonical label", label: "museum", expected: CategoryMuseum},
		{name: "Mixed case with whitespace", label: "  MuSeUm ", expected: CategoryMuseum},
		{name: "Gallery maps to museum", label: "gallery", expected: CategoryMuseum},
		{name: "Food maps to restaurant", label: "food", expected: CategoryRestaurant},
		{name: "Market maps to restaurant", label: "market", expected: CategoryRestaurant},
		{name: "Historical maps to landmark", label: "historical", expected: CategoryLandmark},
		{name: "Monument maps to landmark", label: "monument", expected: CategoryLandmark},
		{name: "Temple maps to religious", label: "temple", expected: CategoryReligious},
		{name: "Beach maps to nature", label: "beach", expected: CategoryNature},
		{name: "Nightlife maps to entertainment", label: "nightlife", expected: CategoryEntertainment},
		{name: "Compound label via substring", label: "street food", expected: CategoryRestaurant},
		{name: "Unknown label falls back", label: "quantum physics lab", expected: CategoryAttraction},
		{name: "Empty label falls back", label: "", expected: CategoryAttraction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCategory(tt.label))
		})
	}
}

func TestNormalizeCategoryIsIdempotent(t *testing.T) {
	// Normalizing an already-canonical label must return it unchanged.
	canonical := []PlaceCategory{
		CategoryMuseum, CategoryPark, CategoryRestaurant, CategoryCafe,
		CategoryShopping, CategoryLandmark, CategoryReligious, CategoryDistrict,
		CategoryNature, CategoryEntertainment, CategoryAccommodation,
		CategoryTransport, CategoryAttraction,
	}
	for _, c := range canonical {
		assert.Equal(t, c, NormalizeCategory(string(c)), "category %q should be a fixed point", c)
	}
}

func TestNormalizeCategoryIsDeterministic(t *testing.T) {
	// Compound labels matching more than one synonym must always resolve the
	// same way, run after run.
	first := NormalizeCategory("street food")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, NormalizeCategory("street food"))
	}
}
