package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-local-discovery/internal/types"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain JSON untouched",
			input:    `{"places": []}`,
			expected: `{"places": []}`,
		},
		{
			name:     "Strips json code fence",
			input:    "```json\n{\"places\": []}\n```",
			expected: `{"places": []}`,
		},
		{
			name:     "Strips bare code fence",
			input:    "```\n{\"places\": []}\n```",
			expected: `{"places": []}`,
		},
		{
			name:     "Extracts object from surrounding prose",
			input:    "Here are your results: {\"places\": []} hope this helps!",
			expected: `{"places": []}`,
		},
		{
			name:     "No braces returned as-is",
			input:    "sorry, I cannot help with that",
			expected: "sorry, I cannot help with that",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanJSONResponse(tt.input))
		})
	}
}

func TestParseGeneratedPlaces(t *testing.T) {
	valid := "```json\n" + `{
		"places": [
			{"name": "Old Harbor", "category": "historical", "description": "Waterfront quarter", "rating": 4.5, "price_range": "Free", "opening_hours": "24/7", "why_recommended": "Scenic walks"},
			{"name": "Corner Bistro", "category": "food", "rating": 4.2}
		]
	}` + "\n```"

	places, err := parseGeneratedPlaces(valid)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Old Harbor", places[0].Name)
	assert.Equal(t, types.CategoryLandmark, places[0].Category)
	assert.Equal(t, types.CategoryRestaurant, places[1].Category)
	assert.NotEqual(t, places[0].ID, places[1].ID)
}

func TestParseGeneratedPlacesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Not JSON at all", input: "I would love to tell you about this city."},
		{name: "Truncated JSON", input: `{"places": [{"name": "Somewhe`},
		{name: "Empty places array", input: `{"places": []}`},
		{name: "Only unnamed places", input: `{"places": [{"category": "museum"}, {"name": "   "}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			places, err := parseGeneratedPlaces(tt.input)
			assert.Nil(t, places)
			assert.ErrorIs(t, err, types.ErrGenerationParse)
		})
	}
}

func TestParseGeneratedPlacesClampsRating(t *testing.T) {
	places, err := parseGeneratedPlaces(`{"places": [{"name": "Hype Bar", "rating": 11}]}`)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Zero(t, places[0].Rating)
}
