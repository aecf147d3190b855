package discovery

import (
	"fmt"
	"strings"

	"github.com/FACorreiaa/go-local-discovery/internal/types"
)

func getDiscoveryPlacesPrompt(req types.DiscoveryRequest) string {
	var context string
	if req.TravelDates != "" || req.Budget != "" {
		context = fmt.Sprintf("Travel Dates: %s, Budget: %s", req.TravelDates, req.Budget)
	}

	return fmt.Sprintf(`
            Generate a list of famous places and attractions for %s based on these interests: %s.
            %s
            Focus on well-known, authentic places that match the interests. Provide at least 8-10 places.
            Return the response STRICTLY as a JSON object with:
            {
            "places": [
                {
                "name": "Name of the place",
                "category": "Primary category (e.g., museum, park, restaurant, landmark, religious, district)",
                "description": "A 1-2 sentence description of this place",
                "rating": <float between 1 and 5>,
                "price_range": "Typical price or price band, e.g. '$10-20' or 'Free'",
                "opening_hours": "Typical opening hours, e.g. '9:00-17:00'",
                "why_recommended": "Reason why this place is special"
                }
            ]
            }`, req.Location, strings.Join(req.Interests, ", "), context)
}
