package discovery

import (
	"github.com/FACorreiaa/go-local-discovery/internal/types"
)

// newDiscoveryData assembles the final payload from whichever tier produced
// the places. Every place becomes an experience; food places additionally
// appear under restaurants and sightseeing places under attractions.
// TotalResults is computed as the sum of all five sequences.
func newDiscoveryData(req types.DiscoveryRequest, places []types.PlaceDetail, source types.DiscoverySource) *types.LocalDiscoveryData {
	experiences := make([]types.PlaceDetail, 0, len(places))
	restaurants := make([]types.RestaurantDetail, 0)
	attractions := make([]types.AttractionDetail, 0)

	for _, place := range places {
		place.Location = req.Location
		experiences = append(experiences, place)

		switch place.Category {
		case types.CategoryRestaurant, types.CategoryCafe:
			restaurants = append(restaurants, types.RestaurantDetail{
				Name:       place.Name,
				Cuisine:    "Local",
				Rating:     place.Rating,
				PriceRange: place.PriceRange,
				Location:   req.Location,
			})
		case types.CategoryLandmark, types.CategoryMuseum, types.CategoryPark:
			attractions = append(attractions, types.AttractionDetail{
				Name:        place.Name,
				Category:    place.Category,
				Rating:      place.Rating,
				Description: place.Description,
				Location:    req.Location,
			})
		}
	}

	events := sampleEvents(req.Location)
	deals := sampleDeals(req.Location)

	return &types.LocalDiscoveryData{
		Location:     req.Location,
		Interests:    req.Interests,
		Source:       source,
		TotalResults: len(experiences) + len(events) + len(restaurants) + len(attractions) + len(deals),
		Experiences:  experiences,
		Events:       events,
		Restaurants:  restaurants,
		Attractions:  attractions,
		Deals:        deals,
	}
}
