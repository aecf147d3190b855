package types

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// DiscoverySource tags which tier of the pipeline produced a response.
type DiscoverySource string

const (
	SourceCurated   DiscoverySource = "curated"
	SourceGenerated DiscoverySource = "generated"
	SourceDefault   DiscoverySource = "default"
)

// PlaceDetail is a single place record. Immutable once constructed, whether
// it came from the curated database or from the generative fallback.
type PlaceDetail struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Category       PlaceCategory `json:"category"`
	Description    string        `json:"description,omitempty"`
	Rating         float64       `json:"rating,omitempty"`
	PriceRange     string        `json:"price_range,omitempty"`
	OpeningHours   string        `json:"opening_hours,omitempty"`
	Interests      []string      `json:"interests,omitempty"`
	WhyRecommended string        `json:"why_recommended,omitempty"`
	Location       string        `json:"location,omitempty"`
}

// EventDetail is a local event entry surfaced alongside places.
type EventDetail struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// RestaurantDetail is the restaurant view of a food-category place.
type RestaurantDetail struct {
	Name       string  `json:"name"`
	Cuisine    string  `json:"cuisine"`
	Rating     float64 `json:"rating,omitempty"`
	PriceRange string  `json:"price_range,omitempty"`
	Location   string  `json:"location"`
}

// AttractionDetail is the attraction view of a sightseeing-category place.
type AttractionDetail struct {
	Name        string        `json:"name"`
	Category    PlaceCategory `json:"category"`
	Rating      float64       `json:"rating,omitempty"`
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location"`
}

// DealDetail is a promotional offer for the requested location.
type DealDetail struct {
	Description string `json:"description"`
	Discount    string `json:"discount"`
	Expires     string `json:"expires"`
}

// DiscoveryRequest is the body of POST /api/v1/local/discover.
type DiscoveryRequest struct {
	Location    string   `json:"location"`
	Interests   []string `json:"interests"`
	TravelDates string   `json:"travel_dates,omitempty"`
	Budget      string   `json:"budget,omitempty"`
}

// Validate checks the request shape. Violations surface as HTTP 400; nothing
// downstream runs for an invalid request.
func (r *DiscoveryRequest) Validate() error {
	if strings.TrimSpace(r.Location) == "" {
		return errors.New("location is required")
	}
	if len(r.Interests) == 0 {
		return errors.New("interests must not be empty")
	}
	for _, interest := range r.Interests {
		if strings.TrimSpace(interest) == "" {
			return errors.New("interests must not contain empty values")
		}
	}
	return nil
}

// LocalDiscoveryData is the aggregated payload rendered by the map client.
// TotalResults always equals the sum of the five sequence lengths.
type LocalDiscoveryData struct {
	Location     string             `json:"location"`
	Interests    []string           `json:"interests"`
	Source       DiscoverySource    `json:"source"`
	TotalResults int                `json:"total_results"`
	Experiences  []PlaceDetail      `json:"experiences"`
	Events       []EventDetail      `json:"events"`
	Restaurants  []RestaurantDetail `json:"restaurants"`
	Attractions  []AttractionDetail `json:"attractions"`
	Deals        []DealDetail       `json:"deals"`
}

// DiscoveryResponse is the HTTP envelope around LocalDiscoveryData.
type DiscoveryResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    *LocalDiscoveryData `json:"data,omitempty"`
}
