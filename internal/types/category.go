package types

import "strings"

// PlaceCategory is the fixed taxonomy every place is classified into.
type PlaceCategory string

const (
	CategoryMuseum        PlaceCategory = "museum"
	CategoryPark          PlaceCategory = "park"
	CategoryRestaurant    PlaceCategory = "restaurant"
	CategoryCafe          PlaceCategory = "cafe"
	CategoryShopping      PlaceCategory = "shopping"
	CategoryLandmark      PlaceCategory = "landmark"
	CategoryReligious     PlaceCategory = "religious"
	CategoryDistrict      PlaceCategory = "district"
	CategoryNature        PlaceCategory = "nature"
	CategoryEntertainment PlaceCategory = "entertainment"
	CategoryAccommodation PlaceCategory = "accommodation"
	CategoryTransport     PlaceCategory = "transport"
	CategoryAttraction    PlaceCategory = "attraction"
)

type categorySynonym struct {
	label    string
	category PlaceCategory
}

// categorySynonyms maps free-text labels onto the taxonomy. Ordered so that
// substring matching stays deterministic for compound labels.
var categorySynonyms = []categorySynonym{
	{"museum", CategoryMuseum},
	{"gallery", CategoryMuseum},
	{"cultural", CategoryMuseum},
	{"art", CategoryMuseum},
	{"park", CategoryPark},
	{"garden", CategoryPark},
	{"restaurant", CategoryRestaurant},
	{"food", CategoryRestaurant},
	{"market", CategoryRestaurant},
	{"dining", CategoryRestaurant},
	{"cafe", CategoryCafe},
	{"coffee", CategoryCafe},
	{"shopping", CategoryShopping},
	{"mall", CategoryShopping},
	{"landmark", CategoryLandmark},
	{"historical", CategoryLandmark},
	{"monument", CategoryLandmark},
	{"memorial", CategoryLandmark},
	{"architecture", CategoryLandmark},
	{"religious", CategoryReligious},
	{"temple", CategoryReligious},
	{"church", CategoryReligious},
	{"shrine", CategoryReligious},
	{"mosque", CategoryReligious},
	{"district", CategoryDistrict},
	{"neighborhood", CategoryDistrict},
	{"quarter", CategoryDistrict},
	{"street", CategoryDistrict},
	{"nature", CategoryNature},
	{"beach", CategoryNature},
	{"island", CategoryNature},
	{"hiking", CategoryNature},
	{"entertainment", CategoryEntertainment},
	{"theater", CategoryEntertainment},
	{"nightlife", CategoryEntertainment},
	{"experience", CategoryEntertainment},
	{"hotel", CategoryAccommodation},
	{"accommodation", CategoryAccommodation},
	{"transport", CategoryTransport},
	{"station", CategoryTransport},
	{"attraction", CategoryAttraction},
}

// NormalizeCategory maps a free-text category or interest label onto the
// taxonomy. It never fails: anything unrecognised becomes CategoryAttraction.
func NormalizeCategory(label string) PlaceCategory {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return CategoryAttraction
	}
	for _, syn := range categorySynonyms {
		if syn.label == label {
			return syn.category
		}
	}
	// Tolerate plurals and compound labels like "historical site".
	for _, syn := range categorySynonyms {
		if strings.Contains(label, syn.label) || strings.Contains(syn.label, label) {
			return syn.category
		}
	}
	return CategoryAttraction
}
