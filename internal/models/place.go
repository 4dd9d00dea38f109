package models

// City is one entry of the curated city directory.
// PriorityTier 1 marks the major cities that get the top score split.
type City struct {
	Name         string  `json:"name" yaml:"name"`
	Latitude     float64 `json:"latitude" yaml:"latitude"`
	Longitude    float64 `json:"longitude" yaml:"longitude"`
	PriorityTier int     `json:"priority_tier" yaml:"priority_tier"`
}

// PlaceResult is one row of a free-text place-lookup response.
type PlaceResult struct {
	DisplayName string `json:"display_name"`
}
