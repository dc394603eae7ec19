package request_models

import "time"

type CreateTripRequest struct {
	Title       string    `json:"title" binding:"required,min=1,max=100"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Budget      float64   `json:"budget"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Color       string    `json:"color"`
	ImageURL    string    `json:"image_url"`
	Itineraries []string  `json:"itineraries"`
}

// UpdateTripRequest is a sparse patch. Nil means "leave the field alone";
// a non-nil Itineraries list replaces the trip's itinerary associations.
type UpdateTripRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Budget      *float64   `json:"budget"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Color       *string    `json:"color"`
	ImageURL    *string    `json:"image_url"`
	Itineraries *[]string  `json:"itineraries"`
}
