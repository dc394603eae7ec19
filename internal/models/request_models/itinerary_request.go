package request_models

import "time"

type LocationPayload struct {
	Name      string     `json:"name" binding:"required"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Date      *time.Time `json:"date"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Color     string     `json:"color"`
	Comments  string     `json:"comments"`
}

type TransportationPayload struct {
	Type          string     `json:"type" binding:"required"`
	FromLocation  string     `json:"from_location"`
	ToLocation    string     `json:"to_location"`
	DepartureDate *time.Time `json:"departure_date"`
	DepartureTime string     `json:"departure_time"`
	ArrivalDate   *time.Time `json:"arrival_date"`
	ArrivalTime   string     `json:"arrival_time"`
	Provider      string     `json:"provider"`
}

type ActivityPayload struct {
	Name       string     `json:"name" binding:"required"`
	LocationID *string    `json:"location_id"`
	Date       *time.Time `json:"date"`
	Time       string     `json:"time"`
	Duration   string     `json:"duration"`
	Location   string     `json:"location"`
	Notes      string     `json:"notes"`
	Category   string     `json:"category"`
	Latitude   *float64   `json:"latitude"`
	Longitude  *float64   `json:"longitude"`
}

type CreateItineraryRequest struct {
	Name           string                  `json:"name" binding:"required,min=1,max=100"`
	Description    string                  `json:"description"`
	StartDate      time.Time               `json:"start_date"`
	EndDate        time.Time               `json:"end_date"`
	Locations      []LocationPayload       `json:"locations"`
	Transportation []TransportationPayload `json:"transportation"`
	Activities     []ActivityPayload       `json:"activities"`
	Trips          []string                `json:"trips"`
}

// UpdateItineraryRequest is a sparse patch. A non-nil nested list replaces
// every existing row of that kind under the itinerary.
type UpdateItineraryRequest struct {
	Name           *string                  `json:"name"`
	Description    *string                  `json:"description"`
	StartDate      *time.Time               `json:"start_date"`
	EndDate        *time.Time               `json:"end_date"`
	Locations      *[]LocationPayload       `json:"locations"`
	Transportation *[]TransportationPayload `json:"transportation"`
	Activities     *[]ActivityPayload       `json:"activities"`
	Trips          *[]string                `json:"trips"`
}
