package response_models

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
)

type LocationResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Date      string  `json:"date,omitempty"`
	StartDate string  `json:"start_date,omitempty"`
	EndDate   string  `json:"end_date,omitempty"`
	Color     string  `json:"color,omitempty"`
	Comments  string  `json:"comments,omitempty"`
}

type TransportationResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	FromLocation  string `json:"from_location"`
	ToLocation    string `json:"to_location"`
	DepartureDate string `json:"departure_date,omitempty"`
	DepartureTime string `json:"departure_time,omitempty"`
	ArrivalDate   string `json:"arrival_date,omitempty"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
	Provider      string `json:"provider,omitempty"`
}

type ActivityResponse struct {
	ID         string   `json:"id"`
	LocationID string   `json:"location_id,omitempty"`
	Name       string   `json:"name"`
	Date       string   `json:"date,omitempty"`
	Time       string   `json:"time,omitempty"`
	Duration   string   `json:"duration,omitempty"`
	Location   string   `json:"location,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	Category   string   `json:"category,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type ItineraryResponse struct {
	ID             string                   `json:"id"`
	Name           string                   `json:"name"`
	Description    string                   `json:"description"`
	StartDate      string                   `json:"start_date"`
	EndDate        string                   `json:"end_date"`
	CreatedAt      string                   `json:"created_at"`
	UpdatedAt      string                   `json:"updated_at"`
	Locations      []LocationResponse       `json:"locations"`
	Transportation []TransportationResponse `json:"transportation"`
	Activities     []ActivityResponse       `json:"activities"`
	Trips          []string                 `json:"trips"`
}

func BuildLocationResponse(l *db_models.Location) LocationResponse {
	return LocationResponse{
		ID:        l.ID.String(),
		Name:      l.Name,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Date:      utils.FormatRFC3339Ptr(l.Date),
		StartDate: utils.FormatRFC3339Ptr(l.StartDate),
		EndDate:   utils.FormatRFC3339Ptr(l.EndDate),
		Color:     l.Color,
		Comments:  l.Comments,
	}
}

func BuildItineraryResponse(it *db_models.Itinerary) *ItineraryResponse {
	locations := make([]LocationResponse, 0, len(it.Locations))
	for i := range it.Locations {
		locations = append(locations, BuildLocationResponse(&it.Locations[i]))
	}

	transportation := make([]TransportationResponse, 0, len(it.Transportation))
	for i := range it.Transportation {
		t := &it.Transportation[i]
		transportation = append(transportation, TransportationResponse{
			ID:            t.ID.String(),
			Type:          t.Type,
			FromLocation:  t.FromLocation,
			ToLocation:    t.ToLocation,
			DepartureDate: utils.FormatRFC3339Ptr(t.DepartureDate),
			DepartureTime: t.DepartureTime,
			ArrivalDate:   utils.FormatRFC3339Ptr(t.ArrivalDate),
			ArrivalTime:   t.ArrivalTime,
			Provider:      t.Provider,
		})
	}

	activities := make([]ActivityResponse, 0, len(it.Activities))
	for i := range it.Activities {
		a := &it.Activities[i]
		resp := ActivityResponse{
			ID:        a.ID.String(),
			Name:      a.Name,
			Date:      utils.FormatRFC3339Ptr(a.Date),
			Time:      a.Time,
			Duration:  a.Duration,
			Location:  a.Location,
			Notes:     a.Notes,
			Category:  a.Category,
			Latitude:  a.Latitude,
			Longitude: a.Longitude,
		}
		if a.LocationID != nil {
			resp.LocationID = a.LocationID.String()
		}
		activities = append(activities, resp)
	}

	trips := make([]string, 0, len(it.Trips))
	for i := range it.Trips {
		trips = append(trips, it.Trips[i].ID.String())
	}

	return &ItineraryResponse{
		ID:             it.ID.String(),
		Name:           it.Name,
		Description:    it.Description,
		StartDate:      utils.FormatRFC3339(it.StartDate),
		EndDate:        utils.FormatRFC3339(it.EndDate),
		CreatedAt:      utils.FormatRFC3339(utils.FromUnixSeconds(it.CreatedAt)),
		UpdatedAt:      utils.FormatRFC3339(utils.FromUnixSeconds(it.UpdatedAt)),
		Locations:      locations,
		Transportation: transportation,
		Activities:     activities,
		Trips:          trips,
	}
}
