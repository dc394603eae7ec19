package response_models

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
)

type ItinerarySummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type TripResponse struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Location      string             `json:"location"`
	Budget        float64            `json:"budget"`
	StartDate     string             `json:"start_date"`
	EndDate       string             `json:"end_date"`
	Color         string             `json:"color"`
	ImageURL      string             `json:"image_url"`
	CreatedAt     string             `json:"created_at"`
	UpdatedAt     string             `json:"updated_at"`
	IsOwner       bool               `json:"is_owner"`
	Owner         UserSummary        `json:"owner"`
	Itineraries   []ItinerarySummary `json:"itineraries"`
	Collaborators []UserSummary      `json:"collaborators"`
}

// TripDetailResponse adds the derived destinations view: every location of
// every itinerary associated with the trip, flattened into one list.
type TripDetailResponse struct {
	TripResponse
	Destinations []LocationResponse `json:"destinations"`
}

func BuildTripResponse(t *db_models.Trip, isOwner bool) TripResponse {
	itineraries := make([]ItinerarySummary, 0, len(t.Itineraries))
	for i := range t.Itineraries {
		it := &t.Itineraries[i]
		itineraries = append(itineraries, ItinerarySummary{
			ID:        it.ID.String(),
			Name:      it.Name,
			StartDate: utils.FormatRFC3339(it.StartDate),
			EndDate:   utils.FormatRFC3339(it.EndDate),
		})
	}

	return TripResponse{
		ID:            t.ID.String(),
		Title:         t.Title,
		Description:   t.Description,
		Location:      t.Location,
		Budget:        t.Budget,
		StartDate:     utils.FormatRFC3339(t.StartDate),
		EndDate:       utils.FormatRFC3339(t.EndDate),
		Color:         t.Color,
		ImageURL:      t.ImageURL,
		CreatedAt:     utils.FormatRFC3339(utils.FromUnixSeconds(t.CreatedAt)),
		UpdatedAt:     utils.FormatRFC3339(utils.FromUnixSeconds(t.UpdatedAt)),
		IsOwner:       isOwner,
		Owner:         BuildUserSummary(&t.User),
		Itineraries:   itineraries,
		Collaborators: BuildUserSummaries(t.Collaborators),
	}
}

func BuildTripDetailResponse(t *db_models.Trip, isOwner bool) *TripDetailResponse {
	locations := make([]LocationResponse, 0)
	for i := range t.Itineraries {
		for j := range t.Itineraries[i].Locations {
			locations = append(locations, BuildLocationResponse(&t.Itineraries[i].Locations[j]))
		}
	}

	return &TripDetailResponse{
		TripResponse: BuildTripResponse(t, isOwner),
		Destinations: locations,
	}
}
