package controllers

import (
	"net/http"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/request_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// CreateItinerary godoc
// @Summary Create an itinerary
// @Description Create an itinerary with its locations, transportation and activities, optionally linked to trips
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryRequest true "Itinerary payload"
// @Success 201 {object} response_models.ItineraryResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [post]
func (i *ItineraryController) CreateItinerary(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	itinerary, err := i.itineraryService.CreateItinerary(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, itinerary, "Itinerary created successfully")
}

// GetItinerary godoc
// @Summary Get itinerary details
// @Tags Itineraries
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	itineraryID, ok := pathUUID(c, "itineraryId", utils.ErrItineraryNotFound)
	if !ok {
		return
	}

	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), itineraryID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// ListItineraries godoc
// @Summary List the user's itineraries
// @Tags Itineraries
// @Produce json
// @Success 200 {array} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries [get]
func (i *ItineraryController) ListItineraries(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	itineraries, err := i.itineraryService.ListItineraries(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// UpdateItinerary godoc
// @Summary Update an itinerary
// @Description Apply a sparse patch; non-nil nested lists replace the existing rows wholesale
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param request body request_models.UpdateItineraryRequest true "Itinerary patch"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [put]
func (i *ItineraryController) UpdateItinerary(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	itineraryID, ok := pathUUID(c, "itineraryId", utils.ErrItineraryNotFound)
	if !ok {
		return
	}

	var req request_models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	itinerary, err := i.itineraryService.UpdateItinerary(c.Request.Context(), itineraryID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary updated successfully")
}

// DeleteItinerary godoc
// @Summary Delete an itinerary
// @Tags Itineraries
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [delete]
func (i *ItineraryController) DeleteItinerary(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	itineraryID, ok := pathUUID(c, "itineraryId", utils.ErrItineraryNotFound)
	if !ok {
		return
	}

	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), itineraryID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}
