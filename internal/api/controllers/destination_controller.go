package controllers

import (
	"net/http"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/request_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/gin-gonic/gin"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// CreateDestination godoc
// @Summary Add a destination to a trip
// @Tags Destinations
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.CreateDestinationRequest true "Destination payload"
// @Success 201 {object} response_models.DestinationResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/destinations [post]
func (d *DestinationController) CreateDestination(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId", utils.ErrTripNotFound)
	if !ok {
		return
	}

	var req request_models.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	destination, err := d.destinationService.CreateDestination(c.Request.Context(), tripID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, destination, "Destination created successfully")
}

// ListDestinations godoc
// @Summary List a trip's destinations
// @Tags Destinations
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.DestinationResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/destinations [get]
func (d *DestinationController) ListDestinations(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId", utils.ErrTripNotFound)
	if !ok {
		return
	}

	destinations, err := d.destinationService.ListDestinations(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

// UpdateDestination godoc
// @Summary Update a destination
// @Tags Destinations
// @Accept json
// @Produce json
// @Param destinationId path string true "Destination ID"
// @Param request body request_models.UpdateDestinationRequest true "Destination patch"
// @Success 200 {object} response_models.DestinationResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /destinations/{destinationId} [put]
func (d *DestinationController) UpdateDestination(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	destinationID, ok := pathUUID(c, "destinationId", utils.ErrDestinationNotFound)
	if !ok {
		return
	}

	var req request_models.UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	destination, err := d.destinationService.UpdateDestination(c.Request.Context(), destinationID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination updated successfully")
}

// DeleteDestination godoc
// @Summary Delete a destination
// @Tags Destinations
// @Produce json
// @Param destinationId path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /destinations/{destinationId} [delete]
func (d *DestinationController) DeleteDestination(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	destinationID, ok := pathUUID(c, "destinationId", utils.ErrDestinationNotFound)
	if !ok {
		return
	}

	if err := d.destinationService.DeleteDestination(c.Request.Context(), destinationID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Destination deleted successfully")
}
