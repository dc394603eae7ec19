package controllers

import (
	"net/http"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/request_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/gin-gonic/gin"
)

type DatesController struct {
	datesService services.DatesServiceInterface
}

func NewDatesController(datesService services.DatesServiceInterface) *DatesController {
	return &DatesController{
		datesService: datesService,
	}
}

// CreateDates godoc
// @Summary Set a trip's date range
// @Description A trip holds at most one date range; setting a second is a conflict
// @Tags Dates
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.CreateDatesRequest true "Dates payload"
// @Success 201 {object} response_models.DatesResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/dates [post]
func (d *DatesController) CreateDates(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId", utils.ErrTripNotFound)
	if !ok {
		return
	}

	var req request_models.CreateDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	dates, err := d.datesService.CreateDates(c.Request.Context(), tripID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, dates, "Dates created successfully")
}

// GetDates godoc
// @Summary Get a trip's date range
// @Tags Dates
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.DatesResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/dates [get]
func (d *DatesController) GetDates(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId", utils.ErrTripNotFound)
	if !ok {
		return
	}

	dates, err := d.datesService.GetDates(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dates, "Dates fetched successfully")
}

// UpdateDates godoc
// @Summary Update a date range
// @Tags Dates
// @Accept json
// @Produce json
// @Param datesId path string true "Dates ID"
// @Param request body request_models.UpdateDatesRequest true "Dates patch"
// @Success 200 {object} response_models.DatesResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dates/{datesId} [put]
func (d *DatesController) UpdateDates(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	datesID, ok := pathUUID(c, "datesId", utils.ErrDatesNotFound)
	if !ok {
		return
	}

	var req request_models.UpdateDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	dates, err := d.datesService.UpdateDates(c.Request.Context(), datesID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dates, "Dates updated successfully")
}

// DeleteDates godoc
// @Summary Delete a date range
// @Tags Dates
// @Produce json
// @Param datesId path string true "Dates ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dates/{datesId} [delete]
func (d *DatesController) DeleteDates(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	datesID, ok := pathUUID(c, "datesId", utils.ErrDatesNotFound)
	if !ok {
		return
	}

	if err := d.datesService.DeleteDates(c.Request.Context(), datesID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Dates deleted successfully")
}
