package controllers

import (
	"net/http"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/request_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	calendarService services.CalendarServiceInterface
}

func NewCalendarController(calendarService services.CalendarServiceInterface) *CalendarController {
	return &CalendarController{
		calendarService: calendarService,
	}
}

// CreateEvent godoc
// @Summary Add a calendar event to a trip
// @Tags Calendar
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.CreateCalendarEventRequest true "Event payload"
// @Success 201 {object} response_models.CalendarEventResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/calendar [post]
func (ce *CalendarController) CreateEvent(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId", utils.ErrTripNotFound)
	if !ok {
		return
	}

	var req request_models.CreateCalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	event, err := ce.calendarService.CreateEvent(c.Request.Context(), tripID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, event, "Event created successfully")
}

// ListEvents godoc
// @Summary List a trip's calendar events
// @Tags Calendar
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.CalendarEventResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/calendar [get]
func (ce *CalendarController) ListEvents(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId", utils.ErrTripNotFound)
	if !ok {
		return
	}

	events, err := ce.calendarService.ListEvents(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Events fetched successfully")
}

// UpdateEvent godoc
// @Summary Update a calendar event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body request_models.UpdateCalendarEventRequest true "Event patch"
// @Success 200 {object} response_models.CalendarEventResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /calendar/{eventId} [put]
func (ce *CalendarController) UpdateEvent(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	eventID, ok := pathUUID(c, "eventId", utils.ErrEventNotFound)
	if !ok {
		return
	}

	var req request_models.UpdateCalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	event, err := ce.calendarService.UpdateEvent(c.Request.Context(), eventID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event updated successfully")
}

// DeleteEvent godoc
// @Summary Delete a calendar event
// @Tags Calendar
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /calendar/{eventId} [delete]
func (ce *CalendarController) DeleteEvent(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	eventID, ok := pathUUID(c, "eventId", utils.ErrEventNotFound)
	if !ok {
		return
	}

	if err := ce.calendarService.DeleteEvent(c.Request.Context(), eventID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted successfully")
}
