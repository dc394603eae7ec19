package controllers

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/gin-gonic/gin"
)

type CollaboratorController struct {
	collaboratorService services.CollaboratorServiceInterface
}

func NewCollaboratorController(collaboratorService services.CollaboratorServiceInterface) *CollaboratorController {
	return &CollaboratorController{
		collaboratorService: collaboratorService,
	}
}

// AddCollaborator godoc
// @Summary Add a collaborator to a trip
// @Description Grants another user shared access; adding an existing collaborator or the owner is a conflict
// @Tags Collaborators
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param userId path string true "User ID"
// @Success 200 {array} response_models.UserSummary
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/collaborators/{userId} [post]
func (cc *CollaboratorController) AddCollaborator(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId", utils.ErrTripNotFound)
	if !ok {
		return
	}
	targetID, ok := pathUUID(c, "userId", utils.ErrUserNotFound)
	if !ok {
		return
	}

	collaborators, err := cc.collaboratorService.AddCollaborator(c.Request.Context(), tripID, userID, targetID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, collaborators, "Collaborator added successfully")
}

// RemoveCollaborator godoc
// @Summary Remove a collaborator from a trip
// @Tags Collaborators
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param userId path string true "User ID"
// @Success 200 {array} response_models.UserSummary
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/collaborators/{userId} [delete]
func (cc *CollaboratorController) RemoveCollaborator(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId", utils.ErrTripNotFound)
	if !ok {
		return
	}
	targetID, ok := pathUUID(c, "userId", utils.ErrUserNotFound)
	if !ok {
		return
	}

	collaborators, err := cc.collaboratorService.RemoveCollaborator(c.Request.Context(), tripID, userID, targetID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, collaborators, "Collaborator removed successfully")
}

// ListCollaborators godoc
// @Summary List a trip's collaborators
// @Tags Collaborators
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.UserSummary
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/collaborators [get]
func (cc *CollaboratorController) ListCollaborators(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId", utils.ErrTripNotFound)
	if !ok {
		return
	}

	collaborators, err := cc.collaboratorService.ListCollaborators(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, collaborators, "Collaborators fetched successfully")
}
