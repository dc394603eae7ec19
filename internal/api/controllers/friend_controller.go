package controllers

import (
	"net/http"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/request_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FriendController struct {
	friendService services.FriendServiceInterface
}

func NewFriendController(friendService services.FriendServiceInterface) *FriendController {
	return &FriendController{
		friendService: friendService,
	}
}

// SendFriendRequest godoc
// @Summary Send a friend request
// @Tags Friends
// @Accept json
// @Produce json
// @Param request body request_models.SendFriendRequest true "Friend request payload"
// @Success 201 {object} response_models.FriendRequestResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /friends/requests [post]
func (f *FriendController) SendFriendRequest(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req request_models.SendFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrUserNotFound)
		return
	}

	request, err := f.friendService.SendFriendRequest(c.Request.Context(), userID, receiverID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, request, "Friend request sent successfully")
}

// AcceptFriendRequest godoc
// @Summary Accept a pending friend request
// @Tags Friends
// @Produce json
// @Param requestId path string true "Request ID"
// @Success 200 {object} response_models.FriendRequestResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /friends/requests/{requestId}/accept [post]
func (f *FriendController) AcceptFriendRequest(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	requestID, ok := pathUUID(c, "requestId", utils.ErrFriendRequestNotFound)
	if !ok {
		return
	}

	request, err := f.friendService.AcceptFriendRequest(c.Request.Context(), requestID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, request, "Friend request accepted")
}

// RejectFriendRequest godoc
// @Summary Reject a pending friend request
// @Tags Friends
// @Produce json
// @Param requestId path string true "Request ID"
// @Success 200 {object} response_models.FriendRequestResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /friends/requests/{requestId}/reject [post]
func (f *FriendController) RejectFriendRequest(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	requestID, ok := pathUUID(c, "requestId", utils.ErrFriendRequestNotFound)
	if !ok {
		return
	}

	request, err := f.friendService.RejectFriendRequest(c.Request.Context(), requestID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, request, "Friend request rejected")
}

// ListFriends godoc
// @Summary List the user's friends
// @Tags Friends
// @Produce json
// @Success 200 {array} response_models.UserSummary
// @Security BearerAuth
// @Router /friends [get]
func (f *FriendController) ListFriends(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	friends, err := f.friendService.ListFriends(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, friends, "Friends fetched successfully")
}

// ListFriendRequests godoc
// @Summary List pending friend requests involving the user
// @Tags Friends
// @Produce json
// @Success 200 {array} response_models.FriendRequestResponse
// @Security BearerAuth
// @Router /friends/requests [get]
func (f *FriendController) ListFriendRequests(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	requests, err := f.friendService.ListFriendRequests(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "Friend requests fetched successfully")
}
