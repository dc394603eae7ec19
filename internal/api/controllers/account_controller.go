package controllers

import (
	"net/http"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/request_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/gin-gonic/gin"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Sign up payload"
// @Success 201 {object} response_models.UserSummary
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	user, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, user, "Account created successfully")
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Logged in successfully")
}

// GetMe godoc
// @Summary Get the authenticated user's profile
// @Tags Accounts
// @Produce json
// @Success 200 {object} response_models.UserSummary
// @Security BearerAuth
// @Router /users/me [get]
func (a *AccountController) GetMe(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	user, err := a.accountService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}

// GetUser godoc
// @Summary Get a user's public profile
// @Tags Accounts
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} response_models.UserSummary
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{userId} [get]
func (a *AccountController) GetUser(c *gin.Context) {
	if _, ok := actingUserID(c); !ok {
		return
	}
	targetID, ok := pathUUID(c, "userId", utils.ErrUserNotFound)
	if !ok {
		return
	}

	user, err := a.accountService.GetUserByID(c.Request.Context(), targetID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}

// SearchUsers godoc
// @Summary Search users by username prefix
// @Description Queries shorter than two characters return an empty list
// @Tags Accounts
// @Produce json
// @Param q query string true "Username prefix"
// @Success 200 {array} response_models.UserSummary
// @Security BearerAuth
// @Router /users/search [get]
func (a *AccountController) SearchUsers(c *gin.Context) {
	if _, ok := actingUserID(c); !ok {
		return
	}

	users, err := a.accountService.SearchUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}
