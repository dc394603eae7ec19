package controllers

import (
	"net/http"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/request_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/gin-gonic/gin"
)

type BudgetController struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetController(budgetService services.BudgetServiceInterface) *BudgetController {
	return &BudgetController{
		budgetService: budgetService,
	}
}

// CreateBudget godoc
// @Summary Add a budget entry to a trip
// @Tags Budgets
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.CreateBudgetRequest true "Budget payload"
// @Success 201 {object} response_models.BudgetResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/budgets [post]
func (b *BudgetController) CreateBudget(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId", utils.ErrTripNotFound)
	if !ok {
		return
	}

	var req request_models.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	budget, err := b.budgetService.CreateBudget(c.Request.Context(), tripID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, budget, "Budget created successfully")
}

// ListBudgets godoc
// @Summary List a trip's budget entries
// @Tags Budgets
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.BudgetResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/budgets [get]
func (b *BudgetController) ListBudgets(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId", utils.ErrTripNotFound)
	if !ok {
		return
	}

	budgets, err := b.budgetService.ListBudgets(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, budgets, "Budgets fetched successfully")
}

// UpdateBudget godoc
// @Summary Update a budget entry
// @Tags Budgets
// @Accept json
// @Produce json
// @Param budgetId path string true "Budget ID"
// @Param request body request_models.UpdateBudgetRequest true "Budget patch"
// @Success 200 {object} response_models.BudgetResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /budgets/{budgetId} [put]
func (b *BudgetController) UpdateBudget(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	budgetID, ok := pathUUID(c, "budgetId", utils.ErrBudgetNotFound)
	if !ok {
		return
	}

	var req request_models.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	budget, err := b.budgetService.UpdateBudget(c.Request.Context(), budgetID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, budget, "Budget updated successfully")
}

// DeleteBudget godoc
// @Summary Delete a budget entry
// @Tags Budgets
// @Produce json
// @Param budgetId path string true "Budget ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /budgets/{budgetId} [delete]
func (b *BudgetController) DeleteBudget(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	budgetID, ok := pathUUID(c, "budgetId", utils.ErrBudgetNotFound)
	if !ok {
		return
	}

	if err := b.budgetService.DeleteBudget(c.Request.Context(), budgetID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Budget deleted successfully")
}
