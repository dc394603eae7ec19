package request_models

type CreateBudgetRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency" binding:"required,len=3"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
}

type UpdateBudgetRequest struct {
	Amount      *float64 `json:"amount"`
	Currency    *string  `json:"currency"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
}
