package request_models

type CreateDestinationRequest struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type UpdateDestinationRequest struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}
