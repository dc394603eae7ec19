package controllers

import (
	"net/http"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actingUserID pulls the authenticated user id set by the JWT middleware.
func actingUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses a uuid path parameter. An unparseable id cannot resolve to
// an entity, so it is reported with the given not-found error.
func pathUUID(c *gin.Context, name string, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.HandleServiceError(c, notFound)
		return uuid.Nil, false
	}
	return id, true
}
