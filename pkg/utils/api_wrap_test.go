package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandleServiceErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"trip not found", ErrTripNotFound, http.StatusNotFound},
		{"itinerary not found", ErrItineraryNotFound, http.StatusNotFound},
		{"user not found", ErrUserNotFound, http.StatusNotFound},
		{"collaborator not found", ErrCollaboratorNotFound, http.StatusNotFound},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"collaborator exists", ErrCollaboratorExists, http.StatusConflict},
		{"dates already set", ErrDatesAlreadySet, http.StatusConflict},
		{"already friends", ErrAlreadyFriends, http.StatusConflict},
		{"email taken", ErrEmailAlreadyExists, http.StatusConflict},
		{"bad credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid input", ErrInvalidInput, http.StatusUnprocessableEntity},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleServiceError(c, tc.err)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestUnknownErrorDoesNotLeakDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleServiceError(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
