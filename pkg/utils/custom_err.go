package utils

import "errors"

var (
	ErrTripNotFound          = errors.New("trip not found")
	ErrItineraryNotFound     = errors.New("itinerary not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrDestinationNotFound   = errors.New("destination not found")
	ErrBudgetNotFound        = errors.New("budget not found")
	ErrEventNotFound         = errors.New("calendar event not found")
	ErrDatesNotFound         = errors.New("trip dates not found")
	ErrFriendRequestNotFound = errors.New("friend request not found")

	ErrForbidden             = errors.New("not authorized for this trip")
	ErrCollaboratorExists    = errors.New("user is already a collaborator")
	ErrCollaboratorNotFound  = errors.New("user is not a collaborator")
	ErrDatesAlreadySet       = errors.New("trip already has dates")
	ErrFriendRequestExists   = errors.New("friend request already exists")
	ErrAlreadyFriends        = errors.New("users are already friends")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrInvalidCredentials    = errors.New("invalid email or password")

	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseError = errors.New("database error")
)
