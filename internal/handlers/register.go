package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/bloglist/internal/models"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in models.UserInput) (models.PublicUser, error)
}

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.PublicUser, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: root
	Username *string `json:"username"`

	// Display name
	// default: Superuser
	Name *string `json:"name"`

	// Password, at least 3 characters
	// required: true
	// default: salainen
	Password *string `json:"password"`

	// Adult flag, true when omitted
	// default: true
	Adult *bool `json:"adult"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user with a unique username. The password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} models.PublicUser "Registered user"
// @Failure 400 {object} handlers.ErrorResponse "username must be unique / password must contain atleast 3 characters"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeBody(r, &req) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgMalformedBody})
			return
		}

		user, err := svc.Register(r.Context(), models.UserInput{
			Username: req.Username,
			Name:     req.Name,
			Password: req.Password,
			Adult:    req.Adult,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewListUsersHandler returns an HTTP handler listing registered users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.PublicUser "Users"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}
