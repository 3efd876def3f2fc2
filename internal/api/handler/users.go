package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/f1nsight/f1nsight-api/internal/api/respond"
	"github.com/f1nsight/f1nsight-api/internal/store"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser creates a new account.
// @Summary Register user
// @Description Creates an account with a bcrypt-hashed password. 503 when no database is configured.
// @Tags users
// @Accept json
// @Produce json
// @Param body body credentialsRequest true "Account details"
// @Success 201 {object} store.User
// @Failure 400 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /users [post]
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireUsers(w) {
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "username and password are required")
		return
	}

	user, err := h.users.Create(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.Error("user create failed", "username", req.Username, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "DB_ERROR", "Failed to create user")
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, user)
}

// LoginUser verifies credentials.
// @Summary Log in
// @Description Verifies a username/password pair and returns the account.
// @Tags users
// @Accept json
// @Produce json
// @Param body body credentialsRequest true "Credentials"
// @Success 200 {object} store.User
// @Failure 401 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /users/login [post]
func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireUsers(w) {
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "username and password are required")
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidCredentials) {
			respond.WriteError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
			return
		}
		respond.WriteError(w, http.StatusInternalServerError, "DB_ERROR", "Login failed")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, user)
}

// GetFavorites lists a user's favorite drivers.
// @Summary List favorite drivers
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {array} string
// @Failure 400 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /users/{userID}/favorites [get]
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	if !h.requireUsers(w) {
		return
	}
	userID, ok := h.parseUserID(w, r)
	if !ok {
		return
	}

	favorites, err := h.users.Favorites(r.Context(), userID)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "DB_ERROR", "Failed to list favorites")
		return
	}
	if favorites == nil {
		favorites = []string{}
	}
	respond.WriteJSONObject(w, http.StatusOK, favorites)
}

// AddFavorite records a favorite driver for a user.
// @Summary Add favorite driver
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Param driverID path string true "Upstream driver identifier"
// @Success 204
// @Failure 400 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /users/{userID}/favorites/{driverID} [post]
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	if !h.requireUsers(w) {
		return
	}
	userID, ok := h.parseUserID(w, r)
	if !ok {
		return
	}

	if err := h.users.AddFavorite(r.Context(), userID, chi.URLParam(r, "driverID")); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "DB_ERROR", "Failed to add favorite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveFavorite removes a favorite driver.
// @Summary Remove favorite driver
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Param driverID path string true "Upstream driver identifier"
// @Success 204
// @Failure 400 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /users/{userID}/favorites/{driverID} [delete]
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	if !h.requireUsers(w) {
		return
	}
	userID, ok := h.parseUserID(w, r)
	if !ok {
		return
	}

	if err := h.users.RemoveFavorite(r.Context(), userID, chi.URLParam(r, "driverID")); err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "DB_ERROR", "Failed to remove favorite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) requireUsers(w http.ResponseWriter) bool {
	if h.users == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "USERS_UNAVAILABLE", "User storage is not configured")
		return false
	}
	return true
}

func (h *Handler) parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_USER_ID", "userID must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
