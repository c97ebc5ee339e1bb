package handlers

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/middleware"
	"github.com/felpschneider/TripSync/internal/storage"
	"github.com/felpschneider/TripSync/internal/utils"
)

// ProfileHandler handles the authenticated user's own profile
type ProfileHandler struct {
	store storage.Store
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(store storage.Store) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// GetProfile returns the caller's profile
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse "Profile"
// @Failure 401 {object} utils.ErrorBody "Unauthorized"
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Missing user context")
		return
	}

	user, err := h.store.GetUserByID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, userToResponse(user))
}

// UpdateProfile updates the caller's profile. Changing the password
// requires the current one.
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} dto.UserResponse "Updated profile"
// @Failure 400 {object} utils.ErrorBody "Invalid request data"
// @Failure 401 {object} utils.ErrorBody "Wrong current password"
// @Router /api/v1/profile [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Missing user context")
		return
	}

	var req dto.UpdateProfileRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Name is required")
		return
	}

	user, err := h.store.GetUserByID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	user.Name = req.Name
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = req.ProfileImageURL
	}
	if req.PixKey != nil {
		user.PixKey = req.PixKey
	}

	if req.NewPassword != nil && *req.NewPassword != "" {
		if req.CurrentPassword == nil ||
			bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(*req.CurrentPassword)) != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Wrong current password", "The current password does not match")
			return
		}
		if len(*req.NewPassword) < minPasswordLength {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Password too short", "Password must be at least 6 characters")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to hash password", err.Error())
			return
		}
		user.PasswordHash = string(hashed)
	}

	user.UpdatedAt = time.Now()
	if err := h.store.UpdateUser(r.Context(), user); err != nil {
		writeStoreError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, userToResponse(user))
}
