package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/middleware"
	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
	"github.com/felpschneider/TripSync/internal/utils"
)

// InviteHandler handles invite token validation and acceptance
type InviteHandler struct {
	store storage.Store
}

// NewInviteHandler creates a new InviteHandler instance
func NewInviteHandler(store storage.Store) *InviteHandler {
	return &InviteHandler{store: store}
}

// ValidateInvite describes an invite token so the signup page can show
// trip details. Used and expired tokens report valid=false; unknown
// tokens 404.
// @Summary Validate an invite token
// @Tags invites
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} dto.InviteValidationResponse "Invite details"
// @Failure 404 {object} utils.ErrorBody "Unknown token"
// @Router /api/v1/invites/{token} [get]
func (h *InviteHandler) ValidateInvite(w http.ResponseWriter, r *http.Request) {
	token, ok := pathUUID(w, r, "token")
	if !ok {
		return
	}

	invite, err := h.store.GetInvite(r.Context(), token)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if invite.Used || invite.Expired(time.Now()) {
		utils.WriteJSONResponse(w, http.StatusOK, dto.InviteValidationResponse{Valid: false})
		return
	}

	trip, err := h.store.GetTrip(r.Context(), invite.TripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.InviteValidationResponse{
		Valid:     true,
		TripID:    invite.TripID.String(),
		TripTitle: trip.Title,
		Email:     invite.Email,
	})
}

// AcceptInvite consumes an invite token and joins the caller to the trip.
// The token is single use: marking it used and adding the membership happen
// in one transaction, so two concurrent accepts cannot both succeed.
// @Summary Accept an invite
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Param token path string true "Invite token"
// @Success 200 {object} dto.AcceptInviteResponse "Joined trip"
// @Failure 403 {object} utils.ErrorBody "Invite is for a different email"
// @Failure 404 {object} utils.ErrorBody "Unknown token"
// @Failure 409 {object} utils.ErrorBody "Invite already used or expired"
// @Router /api/v1/invites/{token}/accept [post]
func (h *InviteHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	token, ok := pathUUID(w, r, "token")
	if !ok {
		return
	}

	invite, err := h.store.GetInvite(r.Context(), token)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if invite.Expired(time.Now()) {
		utils.WriteErrorResponse(w, http.StatusConflict, "Invite expired", "This invite is older than seven days")
		return
	}

	user, err := h.store.GetUserByID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if user.Email != invite.Email {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "This invite was issued for a different email address")
		return
	}

	member := &models.TripMember{
		TripID:   invite.TripID,
		UserID:   userID,
		Role:     models.RoleMember,
		JoinedAt: time.Now(),
	}
	activity := newActivity(invite.TripID, userID, models.ActivityMemberJoined,
		fmt.Sprintf("%s joined the trip", user.Name))

	if err := h.store.AcceptInvite(r.Context(), token, member, activity); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Invite already used", "This invite has already been accepted")
			return
		}
		writeStoreError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AcceptInviteResponse{
		TripID: invite.TripID.String(),
	})
}
