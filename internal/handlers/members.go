package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/config"
	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/middleware"
	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
	"github.com/felpschneider/TripSync/internal/utils"
)

// MemberHandler handles trip membership and invitations
type MemberHandler struct {
	store  storage.Store
	email  *utils.EmailService
	appCfg *config.AppConfig
}

// NewMemberHandler creates a new MemberHandler instance
func NewMemberHandler(store storage.Store, email *utils.EmailService, appCfg *config.AppConfig) *MemberHandler {
	return &MemberHandler{store: store, email: email, appCfg: appCfg}
}

// ListMembers returns the members of a trip
// @Summary List trip members
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {array} dto.MemberResponse "Members"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id}/members [get]
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	members, err := h.store.ListTripMembers(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	out := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, dto.MemberResponse{
			User:     m.User,
			Role:     m.Role,
			JoinedAt: utils.FormatTimestamp(m.JoinedAt),
		})
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// RemoveMember removes a member from the trip. Organizer only; the
// organizer cannot remove themselves.
// @Summary Remove a trip member
// @Tags members
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param userId path string true "User ID"
// @Success 204 "Removed"
// @Failure 400 {object} utils.ErrorBody "Cannot remove the organizer"
// @Failure 403 {object} utils.ErrorBody "Not the organizer"
// @Failure 404 {object} utils.ErrorBody "Trip or member not found"
// @Router /api/v1/trips/{id}/members/{userId} [delete]
func (h *MemberHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	targetID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	trip, err := h.store.GetTrip(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if trip.OrganizerID != userID {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the organizer can remove members")
		return
	}
	if targetID == trip.OrganizerID {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Cannot remove the organizer", "The organizer cannot leave their own trip")
		return
	}

	if err := h.store.RemoveTripMember(r.Context(), tripID, targetID); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// InviteMember invites someone to the trip by email. Existing accounts are
// added as members immediately; unknown addresses get a one-time invite
// link valid for seven days.
// @Summary Invite someone to a trip
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param request body dto.InviteRequest true "Invitee email"
// @Success 200 {object} dto.InviteResponse "Invite outcome"
// @Failure 400 {object} utils.ErrorBody "Invalid email"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Failure 409 {object} utils.ErrorBody "Already a member"
// @Router /api/v1/trips/{id}/members/invite [post]
func (h *MemberHandler) InviteMember(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	var req dto.InviteRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid email", "A valid email address is required")
		return
	}

	trip, err := h.store.GetTrip(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	inviter, err := h.store.GetUserByID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	invitee, err := h.store.GetUserByEmail(r.Context(), email)
	switch {
	case err == nil:
		h.addExistingUser(w, r, trip, inviter, invitee)
	case errors.Is(err, storage.ErrNotFound):
		h.inviteNewUser(w, r, trip, inviter, email)
	default:
		writeStoreError(w, err)
	}
}

// addExistingUser makes a registered user a member right away
func (h *MemberHandler) addExistingUser(w http.ResponseWriter, r *http.Request, trip *models.Trip, inviter, invitee *models.User) {
	member := &models.TripMember{
		TripID:   trip.ID,
		UserID:   invitee.ID,
		Role:     models.RoleMember,
		JoinedAt: time.Now(),
	}
	activity := newActivity(trip.ID, invitee.ID, models.ActivityMemberJoined,
		fmt.Sprintf("%s joined the trip", invitee.Name))

	if err := h.store.AddTripMember(r.Context(), member, activity); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Already a member", "This user is already in the trip")
			return
		}
		writeStoreError(w, err)
		return
	}

	// Notification only; membership stands even if the email fails
	tripLink := fmt.Sprintf("%s/trips/%s", h.appCfg.BaseURL, trip.ID)
	if err := h.email.SendTripInvite(invitee.Email, trip.Title, inviter.Name, tripLink, false); err != nil {
		slog.Warn("failed to send member notification", "error", err)
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.InviteResponse{
		Added:   true,
		Message: "User added to the trip",
	})
}

// inviteNewUser records a one-time invite and emails the join link
func (h *MemberHandler) inviteNewUser(w http.ResponseWriter, r *http.Request, trip *models.Trip, inviter *models.User, email string) {
	invite := &models.Invite{
		Token:     uuid.New(),
		TripID:    trip.ID,
		Email:     email,
		ExpiresAt: time.Now().Add(models.InviteTTL),
		CreatedAt: time.Now(),
	}
	if err := h.store.CreateInvite(r.Context(), invite); err != nil {
		writeStoreError(w, err)
		return
	}

	inviteLink := fmt.Sprintf("%s/invite/%s", h.appCfg.BaseURL, invite.Token)
	if err := h.email.SendTripInvite(email, trip.Title, inviter.Name, inviteLink, true); err != nil {
		slog.Warn("failed to send invite email", "error", err)
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.InviteResponse{
		Added:      false,
		Message:    "Invite sent",
		InviteLink: &inviteLink,
	})
}
