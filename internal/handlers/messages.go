package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/middleware"
	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
	"github.com/felpschneider/TripSync/internal/utils"
)

// messagePageSize caps how many of the newest messages a list returns.
const messagePageSize = 100

// MessageHandler handles the trip chat
type MessageHandler struct {
	store storage.Store
}

// NewMessageHandler creates a new MessageHandler instance
func NewMessageHandler(store storage.Store) *MessageHandler {
	return &MessageHandler{store: store}
}

// ListMessages returns the newest messages of a trip's chat, oldest first
// @Summary List chat messages
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {array} dto.MessageResponse "Messages"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id}/messages [get]
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	messages, err := h.store.ListMessages(r.Context(), tripID, messagePageSize)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	out := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, messageToResponse(&messages[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// CreateMessage appends a message to the trip chat
// @Summary Post a chat message
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param request body dto.CreateMessageRequest true "Message content"
// @Success 201 {object} dto.MessageResponse "Posted message"
// @Failure 400 {object} utils.ErrorBody "Invalid message"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id}/messages [post]
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	var req dto.CreateMessageRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Empty message", "Message content is required")
		return
	}
	if utf8.RuneCountInString(content) > models.MaxMessageLength {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Message too long",
			fmt.Sprintf("Messages are limited to %d characters", models.MaxMessageLength))
		return
	}

	user, err := h.store.GetUserByID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	msg := &models.ChatMessage{
		ID:        uuid.New(),
		TripID:    tripID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
		User: models.UserSummary{
			ID:              user.ID,
			Name:            user.Name,
			Email:           user.Email,
			PixKey:          user.PixKey,
			ProfileImageURL: user.ProfileImageURL,
		},
	}
	if err := h.store.CreateMessage(r.Context(), msg); err != nil {
		writeStoreError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, messageToResponse(msg))
}

func messageToResponse(m *models.ChatMessage) dto.MessageResponse {
	return dto.MessageResponse{
		ID:        m.ID.String(),
		TripID:    m.TripID.String(),
		Content:   m.Content,
		User:      m.User,
		CreatedAt: utils.FormatTimestamp(m.CreatedAt),
	}
}
