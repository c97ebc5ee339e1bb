package handlers

import (
	"net/http"

	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/middleware"
	"github.com/felpschneider/TripSync/internal/storage"
	"github.com/felpschneider/TripSync/internal/utils"
)

// activityPageSize caps how many feed entries a list returns.
const activityPageSize = 50

// ActivityHandler serves the trip activity feed
type ActivityHandler struct {
	store storage.Store
}

// NewActivityHandler creates a new ActivityHandler instance
func NewActivityHandler(store storage.Store) *ActivityHandler {
	return &ActivityHandler{store: store}
}

// ListActivities returns the newest feed entries of a trip
// @Summary List trip activity
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {array} dto.ActivityResponse "Activity feed"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id}/activity [get]
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	activities, err := h.store.ListActivities(r.Context(), tripID, activityPageSize)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	out := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, dto.ActivityResponse{
			ID:        a.ID.String(),
			Type:      a.Type,
			Message:   a.Message,
			UserID:    a.UserID.String(),
			CreatedAt: utils.FormatTimestamp(a.CreatedAt),
		})
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}
