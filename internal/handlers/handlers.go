// Package handlers implements the HTTP endpoints of the TripSync API.
// Handlers depend on the storage.Store interface, never on the database
// driver directly.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/storage"
	"github.com/felpschneider/TripSync/internal/utils"
)

// pathUUID parses the named path wildcard as a UUID. On failure it writes a
// 404 and returns false: malformed ids are indistinguishable from missing
// resources.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "No such resource")
		return uuid.Nil, false
	}
	return id, true
}

// writeStoreError maps storage sentinel errors onto HTTP statuses
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "No such resource")
	case errors.Is(err, storage.ErrConflict):
		utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", "The resource is in a conflicting state")
	default:
		slog.Error("storage operation failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", "Something went wrong")
	}
}

// requireTripAccess verifies the caller is a member of the trip. Non-members
// get a 404, not a 403, so trip ids cannot be probed for existence.
func requireTripAccess(ctx context.Context, store storage.Store, w http.ResponseWriter, tripID, userID uuid.UUID) bool {
	ok, err := store.HasTripAccess(ctx, tripID, userID)
	if err != nil {
		writeStoreError(w, err)
		return false
	}
	if !ok {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Trip not found", "No such trip")
		return false
	}
	return true
}
