package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/middleware"
	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/split"
	"github.com/felpschneider/TripSync/internal/storage"
	"github.com/felpschneider/TripSync/internal/utils"
)

// TripHandler handles trip CRUD and the settlement views
type TripHandler struct {
	store storage.Store
}

// NewTripHandler creates a new TripHandler instance
func NewTripHandler(store storage.Store) *TripHandler {
	return &TripHandler{store: store}
}

// ListTrips returns all trips the caller belongs to, enriched with the
// caller's financial position in each
// @Summary List my trips
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TripSummary "Trips"
// @Router /api/v1/trips [get]
func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	trips, err := h.store.ListTripsForUser(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	out := make([]dto.TripSummary, 0, len(trips))
	for _, trip := range trips {
		expenses, err := h.store.ListExpenses(r.Context(), trip.ID)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		memberCount, err := h.store.CountTripMembers(r.Context(), trip.ID)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		inputs := balanceInputs(expenses)
		totals := split.Totals(trip.Budget, inputs)
		balance := split.BalanceForMember(inputs, userID)

		out = append(out, dto.TripSummary{
			ID:          trip.ID.String(),
			Title:       trip.Title,
			Destination: trip.Destination,
			StartDate:   utils.FormatDate(trip.StartDate),
			EndDate:     utils.FormatDate(trip.EndDate),
			Budget:      trip.Budget,
			TotalSpent:  totals.TotalSpent,
			UserSpent:   balance.TotalPaid,
			OwedToUser:  balance.Net,
			MemberCount: memberCount,
			ImageURL:    trip.ImageURL,
		})
	}

	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// CreateTrip creates a trip with the caller as organizer
// @Summary Create a trip
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTripRequest true "Trip data"
// @Success 201 {object} dto.TripDetail "Created trip"
// @Failure 400 {object} utils.ErrorBody "Invalid request data"
// @Router /api/v1/trips [post]
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	var req dto.CreateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	trip, ok := tripFromRequest(w, req.Title, req.Destination, req.StartDate, req.EndDate, req.Budget, req.ImageURL)
	if !ok {
		return
	}
	trip.ID = uuid.New()
	trip.OrganizerID = userID
	trip.CreatedAt = time.Now()
	trip.UpdatedAt = trip.CreatedAt

	user, err := h.store.GetUserByID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	activity := newActivity(trip.ID, userID, models.ActivityTripCreated,
		fmt.Sprintf("%s created the trip", user.Name))
	if err := h.store.CreateTrip(r.Context(), trip, activity); err != nil {
		writeStoreError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, tripToDetail(trip, split.TripTotals{
		TotalSpent:      0,
		RemainingBudget: trip.Budget,
	}, 1))
}

// GetTrip returns one trip with aggregate spend figures
// @Summary Get a trip
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} dto.TripDetail "Trip"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id} [get]
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
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
	expenses, err := h.store.ListExpenses(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	memberCount, err := h.store.CountTripMembers(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	totals := split.Totals(trip.Budget, balanceInputs(expenses))
	utils.WriteJSONResponse(w, http.StatusOK, tripToDetail(trip, totals, memberCount))
}

// UpdateTrip replaces a trip's fields. Organizer only.
// @Summary Update a trip
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param request body dto.UpdateTripRequest true "Trip data"
// @Success 200 {object} dto.TripDetail "Updated trip"
// @Failure 403 {object} utils.ErrorBody "Not the organizer"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id} [put]
func (h *TripHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
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
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the organizer can update the trip")
		return
	}

	var req dto.UpdateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	updated, ok := tripFromRequest(w, req.Title, req.Destination, req.StartDate, req.EndDate, req.Budget, req.ImageURL)
	if !ok {
		return
	}
	budgetChanged := updated.Budget != trip.Budget

	trip.Title = updated.Title
	trip.Destination = updated.Destination
	trip.StartDate = updated.StartDate
	trip.EndDate = updated.EndDate
	trip.Budget = updated.Budget
	trip.ImageURL = updated.ImageURL
	trip.UpdatedAt = time.Now()

	var activity *models.Activity
	if budgetChanged {
		user, err := h.store.GetUserByID(r.Context(), userID)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		activity = newActivity(tripID, userID, models.ActivityBudgetUpdated,
			fmt.Sprintf("%s updated the budget to %.2f", user.Name, trip.Budget))
	}

	if err := h.store.UpdateTrip(r.Context(), trip, activity); err != nil {
		writeStoreError(w, err)
		return
	}

	expenses, err := h.store.ListExpenses(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	memberCount, err := h.store.CountTripMembers(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	totals := split.Totals(trip.Budget, balanceInputs(expenses))
	utils.WriteJSONResponse(w, http.StatusOK, tripToDetail(trip, totals, memberCount))
}

// DeleteTrip removes a trip and everything under it. Organizer only.
// @Summary Delete a trip
// @Tags trips
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 204 "Deleted"
// @Failure 403 {object} utils.ErrorBody "Not the organizer"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id} [delete]
func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
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
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the organizer can delete the trip")
		return
	}

	if err := h.store.DeleteTrip(r.Context(), tripID); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetBalances returns the settlement view: every member's paid, owed, and
// net figures across all of the trip's expenses
// @Summary Get trip balances
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} dto.BalancesResponse "Balances"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id}/balances [get]
func (h *TripHandler) GetBalances(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
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
	members, err := h.store.ListTripMembers(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	expenses, err := h.store.ListExpenses(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	inputs := balanceInputs(expenses)
	totals := split.Totals(trip.Budget, inputs)

	resp := dto.BalancesResponse{
		TotalSpent:      totals.TotalSpent,
		RemainingBudget: totals.RemainingBudget,
		Members:         make([]dto.MemberBalanceResponse, 0, len(members)),
	}
	for _, m := range members {
		b := split.BalanceForMember(inputs, m.UserID)
		resp.Members = append(resp.Members, dto.MemberBalanceResponse{
			User:      m.User,
			Role:      m.Role,
			TotalPaid: b.TotalPaid,
			TotalOwed: b.TotalOwed,
			Net:       b.Net,
		})
	}

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// tripFromRequest validates the shared create/update payload fields. On
// failure it writes a 400 and returns false.
func tripFromRequest(w http.ResponseWriter, title, destination, startDate, endDate string, budget float64, imageURL *string) (*models.Trip, bool) {
	title = strings.TrimSpace(title)
	destination = strings.TrimSpace(destination)
	if title == "" || destination == "" || startDate == "" || endDate == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Title, destination, start_date, and end_date are required")
		return nil, false
	}
	if budget <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid budget", "Budget must be greater than zero")
		return nil, false
	}

	start, err := utils.ParseDate(startDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid date", err.Error())
		return nil, false
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid date", err.Error())
		return nil, false
	}
	if end.Before(start) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid date range", "End date must not be before the start date")
		return nil, false
	}

	return &models.Trip{
		Title:       title,
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      budget,
		ImageURL:    imageURL,
	}, true
}

func tripToDetail(trip *models.Trip, totals split.TripTotals, memberCount int) dto.TripDetail {
	return dto.TripDetail{
		ID:              trip.ID.String(),
		Title:           trip.Title,
		Destination:     trip.Destination,
		StartDate:       utils.FormatDate(trip.StartDate),
		EndDate:         utils.FormatDate(trip.EndDate),
		Budget:          trip.Budget,
		TotalSpent:      totals.TotalSpent,
		RemainingBudget: totals.RemainingBudget,
		MemberCount:     memberCount,
		OrganizerID:     trip.OrganizerID.String(),
		ImageURL:        trip.ImageURL,
		CreatedAt:       utils.FormatTimestamp(trip.CreatedAt),
	}
}

// balanceInputs projects stored expenses into the settlement calculator's
// input shape
func balanceInputs(expenses []models.Expense) []split.ExpenseForBalance {
	out := make([]split.ExpenseForBalance, 0, len(expenses))
	for _, e := range expenses {
		shares := make(map[uuid.UUID]float64, len(e.Splits))
		for _, s := range e.Splits {
			shares[s.UserID] = s.Amount
		}
		out = append(out, split.ExpenseForBalance{
			Amount:   e.Amount,
			PaidByID: e.PaidByID,
			Shares:   shares,
		})
	}
	return out
}

// newActivity builds a feed entry recorded alongside a mutation
func newActivity(tripID, userID uuid.UUID, activityType, message string) *models.Activity {
	return &models.Activity{
		ID:        uuid.New(),
		TripID:    tripID,
		UserID:    userID,
		Type:      activityType,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
