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

// ExpenseHandler handles trip expenses
type ExpenseHandler struct {
	store storage.Store
}

// NewExpenseHandler creates a new ExpenseHandler instance
func NewExpenseHandler(store storage.Store) *ExpenseHandler {
	return &ExpenseHandler{store: store}
}

// ListExpenses returns all expenses of a trip, newest first
// @Summary List trip expenses
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {array} dto.ExpenseResponse "Expenses"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id}/expenses [get]
func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	expenses, err := h.store.ListExpenses(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, expenseToResponse(&expenses[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// CreateExpense records an expense split equally across its participants
// @Summary Add an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param request body dto.CreateExpenseRequest true "Expense data"
// @Success 201 {object} dto.ExpenseResponse "Created expense"
// @Failure 400 {object} utils.ErrorBody "Invalid request data"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id}/expenses [post]
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	var req dto.CreateExpenseRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	expense, ok := h.expenseFromRequest(w, r, tripID, req.Description, req.Amount, req.Date, req.Category, req.PaidByID, req.ParticipantIDs, req.ProofImageURL)
	if !ok {
		return
	}
	expense.ID = uuid.New()
	expense.CreatedAt = time.Now()

	user, err := h.store.GetUserByID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	activity := newActivity(tripID, userID, models.ActivityExpenseAdded,
		fmt.Sprintf("%s added the expense %q", user.Name, expense.Description))

	if err := h.store.CreateExpense(r.Context(), expense, activity); err != nil {
		writeStoreError(w, err)
		return
	}

	created, err := h.store.GetExpense(r.Context(), tripID, expense.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, expenseToResponse(created))
}

// UpdateExpense replaces an expense and recreates its splits
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param expenseId path string true "Expense ID"
// @Param request body dto.UpdateExpenseRequest true "Expense data"
// @Success 200 {object} dto.ExpenseResponse "Updated expense"
// @Failure 400 {object} utils.ErrorBody "Invalid request data"
// @Failure 404 {object} utils.ErrorBody "Expense not found"
// @Router /api/v1/trips/{id}/expenses/{expenseId} [put]
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	expenseID, ok := pathUUID(w, r, "expenseId")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	if _, err := h.store.GetExpense(r.Context(), tripID, expenseID); err != nil {
		writeStoreError(w, err)
		return
	}

	var req dto.UpdateExpenseRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	expense, ok := h.expenseFromRequest(w, r, tripID, req.Description, req.Amount, req.Date, req.Category, req.PaidByID, req.ParticipantIDs, req.ProofImageURL)
	if !ok {
		return
	}
	expense.ID = expenseID

	if err := h.store.UpdateExpense(r.Context(), expense); err != nil {
		writeStoreError(w, err)
		return
	}

	updated, err := h.store.GetExpense(r.Context(), tripID, expenseID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, expenseToResponse(updated))
}

// DeleteExpense removes an expense and its splits
// @Summary Delete an expense
// @Tags expenses
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param expenseId path string true "Expense ID"
// @Success 204 "Deleted"
// @Failure 404 {object} utils.ErrorBody "Expense not found"
// @Router /api/v1/trips/{id}/expenses/{expenseId} [delete]
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	expenseID, ok := pathUUID(w, r, "expenseId")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	if err := h.store.DeleteExpense(r.Context(), tripID, expenseID); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// expenseFromRequest validates the shared create/update payload and
// computes the equal splits. Payer and every participant must be trip
// members. On failure it writes the error response and returns false.
func (h *ExpenseHandler) expenseFromRequest(w http.ResponseWriter, r *http.Request, tripID uuid.UUID, description string, amount float64, date, category string, paidByID uuid.UUID, participantIDs []uuid.UUID, proofImageURL *string) (*models.Expense, bool) {
	description = strings.TrimSpace(description)
	if description == "" || date == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Description and date are required")
		return nil, false
	}
	if !models.ValidCategory(category) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid category", "Unknown expense category")
		return nil, false
	}
	parsedDate, err := utils.ParseDate(date)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid date", err.Error())
		return nil, false
	}

	shares, err := split.EqualSplit(amount, participantIDs)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid split", err.Error())
		return nil, false
	}

	for _, id := range append([]uuid.UUID{paidByID}, participantIDs...) {
		member, err := h.store.HasTripAccess(r.Context(), tripID, id)
		if err != nil {
			writeStoreError(w, err)
			return nil, false
		}
		if !member {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid participant", "Payer and participants must be members of the trip")
			return nil, false
		}
	}

	expense := &models.Expense{
		TripID:        tripID,
		Description:   description,
		Amount:        amount,
		Date:          parsedDate,
		Category:      category,
		SplitMethod:   models.SplitMethodEqual,
		PaidByID:      paidByID,
		ProofImageURL: proofImageURL,
	}
	// Ranging over the share map dedupes repeated participant ids
	for id, share := range shares {
		expense.Splits = append(expense.Splits, models.ExpenseSplit{
			UserID: id,
			Amount: share,
		})
	}
	return expense, true
}

func expenseToResponse(e *models.Expense) dto.ExpenseResponse {
	participants := make([]dto.ExpenseParticipant, 0, len(e.Splits))
	for _, s := range e.Splits {
		participants = append(participants, dto.ExpenseParticipant{
			User:   s.User,
			Amount: s.Amount,
		})
	}
	return dto.ExpenseResponse{
		ID:            e.ID.String(),
		TripID:        e.TripID.String(),
		Description:   e.Description,
		Amount:        e.Amount,
		Date:          utils.FormatDate(e.Date),
		Category:      e.Category,
		SplitMethod:   e.SplitMethod,
		ProofImageURL: e.ProofImageURL,
		PaidBy:        e.PaidBy,
		Participants:  participants,
		CreatedAt:     utils.FormatTimestamp(e.CreatedAt),
	}
}
