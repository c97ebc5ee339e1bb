package handlers

import (
	"net/http"

	"github.com/felpschneider/TripSync/internal/ballot"
	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/middleware"
	"github.com/felpschneider/TripSync/internal/split"
	"github.com/felpschneider/TripSync/internal/storage"
	"github.com/felpschneider/TripSync/internal/utils"
)

// ExportHandler assembles the printable trip report data
type ExportHandler struct {
	store storage.Store
}

// NewExportHandler creates a new ExportHandler instance
func NewExportHandler(store storage.Store) *ExportHandler {
	return &ExportHandler{store: store}
}

// ExportTrip returns the complete trip snapshot with every settlement
// figure precomputed, ready for client-side PDF rendering
// @Summary Export trip report data
// @Tags export
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} dto.ExportData "Report data"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id}/export/pdf [get]
func (h *ExportHandler) ExportTrip(w http.ResponseWriter, r *http.Request) {
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
	proposals, err := h.store.ListProposals(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	tasks, err := h.store.ListTasks(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	inputs := balanceInputs(expenses)
	totals := split.Totals(trip.Budget, inputs)

	data := dto.ExportData{
		Trip: dto.ExportTrip{
			Title:           trip.Title,
			Destination:     trip.Destination,
			StartDate:       utils.FormatDate(trip.StartDate),
			EndDate:         utils.FormatDate(trip.EndDate),
			Budget:          trip.Budget,
			TotalSpent:      totals.TotalSpent,
			RemainingBudget: totals.RemainingBudget,
		},
		Members:   make([]dto.ExportMember, 0, len(members)),
		Expenses:  make([]dto.ExportExpense, 0, len(expenses)),
		Proposals: make([]dto.ExportProposal, 0, len(proposals)),
		Tasks:     make([]dto.ExportTask, 0, len(tasks)),
	}

	for _, m := range members {
		b := split.BalanceForMember(inputs, m.UserID)
		data.Members = append(data.Members, dto.ExportMember{
			Name:      m.User.Name,
			Email:     m.User.Email,
			Role:      m.Role,
			TotalPaid: b.TotalPaid,
			TotalOwed: b.TotalOwed,
			Net:       b.Net,
		})
	}

	for _, e := range expenses {
		participants := make([]string, 0, len(e.Splits))
		for _, s := range e.Splits {
			participants = append(participants, s.User.Name)
		}
		data.Expenses = append(data.Expenses, dto.ExportExpense{
			Description:  e.Description,
			Amount:       e.Amount,
			Date:         utils.FormatDate(e.Date),
			Category:     e.Category,
			PaidBy:       e.PaidBy.Name,
			Participants: participants,
		})
	}

	for _, p := range proposals {
		tally := ballot.Count(voteChoices(p.Votes))
		data.Proposals = append(data.Proposals, dto.ExportProposal{
			Title:    p.Title,
			Status:   p.Status,
			YesVotes: tally.Yes,
			NoVotes:  tally.No,
		})
	}

	for _, t := range tasks {
		task := dto.ExportTask{
			Title:     t.Title,
			Completed: t.Completed,
		}
		if t.AssignedTo != nil {
			name := t.AssignedTo.Name
			task.AssignedTo = &name
		}
		if t.DueDate != nil {
			due := utils.FormatDate(*t.DueDate)
			task.DueDate = &due
		}
		data.Tasks = append(data.Tasks, task)
	}

	utils.WriteJSONResponse(w, http.StatusOK, data)
}
