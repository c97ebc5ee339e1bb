package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/ballot"
	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/middleware"
	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
	"github.com/felpschneider/TripSync/internal/utils"
)

// ProposalHandler handles group decision proposals and voting
type ProposalHandler struct {
	store storage.Store
}

// NewProposalHandler creates a new ProposalHandler instance
func NewProposalHandler(store storage.Store) *ProposalHandler {
	return &ProposalHandler{store: store}
}

// ListProposals returns all proposals of a trip with their tallies
// @Summary List trip proposals
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {array} dto.ProposalResponse "Proposals"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id}/proposals [get]
func (h *ProposalHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	proposals, err := h.store.ListProposals(r.Context(), tripID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	out := make([]dto.ProposalResponse, 0, len(proposals))
	for i := range proposals {
		out = append(out, proposalToResponse(&proposals[i], userID))
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// CreateProposal opens a proposal. The creator's yes vote is cast
// automatically.
// @Summary Create a proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param request body dto.CreateProposalRequest true "Proposal data"
// @Success 201 {object} dto.ProposalResponse "Created proposal"
// @Failure 400 {object} utils.ErrorBody "Invalid request data"
// @Failure 404 {object} utils.ErrorBody "Trip not found"
// @Router /api/v1/trips/{id}/proposals [post]
func (h *ProposalHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	var req dto.CreateProposalRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Title is required")
		return
	}

	proposal := &models.Proposal{
		ID:          uuid.New(),
		TripID:      tripID,
		Title:       req.Title,
		Description: strings.TrimSpace(req.Description),
		Status:      ballot.StatusVoting,
		CreatedByID: userID,
		CreatedAt:   time.Now(),
	}

	user, err := h.store.GetUserByID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	activity := newActivity(tripID, userID, models.ActivityProposalCreated,
		fmt.Sprintf("%s proposed %q", user.Name, proposal.Title))

	if err := h.store.CreateProposal(r.Context(), proposal, activity); err != nil {
		writeStoreError(w, err)
		return
	}

	created, err := h.store.GetProposal(r.Context(), tripID, proposal.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, proposalToResponse(created, userID))
}

// Vote casts or re-casts the caller's vote on an open proposal
// @Summary Vote on a proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param proposalId path string true "Proposal ID"
// @Param request body dto.VoteRequest true "Vote choice"
// @Success 200 {object} dto.ProposalResponse "Proposal with updated tally"
// @Failure 400 {object} utils.ErrorBody "Invalid vote"
// @Failure 404 {object} utils.ErrorBody "Proposal not found"
// @Failure 409 {object} utils.ErrorBody "Proposal already finalized"
// @Router /api/v1/trips/{id}/proposals/{proposalId}/vote [post]
func (h *ProposalHandler) Vote(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	proposalID, ok := pathUUID(w, r, "proposalId")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	var req dto.VoteRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if !ballot.ValidChoice(req.Vote) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid vote", ballot.ErrInvalidChoice.Error())
		return
	}

	proposal, err := h.store.GetProposal(r.Context(), tripID, proposalID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if err := ballot.CanVote(proposal.Status); err != nil {
		utils.WriteErrorResponse(w, http.StatusConflict, "Proposal already finalized", err.Error())
		return
	}

	vote := &models.Vote{
		ProposalID: proposalID,
		UserID:     userID,
		Vote:       req.Vote,
	}
	if err := h.store.UpsertVote(r.Context(), vote); err != nil {
		writeStoreError(w, err)
		return
	}

	updated, err := h.store.GetProposal(r.Context(), tripID, proposalID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, proposalToResponse(updated, userID))
}

// Finalize closes voting and settles the proposal's terminal status from
// the current tally. Any member may finalize; a tie rejects.
// @Summary Finalize a proposal
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param proposalId path string true "Proposal ID"
// @Success 200 {object} dto.ProposalResponse "Finalized proposal"
// @Failure 404 {object} utils.ErrorBody "Proposal not found"
// @Failure 409 {object} utils.ErrorBody "Proposal already finalized"
// @Router /api/v1/trips/{id}/proposals/{proposalId}/finalize [post]
func (h *ProposalHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	proposalID, ok := pathUUID(w, r, "proposalId")
	if !ok {
		return
	}
	if !requireTripAccess(r.Context(), h.store, w, tripID, userID) {
		return
	}

	proposal, err := h.store.GetProposal(r.Context(), tripID, proposalID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if err := ballot.CanFinalize(proposal.Status); err != nil {
		utils.WriteErrorResponse(w, http.StatusConflict, "Proposal already finalized", err.Error())
		return
	}

	status := ballot.Outcome(ballot.Count(voteChoices(proposal.Votes)))

	user, err := h.store.GetUserByID(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	activity := newActivity(tripID, userID, models.ActivityProposalCompleted,
		fmt.Sprintf("%s finalized %q as %s", user.Name, proposal.Title, status))

	// The store re-checks the voting status inside the transaction, so a
	// concurrent finalize loses with a conflict instead of overwriting.
	if err := h.store.FinalizeProposal(r.Context(), proposalID, status, activity); err != nil {
		writeStoreError(w, err)
		return
	}

	updated, err := h.store.GetProposal(r.Context(), tripID, proposalID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, proposalToResponse(updated, userID))
}

func voteChoices(votes []models.Vote) []string {
	out := make([]string, 0, len(votes))
	for _, v := range votes {
		out = append(out, v.Vote)
	}
	return out
}

func proposalToResponse(p *models.Proposal, viewerID uuid.UUID) dto.ProposalResponse {
	tally := ballot.Count(voteChoices(p.Votes))

	var userVote *string
	for _, v := range p.Votes {
		if v.UserID == viewerID {
			choice := v.Vote
			userVote = &choice
			break
		}
	}

	return dto.ProposalResponse{
		ID:          p.ID.String(),
		TripID:      p.TripID.String(),
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   utils.FormatTimestamp(p.CreatedAt),
		Votes:       dto.VoteCounts{Yes: tally.Yes, No: tally.No},
		UserVote:    userVote,
	}
}
