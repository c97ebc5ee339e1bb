package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/felpschneider/TripSync/internal/ballot"
	"github.com/felpschneider/TripSync/internal/dto"
	"github.com/felpschneider/TripSync/internal/models"
)

// proposalFixture builds a store serving one proposal whose votes the test
// controls. Upserted votes and the finalized status land back in the
// fixture so follow-up reads observe them.
type proposalFixture struct {
	tripID   uuid.UUID
	proposal *models.Proposal
	store    *fakeStore
}

func newProposalFixture(votes []models.Vote) *proposalFixture {
	f := &proposalFixture{
		tripID: uuid.New(),
	}
	f.proposal = &models.Proposal{
		ID:          uuid.New(),
		TripID:      f.tripID,
		Title:       "Visit the caves",
		Status:      ballot.StatusVoting,
		CreatedByID: uuid.New(),
		Votes:       votes,
	}
	f.store = &fakeStore{
		hasTripAccessFn: func(ctx context.Context, tid, uid uuid.UUID) (bool, error) {
			return true, nil
		},
		getUserByIDFn: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return testUser(id, "alice"), nil
		},
		getProposalFn: func(ctx context.Context, tid, pid uuid.UUID) (*models.Proposal, error) {
			return f.proposal, nil
		},
		upsertVoteFn: func(ctx context.Context, vote *models.Vote) error {
			for i, v := range f.proposal.Votes {
				if v.UserID == vote.UserID {
					f.proposal.Votes[i].Vote = vote.Vote
					return nil
				}
			}
			f.proposal.Votes = append(f.proposal.Votes, *vote)
			return nil
		},
		finalizeFn: func(ctx context.Context, pid uuid.UUID, status string, activity *models.Activity) error {
			f.proposal.Status = status
			return nil
		},
	}
	return f
}

func (f *proposalFixture) vote(t *testing.T, h *ProposalHandler, userID uuid.UUID, choice string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r := authedRequest(t, http.MethodPost, "/vote", dto.VoteRequest{Vote: choice}, userID,
		map[string]string{"id": f.tripID.String(), "proposalId": f.proposal.ID.String()})
	h.Vote(rec, r)
	return rec
}

func (f *proposalFixture) finalize(t *testing.T, h *ProposalHandler, userID uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r := authedRequest(t, http.MethodPost, "/finalize", nil, userID,
		map[string]string{"id": f.tripID.String(), "proposalId": f.proposal.ID.String()})
	h.Finalize(rec, r)
	return rec
}

func TestVoteRecastOverwrites(t *testing.T) {
	voterID := uuid.New()
	f := newProposalFixture([]models.Vote{{UserID: voterID, Vote: ballot.VoteYes}})
	h := NewProposalHandler(f.store)

	rec := f.vote(t, h, voterID, ballot.VoteNo)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	resp := decodeBody[dto.ProposalResponse](t, rec)
	if resp.Votes.Yes != 0 || resp.Votes.No != 1 {
		t.Errorf("tally = %d/%d, want 0/1 (recast must overwrite, not add)", resp.Votes.Yes, resp.Votes.No)
	}
	if resp.UserVote == nil || *resp.UserVote != ballot.VoteNo {
		t.Errorf("user_vote = %v, want %q", resp.UserVote, ballot.VoteNo)
	}
}

func TestVoteRejectsInvalidChoice(t *testing.T) {
	f := newProposalFixture(nil)
	h := NewProposalHandler(f.store)

	rec := f.vote(t, h, uuid.New(), "maybe")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestVoteAfterFinalizeConflicts(t *testing.T) {
	f := newProposalFixture(nil)
	f.proposal.Status = ballot.StatusApproved
	h := NewProposalHandler(f.store)

	rec := f.vote(t, h, uuid.New(), ballot.VoteYes)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestFinalizeOutcomes(t *testing.T) {
	yes := func(n int) []models.Vote {
		var v []models.Vote
		for i := 0; i < n; i++ {
			v = append(v, models.Vote{UserID: uuid.New(), Vote: ballot.VoteYes})
		}
		return v
	}
	no := func(n int) []models.Vote {
		var v []models.Vote
		for i := 0; i < n; i++ {
			v = append(v, models.Vote{UserID: uuid.New(), Vote: ballot.VoteNo})
		}
		return v
	}

	tests := []struct {
		name  string
		votes []models.Vote
		want  string
	}{
		{"majority approves", append(yes(3), no(2)...), ballot.StatusApproved},
		{"tie rejects", append(yes(2), no(2)...), ballot.StatusRejected},
		{"majority no rejects", append(yes(1), no(2)...), ballot.StatusRejected},
		{"no votes rejects", nil, ballot.StatusRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProposalFixture(tt.votes)
			h := NewProposalHandler(f.store)

			rec := f.finalize(t, h, uuid.New())
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			resp := decodeBody[dto.ProposalResponse](t, rec)
			if resp.Status != tt.want {
				t.Errorf("status = %q, want %q", resp.Status, tt.want)
			}
		})
	}
}

func TestFinalizeTwiceConflicts(t *testing.T) {
	f := newProposalFixture([]models.Vote{{UserID: uuid.New(), Vote: ballot.VoteYes}})
	h := NewProposalHandler(f.store)

	if rec := f.finalize(t, h, uuid.New()); rec.Code != http.StatusOK {
		t.Fatalf("first finalize status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec := f.finalize(t, h, uuid.New()); rec.Code != http.StatusConflict {
		t.Fatalf("second finalize status = %d, want %d", rec.Code, http.StatusConflict)
	}
}
