package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/felpschneider/TripSync/internal/ballot"
	"github.com/felpschneider/TripSync/internal/models"
	"github.com/felpschneider/TripSync/internal/storage"
)

// CreateProposal inserts the proposal, the creator's automatic yes vote,
// and the activity entry in one transaction.
func (p *Postgres) CreateProposal(ctx context.Context, proposal *models.Proposal, activity *models.Activity) error {
	return p.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO proposals (id, trip_id, title, description, status, created_by_id, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			proposal.ID, proposal.TripID, proposal.Title, proposal.Description, proposal.Status, proposal.CreatedByID, proposal.CreatedAt,
		)
		if err != nil {
			return mapErr(err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO votes (proposal_id, user_id, vote) VALUES ($1, $2, $3)`,
			proposal.ID, proposal.CreatedByID, ballot.VoteYes,
		)
		if err != nil {
			return mapErr(err)
		}
		return insertActivity(ctx, tx, activity)
	})
}

func (p *Postgres) GetProposal(ctx context.Context, tripID, proposalID uuid.UUID) (*models.Proposal, error) {
	proposals, err := p.queryProposals(ctx, `WHERE p.id = $1 AND p.trip_id = $2`, proposalID, tripID)
	if err != nil {
		return nil, err
	}
	if len(proposals) == 0 {
		return nil, storage.ErrNotFound
	}
	return &proposals[0], nil
}

// ListProposals returns a trip's proposals newest first, with their votes.
func (p *Postgres) ListProposals(ctx context.Context, tripID uuid.UUID) ([]models.Proposal, error) {
	return p.queryProposals(ctx, `WHERE p.trip_id = $1`, tripID)
}

func (p *Postgres) queryProposals(ctx context.Context, where string, args ...any) ([]models.Proposal, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT p.id, p.trip_id, p.title, p.description, p.status, p.created_by_id, p.created_at,
		        u.name, u.email
		   FROM proposals p
		   JOIN users u ON u.id = p.created_by_id
		  `+where+`
		  ORDER BY p.created_at DESC`, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	proposals := make([]models.Proposal, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var pr models.Proposal
		if err := rows.Scan(&pr.ID, &pr.TripID, &pr.Title, &pr.Description, &pr.Status, &pr.CreatedByID, &pr.CreatedAt,
			&pr.CreatedBy.Name, &pr.CreatedBy.Email); err != nil {
			return nil, mapErr(err)
		}
		pr.CreatedBy.ID = pr.CreatedByID
		pr.Votes = make([]models.Vote, 0)
		index[pr.ID] = len(proposals)
		proposals = append(proposals, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	if len(proposals) == 0 {
		return proposals, nil
	}

	ids := make([]uuid.UUID, 0, len(proposals))
	for _, pr := range proposals {
		ids = append(ids, pr.ID)
	}
	voteRows, err := p.pool.Query(ctx,
		`SELECT proposal_id, user_id, vote FROM votes WHERE proposal_id = ANY($1)`, ids)
	if err != nil {
		return nil, mapErr(err)
	}
	defer voteRows.Close()

	for voteRows.Next() {
		var v models.Vote
		if err := voteRows.Scan(&v.ProposalID, &v.UserID, &v.Vote); err != nil {
			return nil, mapErr(err)
		}
		if i, ok := index[v.ProposalID]; ok {
			proposals[i].Votes = append(proposals[i].Votes, v)
		}
	}
	return proposals, voteRows.Err()
}

// UpsertVote inserts the member's vote or overwrites their previous choice.
func (p *Postgres) UpsertVote(ctx context.Context, vote *models.Vote) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO votes (proposal_id, user_id, vote) VALUES ($1, $2, $3)
		 ON CONFLICT (proposal_id, user_id) DO UPDATE SET vote = EXCLUDED.vote`,
		vote.ProposalID, vote.UserID, vote.Vote,
	)
	return mapErr(err)
}

// FinalizeProposal commits the terminal status and the activity entry in
// one transaction. The WHERE status = 'voting' guard makes the transition
// one-way even under concurrent finalize calls; a lost race maps to
// ErrConflict.
func (p *Postgres) FinalizeProposal(ctx context.Context, proposalID uuid.UUID, status string, activity *models.Activity) error {
	return p.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE proposals SET status = $1 WHERE id = $2 AND status = $3`,
			status, proposalID, ballot.StatusVoting,
		)
		if err != nil {
			return mapErr(err)
		}
		if tag.RowsAffected() == 0 {
			return storage.ErrConflict
		}
		return insertActivity(ctx, tx, activity)
	})
}
