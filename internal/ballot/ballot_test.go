package ballot

import (
	"errors"
	"testing"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		votes []string
		want  Tally
	}{
		{name: "no votes", votes: nil, want: Tally{}},
		{name: "only creator yes", votes: []string{"yes"}, want: Tally{Yes: 1}},
		{name: "mixed", votes: []string{"yes", "no", "yes", "yes", "no"}, want: Tally{Yes: 3, No: 2}},
		{name: "unknown values ignored", votes: []string{"yes", "maybe", ""}, want: Tally{Yes: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.votes); got != tt.want {
				t.Errorf("Count() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name  string
		tally Tally
		want  string
	}{
		{name: "clear majority approves", tally: Tally{Yes: 3, No: 2}, want: StatusApproved},
		{name: "tie rejects", tally: Tally{Yes: 2, No: 2}, want: StatusRejected},
		{name: "no majority rejects", tally: Tally{Yes: 1, No: 4}, want: StatusRejected},
		{name: "zero votes rejects", tally: Tally{}, want: StatusRejected},
		{name: "single yes approves", tally: Tally{Yes: 1}, want: StatusApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Outcome(tt.tally); got != tt.want {
				t.Errorf("Outcome(%+v) = %q, want %q", tt.tally, got, tt.want)
			}
		})
	}
}

func TestStateGuards(t *testing.T) {
	if err := CanVote(StatusVoting); err != nil {
		t.Errorf("CanVote(voting) = %v, want nil", err)
	}
	if err := CanFinalize(StatusVoting); err != nil {
		t.Errorf("CanFinalize(voting) = %v, want nil", err)
	}

	for _, status := range []string{StatusApproved, StatusRejected} {
		if err := CanVote(status); !errors.Is(err, ErrAlreadyFinalized) {
			t.Errorf("CanVote(%s) = %v, want ErrAlreadyFinalized", status, err)
		}
		if err := CanFinalize(status); !errors.Is(err, ErrAlreadyFinalized) {
			t.Errorf("CanFinalize(%s) = %v, want ErrAlreadyFinalized", status, err)
		}
	}
}

func TestValidChoice(t *testing.T) {
	for v, want := range map[string]bool{"yes": true, "no": true, "": false, "abstain": false, "YES": false} {
		if got := ValidChoice(v); got != want {
			t.Errorf("ValidChoice(%q) = %v, want %v", v, got, want)
		}
	}
}
