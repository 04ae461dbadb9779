package entity

import "errors"

const (
	StatusInProgress = "in-progress"
	StatusWonByA     = "won-by-x"
	StatusWonByB     = "won-by-o"
	StatusDraw       = "draw"
	StatusImpossible = "impossible"
)

type Counts struct {
	X int `json:"x"`
	O int `json:"o"`
}

// Report is the verdict on one board snapshot.
type Report struct {
	Board  Board  `json:"board"`
	Size   int    `json:"size"`
	Winner Mark   `json:"winner"`
	Status string `json:"status"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
	Counts Counts `json:"counts"`
}

// Inspect evaluates winner, reachability and status of a board.
func Inspect(board Board) Report {
	countA, countB := board.Counts()

	report := Report{
		Board:  board.Clone(),
		Size:   board.Size(),
		Winner: Winner(board),
		Valid:  true,
		Counts: Counts{X: countA, O: countB},
	}

	var reason ImpossibleReason
	if err := Validate(board); errors.As(err, &reason) {
		report.Valid = false
		report.Reason = reason.String()
		report.Status = StatusImpossible

		return report
	}

	report.Status = statusOf(board, report.Winner)

	return report
}

func statusOf(board Board, winner Mark) string {
	switch {
	case winner == PlayerA:
		return StatusWonByA
	case winner == PlayerB:
		return StatusWonByB
	case board.IsFull():
		return StatusDraw
	default:
		return StatusInProgress
	}
}
