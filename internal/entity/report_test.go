package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		name   string
		board  string
		winner Mark
		status string
		valid  bool
		reason string
	}{
		{name: "empty", board: ".........", winner: Unmarked, status: StatusInProgress, valid: true},
		{name: "X wins", board: "XXXOO....", winner: PlayerA, status: StatusWonByA, valid: true},
		{name: "O wins", board: "OOOXX.X..", winner: PlayerB, status: StatusWonByB, valid: true},
		{name: "draw", board: "XOXXOOOXX", winner: Unmarked, status: StatusDraw, valid: true},
		{name: "too many X", board: "XX.......", winner: Unmarked, status: StatusImpossible, reason: "too-many-x"},
		{name: "play after win", board: "XXXOOOX..", winner: PlayerA, status: StatusImpossible, reason: "play-after-opponent-win"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: inspecting the board
			report := Inspect(mustParse(t, tt.board))

			// Then: winner, status and validity match
			assert.Equal(t, tt.board, report.Board.String())
			assert.Equal(t, DefaultSize, report.Size)
			assert.Equal(t, tt.winner, report.Winner)
			assert.Equal(t, tt.status, report.Status)
			assert.Equal(t, tt.valid, report.Valid)
			assert.Equal(t, tt.reason, report.Reason)
		})
	}

	t.Run("Counts marks", func(t *testing.T) {
		report := Inspect(mustParse(t, "XO.X....."))

		assert.Equal(t, Counts{X: 2, O: 1}, report.Counts)
	})

	t.Run("Report keeps its own board", func(t *testing.T) {
		// Given: a report of a board that is played on afterwards
		board := mustParse(t, "X........")
		report := Inspect(board)

		assert.NoError(t, board.Place(4, PlayerB))

		// Then: the report still shows the inspected cells
		assert.Equal(t, "X........", report.Board.String())
		assert.Equal(t, Counts{X: 1, O: 0}, report.Counts)
	})
}
