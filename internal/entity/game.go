package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Winner Mark   `json:"winner"`
	Status string `json:"status"`
	Turn   Mark   `json:"player_turn"`
}

// NewGame starts a game on an empty board with PlayerA to move.
func NewGame(id string, size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	return &Game{
		ID:     id,
		Board:  board,
		Turn:   PlayerA,
		Status: StatusInProgress,
	}, nil
}

// ResumeGame continues play from a snapshot. The snapshot must be reachable.
func ResumeGame(id string, board Board) (*Game, error) {
	if err := Validate(board); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrImpossible, err)
	}

	game := &Game{
		ID:    id,
		Board: board.Clone(),
		Turn:  PlayerA,
	}

	if countA, countB := board.Counts(); countA > countB {
		game.Turn = PlayerB
	}

	game.UpdateGameState()

	return game, nil
}

func (that *Game) UpdateGameState() {
	switch winner := Winner(that.Board); {
	// one player wins
	case winner.IsPlayer():
		that.Winner = winner
		that.Status = statusOf(that.Board, winner)
		that.Turn = Unmarked
	// tie
	case that.Board.IsFull():
		that.Winner = Unmarked
		that.Status = StatusDraw
		that.Turn = Unmarked
	// game continue
	default:
		that.Status = StatusInProgress
	}
}

func (that *Game) MakeTurn(mark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= that.Board.Len() {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Place(cell, mark); err != nil {
		return fmt.Errorf("could not place mark: %w", err)
	}

	that.Turn = mark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status != StatusInProgress
}
