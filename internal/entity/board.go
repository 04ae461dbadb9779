package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	DefaultSize = 3
	MaxSize     = 9
)

var ErrInvalidBoardSize = errors.New("invalid board size")

// Board is a square grid of marks stored row-major, cell (row, col) at row*size+col.
type Board struct {
	size  int
	cells []Mark
}

// NewBoard returns an empty size x size board.
func NewBoard(size int) (Board, error) {
	if err := ValidateSize(size); err != nil {
		return Board{}, err
	}

	return Board{size: size, cells: make([]Mark, size*size)}, nil
}

// ValidateSize reports whether size is a supported board dimension.
func ValidateSize(size int) error {
	if size < 1 || size > MaxSize {
		return fmt.Errorf("%w: %d must be in range [1, %d]", ErrInvalidBoardSize, size, MaxSize)
	}

	return nil
}

func (that Board) Size() int {
	return that.size
}

func (that Board) Len() int {
	return len(that.cells)
}

// At returns the mark at pos, or Unmarked when pos is out of range.
func (that Board) At(pos int) Mark {
	if pos < 0 || pos >= len(that.cells) {
		return Unmarked
	}

	return that.cells[pos]
}

// Place puts mark into the unmarked cell at pos. Copies of a Board share
// cells, so Clone before placing on a board that others hold.
func (that *Board) Place(pos int, mark Mark) error {
	if pos < 0 || pos >= len(that.cells) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, pos)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: cannot place %q", ErrInvalidMark, mark.Rune())
	}

	if that.cells[pos] != Unmarked {
		return apperror.ErrCellOccupied
	}

	that.cells[pos] = mark

	return nil
}

// Lines returns the line table for the board's size.
func (that Board) Lines() []Line {
	return Lines(that.size)
}

// Marks resolves a line of positions to the marks it holds.
func (that Board) Marks(line Line) []Mark {
	marks := make([]Mark, len(line))
	for i, pos := range line {
		marks[i] = that.At(pos)
	}

	return marks
}

// Counts returns the number of PlayerA and PlayerB marks.
func (that Board) Counts() (int, int) {
	var countA, countB int
	for _, cell := range that.cells {
		switch cell {
		case PlayerA:
			countA++
		case PlayerB:
			countB++
		}
	}

	return countA, countB
}

func (that Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == Unmarked {
			return false
		}
	}

	return true
}

// Clone returns a board that shares no cells with the receiver.
func (that Board) Clone() Board {
	cells := make([]Mark, len(that.cells))
	copy(cells, that.cells)

	return Board{size: that.size, cells: cells}
}

func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(len(that.cells))

	for _, cell := range that.cells {
		sb.WriteRune(cell.Rune())
	}

	return sb.String()
}

func (that Board) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// UnmarshalText parses board text, inferring the size from its length.
func (that *Board) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return ErrEmptyBoard
	}

	size, err := sizeOf(len([]rune(string(text))))
	if err != nil {
		return err
	}

	board, err := ParseBoard(string(text), size)
	if err != nil {
		return err
	}

	*that = board

	return nil
}

// sizeOf returns n for a cell count of n*n.
func sizeOf(cellCount int) (int, error) {
	for n := 1; n <= MaxSize; n++ {
		if n*n == cellCount {
			return n, nil
		}
	}

	return 0, fmt.Errorf("%w: %d cells is not a supported square", ErrBadBoardLength, cellCount)
}
