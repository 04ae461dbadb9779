package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyBoard     = errors.New("board text is empty")
	ErrBadBoardLength = errors.New("board text has wrong length")
)

// BadChar is a character of board text that does not resolve to a mark.
type BadChar struct {
	Pos  int
	Char rune
}

// BadCharsError lists every unresolvable character of a board text.
type BadCharsError struct {
	Chars []BadChar
}

func (that *BadCharsError) Error() string {
	parts := make([]string, len(that.Chars))
	for i, bad := range that.Chars {
		parts[i] = fmt.Sprintf("%q at %d", bad.Char, bad.Pos)
	}

	return "board text has invalid characters: " + strings.Join(parts, ", ")
}

// ParseBoard builds a size x size board from row-major text, one character per cell.
// Only the structure is checked here, reachability is up to Validate.
func ParseBoard(text string, size int) (Board, error) {
	board, err := NewBoard(size)
	if err != nil {
		return Board{}, err
	}

	if text == "" {
		return Board{}, ErrEmptyBoard
	}

	runes := []rune(text)
	if len(runes) != board.Len() {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrBadBoardLength, len(runes), board.Len())
	}

	var bad []BadChar
	for pos, r := range runes {
		mark, err := ParseMark(r)
		if err != nil {
			bad = append(bad, BadChar{Pos: pos, Char: r})
			continue
		}

		board.cells[pos] = mark
	}

	if len(bad) > 0 {
		return Board{}, &BadCharsError{Chars: bad}
	}

	return board, nil
}
