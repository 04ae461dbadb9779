package entity

import (
	"errors"
	"fmt"
)

// Mark is the state of a single cell.
type Mark uint8

const (
	Unmarked Mark = iota
	PlayerA
	PlayerB
)

const (
	charUnmarked = '.'
	charPlayerA  = 'X'
	charPlayerB  = 'O'

	// charLegacyUnmarked is accepted on input only.
	charLegacyUnmarked = ' '
)

var ErrInvalidMark = errors.New("invalid mark")

// Rune returns the canonical single-character form of the mark.
func (m Mark) Rune() rune {
	switch m {
	case PlayerA:
		return charPlayerA
	case PlayerB:
		return charPlayerB
	default:
		return charUnmarked
	}
}

func (m Mark) String() string {
	return string(m.Rune())
}

// Opponent returns the other player. Unmarked has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Unmarked
	}
}

func (m Mark) IsPlayer() bool {
	return m == PlayerA || m == PlayerB
}

// ParseMark resolves one character of board text to a Mark.
func ParseMark(r rune) (Mark, error) {
	switch r {
	case charPlayerA:
		return PlayerA, nil
	case charPlayerB:
		return PlayerB, nil
	case charUnmarked, charLegacyUnmarked:
		return Unmarked, nil
	default:
		return Unmarked, fmt.Errorf("%w: %q", ErrInvalidMark, r)
	}
}

func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mark) UnmarshalText(text []byte) error {
	runes := []rune(string(text))
	if len(runes) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidMark, text)
	}

	parsed, err := ParseMark(runes[0])
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
