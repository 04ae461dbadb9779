package entity

// ImpossibleReason explains why a board cannot arise from alternating play
// started by PlayerA.
type ImpossibleReason int

const (
	TooManyOfMarkA ImpossibleReason = iota + 1
	TooManyOfMarkB
	PlayAfterOpponentWin
	BothPlayersWin
)

func (r ImpossibleReason) String() string {
	switch r {
	case TooManyOfMarkA:
		return "too-many-x"
	case TooManyOfMarkB:
		return "too-many-o"
	case PlayAfterOpponentWin:
		return "play-after-opponent-win"
	case BothPlayersWin:
		return "both-players-win"
	default:
		return "unknown"
	}
}

func (r ImpossibleReason) Error() string {
	switch r {
	case TooManyOfMarkA:
		return "X has more than one mark over O"
	case TooManyOfMarkB:
		return "O has more marks than X"
	case PlayAfterOpponentWin:
		return "a mark was placed after the game was won"
	case BothPlayersWin:
		return "both players have a winning line"
	default:
		return "board is impossible"
	}
}

// Validate returns nil when the board is reachable from the empty board,
// otherwise the first violated ImpossibleReason.
func Validate(board Board) error {
	countA, countB := board.Counts()

	switch {
	case countA > countB+1:
		return TooManyOfMarkA
	case countB > countA:
		return TooManyOfMarkB
	}

	winA, winB := Winners(board)

	// play stops at the completing mark, so the winner made the last move
	if winA && countA == countB {
		return PlayAfterOpponentWin
	}

	if winB && countA == countB+1 {
		return PlayAfterOpponentWin
	}

	if winA && winB {
		return BothPlayersWin
	}

	return nil
}
