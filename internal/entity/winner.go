package entity

// LineVerdict returns the mark held by every cell of the line, or Unmarked when
// the cells differ. A line of unmarked cells also yields Unmarked, which is not a win.
func LineVerdict(cells []Mark) Mark {
	if len(cells) == 0 {
		return Unmarked
	}

	candidate := cells[0]
	for _, cell := range cells[1:] {
		if cell != candidate {
			return Unmarked
		}
	}

	return candidate
}

// Winner returns the mark of the first winning line in enumeration order,
// or Unmarked if no line is won.
func Winner(board Board) Mark {
	for _, line := range board.Lines() {
		if verdict := LineVerdict(board.Marks(line)); verdict != Unmarked {
			return verdict
		}
	}

	return Unmarked
}

// Winners reports whether each player owns at least one winning line.
func Winners(board Board) (bool, bool) {
	var winA, winB bool
	for _, line := range board.Lines() {
		switch LineVerdict(board.Marks(line)) {
		case PlayerA:
			winA = true
		case PlayerB:
			winB = true
		}
	}

	return winA, winB
}
