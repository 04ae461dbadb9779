package entity

// Line is an ordered run of cell positions: a row, a column or a diagonal.
type Line []int

var defaultLines = buildLines(DefaultSize)

// Lines returns the n rows, the n columns, the primary diagonal and the
// anti-diagonal of an n x n board, in that order. The result must not be modified.
func Lines(n int) []Line {
	if n == DefaultSize {
		return defaultLines
	}

	return buildLines(n)
}

func buildLines(n int) []Line {
	if n < 1 {
		return nil
	}

	lines := make([]Line, 0, 2*n+2)

	for row := range n {
		line := make(Line, n)
		for k := range n {
			line[k] = row*n + k
		}
		lines = append(lines, line)
	}

	for col := range n {
		line := make(Line, n)
		for k := range n {
			line[k] = col + k*n
		}
		lines = append(lines, line)
	}

	primary := make(Line, n)
	anti := make(Line, n)
	for k := range n {
		primary[k] = k * (n + 1)
		anti[k] = (n - 1) + k*(n-1)
	}

	return append(lines, primary, anti)
}
