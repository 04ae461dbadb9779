package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrImpossibleBoards = errors.New("impossible boards found")

var (
	boardSize int
	pretty    bool
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check <board>...",
		Short: "Report winner and reachability of boards",
		Long: `Check one or more boards given as row-major text, one character per cell:
X and O for the players, '.' or ' ' for an unmarked cell.

Examples:
  tictactoe check XXXOO....
  tictactoe check --pretty "X.O.X...." XX.......
  tictactoe check --size 4 X...O...........`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}

	checkCmd.Flags().IntVarP(&boardSize, "size", "s", entity.DefaultSize, "Board size n of an n x n board")
	checkCmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Print each board as a grid before its report")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	encoder := json.NewEncoder(out)

	impossible := 0
	for _, text := range args {
		board, err := entity.ParseBoard(text, boardSize)
		if err != nil {
			return fmt.Errorf("board %q: %w", text, err)
		}

		report := entity.Inspect(board)

		if pretty {
			fmt.Fprint(out, formatBoard(board))
		}

		if err = encoder.Encode(report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		if !report.Valid {
			impossible++
		}
	}

	if impossible > 0 {
		return fmt.Errorf("%w: %d of %d", ErrImpossibleBoards, impossible, len(args))
	}

	return nil
}

// formatBoard draws the board with lettered columns and numbered rows.
func formatBoard(board entity.Board) string {
	size := board.Size()
	separator := "  " + strings.Repeat("-", 2*size+1) + "\n"

	var sb strings.Builder
	sb.WriteString("  ")
	for col := range size {
		sb.WriteString(" " + string(rune('a'+col)))
	}
	sb.WriteString("\n" + separator)

	for row := range size {
		fmt.Fprintf(&sb, "%d |", row+1)
		for col := range size {
			sb.WriteRune(board.At(row*size + col).Rune())
			sb.WriteByte('|')
		}
		sb.WriteString("\n" + separator)
	}

	return sb.String()
}
