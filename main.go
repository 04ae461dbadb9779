package main

import (
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-engine/cmd"
)

// main - is the entry point of the application. It dispatches to the serve and check commands.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
