// Package main is the entry point for the agentsync CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thoreinstein/agentsync/cmd/agentsync/commands"
	syncerrors "github.com/thoreinstein/agentsync/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var exitErr *syncerrors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(syncerrors.ExitUser)
	}
}
