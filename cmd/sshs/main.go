// Package main is the entry point for the sshs binary.
//
// sshs reads a list of named SSH connections from ~/.ssh/sshs.json (or the
// file given with -f/--file), shows an interactive picker, and runs
// "ssh <connection>" for the chosen entry.
//
//	sshs                    # pick from ~/.ssh/sshs.json
//	sshs -f work.json       # pick from another file
//
// The command is built in internal/cli; this file runs it through fang and
// turns the result into an exit status.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/tgrgds/sshs/internal/apperr"
	"github.com/tgrgds/sshs/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()

	// fang prints any returned error; only the exit status is left to us.
	// A propagated ssh status (propagate_exit_code) becomes our own.
	if err := fang.Execute(context.Background(), cmd, fang.WithVersion(cli.Version)); err != nil {
		os.Exit(apperr.ExitCode(err))
	}
}
