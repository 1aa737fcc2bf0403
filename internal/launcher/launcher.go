// Package launcher runs the single prompt-and-connect cycle behind the sshs
// command.
//
// A cycle runs these steps in order:
//  1. Refuse an empty list.
//  2. Show every entry's name in file order.
//  3. Map the chosen position back to its entry.
//  4. Print a confirmation line.
//  5. Hand the entry's connection string to a Runner.
//
// The picker and the ssh process sit behind the ui.Prompter and Runner
// interfaces, so tests can drive the whole cycle without a terminal or an
// ssh binary.
//
// Nothing here reads or writes the connection file. Entries arrive already
// parsed (see internal/config) and are never reordered, so position i in the
// picker is always entries[i], even when two entries share a name.
package launcher

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/tgrgds/sshs/internal/apperr"
	"github.com/tgrgds/sshs/internal/model"
	"github.com/tgrgds/sshs/internal/ui"
	"github.com/tgrgds/sshs/internal/util"
)

// Runner starts an ssh session for a connection string and blocks until it
// ends. The connection string is passed on untouched.
//
// Implementations:
//   - internal/sshclient (Client.Run): execs the system ssh binary.
//   - tests: record the connection instead of connecting.
type Runner interface {
	Run(ctx context.Context, connection string) error
}

// Launcher runs one prompt-and-connect cycle. All fields except Title, Accent
// and Source are required.
//
// Typical use, as wired in internal/cli:
//
//	l := &launcher.Launcher{
//		Prompter: ui.NewTerminalPrompter(cfg.UI.AccentColor),
//		Runner:   sshclient.New(),
//		Out:      os.Stdout,
//		Source:   path,
//	}
//	err := l.Launch(ctx, entries)
type Launcher struct {
	Prompter ui.Prompter
	Runner   Runner
	Out      io.Writer

	// Title is the picker heading; Accent colours the confirmation line.
	Title  string
	Accent string

	// Source names where entries came from, for error messages.
	Source string
}

// Launch prompts for one of entries and connects to it.
//
// It fails with NoConnections before any prompt is shown when entries is
// empty, and with SelectionAborted when the user backs out of the picker or
// the picker reports a position outside entries; in both cases ssh is never
// started and nothing is printed. Otherwise it writes
//
//	Connecting to <name>
//
// to Out and returns whatever Runner.Run returns. A failed confirmation
// write is logged and does not stop the connection.
func (l *Launcher) Launch(ctx context.Context, entries []model.ConnectionEntry) error {
	if len(entries) == 0 {
		if l.Source != "" {
			return apperr.Newf(apperr.NoConnections, nil, "no connections configured in %s", l.Source)
		}
		return apperr.New(apperr.NoConnections, "no connections configured", nil)
	}

	labels := model.Labels(entries)
	sel, err := l.Prompter.Select(ctx, util.DefaultString(l.Title, util.DefaultPrompt), labels)
	if err != nil {
		return err
	}
	if sel.Aborted {
		return apperr.New(apperr.SelectionAborted, "no connection selected", nil)
	}
	entry, ok := model.At(entries, sel.Index)
	if !ok {
		return apperr.Newf(apperr.SelectionAborted, nil, "selection %d out of range", sel.Index)
	}
	log.Debug().Int("index", sel.Index).Str("name", entry.Name).Msg("connection selected")

	if _, err := fmt.Fprintln(l.Out, ui.ConnectingLine(labels[sel.Index], l.Accent)); err != nil {
		log.Warn().Err(err).Msg("failed to print confirmation")
	}
	return l.Runner.Run(ctx, entry.Connection)
}
