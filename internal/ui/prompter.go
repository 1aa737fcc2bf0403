package ui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/tgrgds/sshs/internal/apperr"
)

// Prompter asks the user to pick one of labels. It blocks until the user
// confirms or aborts.
type Prompter interface {
	Select(ctx context.Context, title string, labels []string) (Selection, error)
}

// TerminalPrompter runs the picker on a real terminal. The picker draws on
// Out, stderr by default, so stdout carries only the confirmation line and
// the ssh session.
type TerminalPrompter struct {
	In     *os.File
	Out    io.Writer
	Accent string
}

// NewTerminalPrompter returns a prompter reading stdin and drawing on stderr.
func NewTerminalPrompter(accent string) *TerminalPrompter {
	return &TerminalPrompter{In: os.Stdin, Out: os.Stderr, Accent: accent}
}

// Select implements Prompter. The first label starts highlighted.
func (p *TerminalPrompter) Select(ctx context.Context, title string, labels []string) (Selection, error) {
	if len(labels) == 0 {
		return Selection{}, apperr.New(apperr.NoConnections, "nothing to select", nil)
	}
	if p.In == nil || !term.IsTerminal(int(p.In.Fd())) {
		return Selection{}, apperr.New(apperr.SelectionAborted, "interactive selection needs a terminal on stdin", nil)
	}

	prog := tea.NewProgram(
		newPicker(title, labels, p.Accent),
		tea.WithInput(p.In),
		tea.WithOutput(p.Out),
		tea.WithContext(ctx),
	)
	final, err := prog.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return Selection{Aborted: true}, nil
		}
		return Selection{}, apperr.New(apperr.SelectionAborted, "selection prompt failed", err)
	}
	m, ok := final.(pickerModel)
	if !ok {
		return Selection{Aborted: true}, nil
	}
	return m.selection(), nil
}
