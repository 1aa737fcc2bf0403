// Package apperr defines the classified errors sshs surfaces to the user.
//
// Every fatal condition carries a Kind so callers and tests can match it with
// errors.Is(err, apperr.Parse) without comparing message text. Error()
// renders the message followed by its cause, and that full text is what the
// CLI prints and what Detail hands to the debug log.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a fatal error. A Kind is itself an error so it can be used
// as an errors.Is target.
type Kind string

const (
	HomeDirectoryUnresolved Kind = "home directory unresolved"
	FileRead                Kind = "file read error"
	Parse                   Kind = "parse error"
	NoConnections           Kind = "no connections"
	SelectionAborted        Kind = "selection aborted"
	Spawn                   Kind = "spawn error"
	Wait                    Kind = "wait error"
	Settings                Kind = "settings error"
)

func (k Kind) Error() string { return string(k) }

// Error is a classified error with a user-safe message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// New creates a classified error. err may be nil.
func New(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Newf is New with a formatted message.
func Newf(kind Kind, err error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := strings.TrimSpace(e.Msg)
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is this error's Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && e.Kind == k
}

// KindOf returns the Kind of the first classified error in err's chain, or ""
// if there is none.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// Detail returns the full error text including causes, for debug logs.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// ExitStatus reports that the ssh child exited non-zero and that its status
// should become the process exit code.
type ExitStatus struct {
	Code int
}

func (e *ExitStatus) Error() string {
	return fmt.Sprintf("ssh exited with status %d", e.Code)
}

// ExitCode returns the process exit code for err: 0 for nil, the propagated
// child status for *ExitStatus, and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var es *ExitStatus
	if errors.As(err, &es) && es.Code > 0 {
		return es.Code
	}
	return 1
}
