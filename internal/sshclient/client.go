// Package sshclient launches the system ssh binary for an interactive session.
//
// sshs does not speak the SSH protocol. It execs "ssh <connection>" with the
// parent's stdin, stdout and stderr so the session behaves exactly like typing
// the command by hand, including ~/.ssh/config resolution, agents, password
// prompts and ProxyJump chains.
//
// The connection string is passed as a single argv element, never through a
// shell, so metacharacters in it are not interpreted.
package sshclient

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/tgrgds/sshs/internal/apperr"
	"github.com/tgrgds/sshs/internal/util"
)

// Client runs interactive ssh sessions.
//
// The zero value is not useful; use New.
type Client struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// PropagateExitCode turns a non-zero ssh exit into *apperr.ExitStatus.
	// When false a finished session is success whatever its status.
	PropagateExitCode bool
}

// New creates a client bound to the process's standard streams.
func New() *Client {
	return &Client{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// EnsureSSHBinary checks that "ssh" is on PATH.
func EnsureSSHBinary() error {
	if _, err := exec.LookPath(util.SSHBinary); err != nil {
		return apperr.New(apperr.Spawn, "ssh binary not found in PATH", err)
	}
	return nil
}

// ConnectCommand builds the exec.Cmd for "ssh <connection>" wired to the
// client's streams. It does not start the process.
func (c *Client) ConnectCommand(connection string) *exec.Cmd {
	cmd := exec.Command(util.SSHBinary, connection)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	return cmd
}

// Run starts ssh for connection and blocks until it exits.
//
// A start failure is a Spawn error and a failure to collect the child is a
// Wait error. A child that ran and exited, with any status, is a completed
// session.
func (c *Client) Run(ctx context.Context, connection string) error {
	if err := ctx.Err(); err != nil {
		return apperr.New(apperr.Spawn, "ssh not started", err)
	}
	cmd := c.ConnectCommand(connection)

	// Ctrl+C at an ssh password prompt signals the whole foreground process
	// group. Catch it here so the parent outlives the child; a caught signal
	// is reset to its default in the exec'd child, unlike an ignored one.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	log.Debug().Strs("argv", cmd.Args).Msg("starting ssh")
	if err := cmd.Start(); err != nil {
		return apperr.New(apperr.Spawn, "failed to launch ssh", err)
	}

	err := cmd.Wait()
	if err == nil {
		log.Debug().Int("pid", cmd.Process.Pid).Msg("ssh session finished")
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return apperr.New(apperr.Wait, "failed waiting for ssh", err)
	}
	code := exitCode(exitErr)
	log.Debug().Int("pid", cmd.Process.Pid).Int("status", code).Msg("ssh exited non-zero")
	if c.PropagateExitCode {
		return &apperr.ExitStatus{Code: code}
	}
	return nil
}

// exitCode maps a child's termination to a shell-style status: the exit code,
// or 128+signal when it was killed.
func exitCode(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}

