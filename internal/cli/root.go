// Package cli provides the command-line interface for sshs.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tgrgds/sshs/internal/appconfig"
	"github.com/tgrgds/sshs/internal/apperr"
	"github.com/tgrgds/sshs/internal/config"
	"github.com/tgrgds/sshs/internal/launcher"
	"github.com/tgrgds/sshs/internal/logging"
	"github.com/tgrgds/sshs/internal/sshclient"
	"github.com/tgrgds/sshs/internal/ui"
)

// Version is set at link time via
// -ldflags "-X github.com/tgrgds/sshs/internal/cli.Version=...".
var Version = "dev"

// environment holds the pieces of the outside world the command touches, so
// tests can swap them out.
type environment struct {
	home      config.HomeFunc
	settings  func() (appconfig.Config, error)
	preflight func() error
	prompter  func(cfg appconfig.Config) ui.Prompter
	runner    func(cfg appconfig.Config) launcher.Runner
	logOut    io.Writer
}

func defaultEnvironment() environment {
	return environment{
		home:      config.UserHome,
		settings:  appconfig.Load,
		preflight: sshclient.EnsureSSHBinary,
		prompter: func(cfg appconfig.Config) ui.Prompter {
			return ui.NewTerminalPrompter(cfg.UI.AccentColor)
		},
		runner: func(cfg appconfig.Config) launcher.Runner {
			c := sshclient.New()
			c.PropagateExitCode = cfg.PropagateExitCode
			return c
		},
		logOut: os.Stderr,
	}
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultEnvironment())
}

func newRootCommand(env environment) *cobra.Command {
	var file string
	root := &cobra.Command{
		Use:          "sshs",
		Short:        "Pick a saved SSH connection and connect to it",
		Long:         "sshs lists the connections in ~/.ssh/sshs.json, lets you pick one,\nand runs ssh with its connection string.",
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.settings()
			if err != nil {
				return err
			}
			logging.Setup(env.logOut, cfg.LogLevel)

			var explicit *string
			if cmd.Flags().Changed("file") {
				explicit = &file
			}
			path, err := config.Locate(explicit, env.home)
			if err != nil {
				return err
			}
			log.Debug().Str("path", path).Msg("resolved connection file")

			entries, err := config.Load(path)
			if err != nil {
				log.Debug().Str("detail", apperr.Detail(err)).Msg("load failed")
				return err
			}
			log.Debug().Int("entries", len(entries)).Msg("loaded connections")

			if len(entries) > 0 {
				if err := env.preflight(); err != nil {
					return err
				}
			}

			l := &launcher.Launcher{
				Prompter: env.prompter(cfg),
				Runner:   env.runner(cfg),
				Out:      cmd.OutOrStdout(),
				Title:    cfg.UI.Prompt,
				Accent:   cfg.UI.AccentColor,
				Source:   path,
			}
			if err := l.Launch(cmd.Context(), entries); err != nil {
				log.Debug().Str("kind", string(apperr.KindOf(err))).Str("detail", apperr.Detail(err)).Msg("launch failed")
				return err
			}
			return nil
		},
	}

	root.Flags().StringVarP(&file, "file", "f", "", "Specify a custom sshs.json `FILE` (default ~/.ssh/sshs.json)")
	return root
}
