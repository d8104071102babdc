package command

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/enigma-go/internal/cli/config"
	"github.com/yndnr/enigma-go/internal/cli/repl"
	"github.com/yndnr/enigma-go/internal/infra/confloader"
	"github.com/yndnr/enigma-go/internal/telemetry/logger"
	"github.com/yndnr/enigma-go/pkg/enigma"
)

// ShellCommand returns the interactive shell command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:      "shell",
		Aliases:   []string{"sh"},
		Usage:     "Encipher line by line in an interactive shell",
		ArgsUsage: "[plugboard reflector [rotor ... positions]]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Reload the machine when a key sheet file changes",
			},
			&cli.StringFlag{
				Name:  "prompt",
				Usage: "Shell prompt",
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "Do not read or write the history file",
			},
		},
		Action: shellAction,
	}
}

func shellAction(c *cli.Context) error {
	rt := getInvocation(c)

	p, err := rt.profile(c)
	if err != nil {
		return err
	}
	machines := rt.machines()
	m, err := machines.Load(c.Context, p)
	if err != nil {
		return err
	}

	opts, err := rt.encryptOptions(c)
	if err != nil {
		return err
	}
	opts.TrailingNewline = true
	opts.Source = "<shell>"

	cfg := repl.Config{
		Prompt:      rt.cfg.Shell.Prompt,
		HistoryFile: rt.cfg.Shell.History,
		HistorySize: config.DefaultHistorySize,
		Input:       c.App.Reader,
		Output:      c.App.Writer,
		ErrOutput:   c.App.ErrWriter,
	}
	if c.IsSet("prompt") {
		cfg.Prompt = c.String("prompt")
	}
	if c.Bool("no-history") {
		cfg.HistoryFile = ""
	}

	load := func(ctx context.Context) (*enigma.Machine, error) {
		return machines.Load(ctx, p)
	}
	shell := repl.New(cfg, rt.sessions(opts), m, load)
	rt.trackPositionSource(shell)

	if c.Bool("watch") || rt.cfg.Shell.Watch {
		w, err := confloader.NewWatcher(confloader.WithWatcherLogger(logger.Slog(rt.log)))
		if err != nil {
			return err
		}
		if err := w.Watch(p.Files()...); err != nil {
			if serr := w.Stop(); serr != nil {
				rt.log.Warn("stop watcher", "error", serr)
			}
			return err
		}
		w.OnChange(rt.reloadOnChange(c.Context, shell))
		w.StartAsync()
		defer func() {
			if err := w.Stop(); err != nil {
				rt.log.Warn("stop watcher", "error", err)
			}
		}()
	}

	return shell.Run(c.Context)
}

// reloadOnChange returns the watcher callback that reloads shell.
func (rt *invocation) reloadOnChange(ctx context.Context, shell *repl.REPL) func(string) {
	return func(path string) {
		rt.log.Info("key sheet changed", "file", path)
		if err := shell.Reload(ctx); err != nil {
			rt.log.Warn("reload failed, keeping previous machine", "file", path, "error", err)
		}
	}
}
