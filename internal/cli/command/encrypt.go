package command

import (
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/enigma-go/internal/cli/config"
	"github.com/yndnr/enigma-go/internal/core/domain"
	"github.com/yndnr/enigma-go/internal/core/service"
	"github.com/yndnr/enigma-go/internal/telemetry/metric"
	"github.com/yndnr/enigma-go/pkg/enigma"
)

// EncryptCommand returns the encrypt command.
func EncryptCommand() *cli.Command {
	return &cli.Command{
		Name:      "encrypt",
		Aliases:   []string{"enc", "e"},
		Usage:     "Encipher a message read from stdin",
		ArgsUsage: "[plugboard reflector [rotor ... positions]]",
		Description: "Letters A-Z are enciphered, whitespace is skipped and the\n" +
			"terminator ends the message. Any other character is an error.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "text",
				Aliases: []string{"t"},
				Usage:   "Encipher this text instead of stdin",
			},
			&cli.IntFlag{
				Name:    "group",
				Aliases: []string{"g"},
				Usage:   "Split output into groups of N letters (0 disables)",
			},
			&cli.StringFlag{
				Name:  "terminator",
				Usage: "Character that ends the message (empty reads to end of input)",
			},
			&cli.BoolFlag{
				Name:    "newline",
				Aliases: []string{"n"},
				Usage:   "End output with a newline",
			},
		},
		Action: encryptAction,
	}
}

func encryptAction(c *cli.Context) error {
	rt := getInvocation(c)

	opts, err := rt.encryptOptions(c)
	if err != nil {
		return err
	}
	p, err := rt.profile(c)
	if err != nil {
		return err
	}
	m, err := rt.machines().Load(c.Context, p)
	if err != nil {
		return err
	}
	rt.trackPositions(m)

	var in io.Reader = c.App.Reader
	if c.IsSet("text") {
		in = strings.NewReader(c.String("text"))
		opts.Source = "<text>"
	}

	_, err = rt.sessions(opts).Encrypt(c.Context, m, in, c.App.Writer)
	return err
}

// encryptOptions merges the encrypt flags over the settings.
func (rt *invocation) encryptOptions(c *cli.Context) (service.EncryptOptions, error) {
	cfg := *rt.cfg
	if c.IsSet("terminator") {
		cfg.Input.Terminator = c.String("terminator")
	}
	if c.IsSet("group") {
		cfg.Output.Group = c.Int("group")
	}
	if c.IsSet("newline") {
		cfg.Output.Newline = c.Bool("newline")
	}
	if err := config.Verify(&cfg); err != nil {
		return service.EncryptOptions{}, domain.ErrInvalidArgument.WithCause(err)
	}

	opts := service.DefaultEncryptOptions()
	opts.Terminator = cfg.TerminatorRune()
	opts.GroupSize = cfg.Output.Group
	opts.TrailingNewline = cfg.Output.Newline
	return opts, nil
}

// trackPositions exports the live rotor positions of m.
func (rt *invocation) trackPositions(m *enigma.Machine) {
	positions := metric.PositionFunc(func() []int {
		pos := m.Positions()
		out := make([]int, len(pos))
		for i, p := range pos {
			out[i] = int(p)
		}
		return out
	})
	rt.trackPositionSource(positions)
}

func (rt *invocation) trackPositionSource(src metric.PositionSource) {
	if err := rt.metrics.Register(metric.NewCollector(src)); err != nil {
		rt.log.Warn("rotor position metrics unavailable", "error", err)
	}
}
