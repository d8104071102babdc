package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// CheckCommand returns the check command.
func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate a key sheet without enciphering",
		ArgsUsage: "[plugboard reflector [rotor ... positions]]",
		Description: "Loads every file of the key sheet and reports the first problem\n" +
			"with the offending line. The exit status is the one encrypt would\n" +
			"return for the same files.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Print nothing on success",
			},
		},
		Action: checkAction,
	}
}

func checkAction(c *cli.Context) error {
	rt := getInvocation(c)

	p, err := rt.profile(c)
	if err != nil {
		return err
	}
	m, err := rt.machines().Load(c.Context, p)
	if err != nil {
		return err
	}

	if !c.Bool("quiet") {
		fmt.Fprintf(c.App.Writer, "ok: %d rotors, fingerprint %s\n", m.RotorCount(), m.FingerprintHex())
	}
	return nil
}
