package command

import (
	"context"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/enigma-go/internal/cli/config"
	"github.com/yndnr/enigma-go/internal/cli/output"
	"github.com/yndnr/enigma-go/internal/core/domain"
	"github.com/yndnr/enigma-go/internal/core/service"
	"github.com/yndnr/enigma-go/internal/infra/buildinfo"
	"github.com/yndnr/enigma-go/internal/infra/shutdown"
	"github.com/yndnr/enigma-go/internal/telemetry/logger"
	"github.com/yndnr/enigma-go/internal/telemetry/metric"
)

const (
	metaInvocation = "invocation"

	shutdownTimeout = 5 * time.Second
)

// App creates the CLI application.
//
// Without a command the application runs the classic form: the key sheet
// files are given as positional arguments and stdin is enciphered to
// stdout.
func App() *cli.App {
	return &cli.App{
		Name:  "enigma",
		Usage: "Rotor cipher machine",
		UsageText: "enigma [global options] plugboard reflector [rotor ... positions] < message\n" +
			"   enigma [global options] command [command options] [plugboard reflector [rotor ... positions]]",
		Version: buildinfo.Get().Version,
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			EncryptCommand(),
			CheckCommand(),
			InspectCommand(),
			ShellCommand(),
			VersionCommand(),
		},
		Action: encryptAction,
		Before: setup,
		After:  teardown,
		// Exit codes are mapped by Run.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// Run runs the application with the given arguments and streams and
// returns the process exit code. Errors are reported on stderr.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := shutdown.WithSignals(context.Background())
	defer stop()

	app := App()
	app.Reader = stdin
	app.Writer = stdout
	app.ErrWriter = stderr

	err := app.RunContext(ctx, args)
	if err != nil {
		output.Diagnose(stderr, err, nil)
	}
	return domain.ExitCode(err)
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Settings file (default ~/.enigma/config.yaml)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "Write Prometheus metrics to this file on exit",
		},
	}
}

// flagKeys maps global flags onto settings keys.
var flagKeys = map[string]string{
	"log-level":    "log.level",
	"log-format":   "log.format",
	"output":       "output.format",
	"metrics-file": "metrics.file",
}

// overrides collects the global flags set on the command line.
func overrides(c *cli.Context) map[string]any {
	m := make(map[string]any)
	for flag, key := range flagKeys {
		if c.IsSet(flag) {
			m[key] = c.String(flag)
		}
	}
	return m
}

// invocation holds what commands share for one invocation.
type invocation struct {
	cfg      *config.Config
	log      logger.Logger
	metrics  *metric.Registry
	shutdown *shutdown.Handler
}

func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), overrides(c))
	if err != nil {
		return domain.ErrConfigInvalid.WithCause(err)
	}
	if err := config.Verify(cfg); err != nil {
		return domain.ErrConfigInvalid.WithCause(err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return err
	}
	logger.SetDefault(log)

	rt := &invocation{
		cfg:      cfg,
		log:      log,
		metrics:  metric.NewRegistry(),
		shutdown: shutdown.NewHandler(shutdownTimeout),
	}
	if path := cfg.Metrics.File; path != "" {
		rt.shutdown.OnShutdown(func(context.Context) error {
			return rt.metrics.WriteTextfile(path)
		})
	}

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[metaInvocation] = rt
	return nil
}

// teardown runs the shutdown hooks. Hook failures are logged rather than
// returned so they never mask the command's own result.
func teardown(c *cli.Context) error {
	rt := getInvocation(c)
	if rt == nil {
		return nil
	}
	if err := rt.shutdown.Run(); err != nil {
		rt.log.Error("shutdown hooks failed", "error", err)
	}
	return nil
}

// getInvocation retrieves the invocation from context.
func getInvocation(c *cli.Context) *invocation {
	if rt, ok := c.App.Metadata[metaInvocation].(*invocation); ok {
		return rt
	}
	return nil
}

// profile resolves the key sheet files: positional arguments win over the
// machine section of the settings.
func (rt *invocation) profile(c *cli.Context) (domain.Profile, error) {
	if c.Args().Present() {
		return domain.ProfileFromArgs(c.Args().Slice())
	}
	p := rt.cfg.Machine
	if p.IsZero() {
		return p, domain.ErrInsufficientParameters.WithDetails(
			"no key sheet given; usage: plugboard reflector [rotor ... positions]")
	}
	return p, p.Validate()
}

func (rt *invocation) machines() *service.MachineService {
	return service.NewMachineService(service.FileReader,
		service.WithMachineMetrics(rt.metrics),
		service.WithMachineLogger(rt.log),
	)
}

func (rt *invocation) sessions(opts service.EncryptOptions) *service.SessionService {
	return service.NewSessionService(opts,
		service.WithSessionMetrics(rt.metrics),
		service.WithSessionLogger(rt.log),
	)
}

// formatter returns the formatter selected by output.format.
func (rt *invocation) formatter(c *cli.Context) output.Formatter {
	format, err := output.ParseFormat(rt.cfg.Output.Format)
	if err != nil {
		format = output.FormatTable
	}
	return output.NewFormatter(format, c.Bool("wide"))
}
