package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/yndnr/enigma-go/internal/cli/output"
	"github.com/yndnr/enigma-go/internal/core/service"
	"github.com/yndnr/enigma-go/pkg/enigma"
)

// MachineLoader builds a freshly configured machine, used on reload.
type MachineLoader func(ctx context.Context) (*enigma.Machine, error)

// Config configures a REPL.
type Config struct {
	Prompt      string
	HistoryFile string
	HistorySize int
	Input       io.Reader
	Output      io.Writer
	ErrOutput   io.Writer
}

const (
	cmdHelp    = ":help"
	cmdState   = ":state"
	cmdReset   = ":reset"
	cmdReload  = ":reload"
	cmdHistory = ":history"
	cmdQuit    = ":quit"
)

var helpText = `Type letters to encipher them; rotor state carries over between lines.
Commands:
  :state     show rotor positions and key fingerprint
  :reset     return the rotors to their starting positions
  :reload    reread the key sheet files
  :history   list previous lines
  :help      show this help
  :quit      leave the shell (also exit, quit, Ctrl+D)
`

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	errOutput io.Writer
	prompt    string
	completer *Completer
	history   *History
	sessions  *service.SessionService
	load      MachineLoader

	mu      sync.Mutex
	machine *enigma.Machine
}

// New creates a shell enciphering with m. load, if not nil, is used by
// :reload and Reload to rebuild the machine. sessions should be built with
// TrailingNewline set so each enciphered line ends the output line.
func New(cfg Config, sessions *service.SessionService, m *enigma.Machine, load MachineLoader) *REPL {
	r := &REPL{
		input:     cfg.Input,
		output:    cfg.Output,
		errOutput: cfg.ErrOutput,
		prompt:    cfg.Prompt,
		completer: NewCompleter(cmdHelp, cmdState, cmdReset, cmdReload, cmdHistory, cmdQuit),
		history:   NewHistory(cfg.HistoryFile, cfg.HistorySize),
		sessions:  sessions,
		load:      load,
		machine:   m,
	}
	if r.input == nil {
		r.input = os.Stdin
	}
	if r.output == nil {
		r.output = os.Stdout
	}
	if r.errOutput == nil {
		r.errOutput = r.output
	}
	return r
}

// Positions reports the live rotor positions, for metrics collection.
func (r *REPL) Positions() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos := r.machine.Positions()
	out := make([]int, len(pos))
	for i, p := range pos {
		out[i] = int(p)
	}
	return out
}

// Reload rebuilds the machine. On failure the current machine stays in
// use and the error is reported. It may be called while Run is active.
func (r *REPL) Reload(ctx context.Context) error {
	if r.load == nil {
		return fmt.Errorf("reload is not available")
	}
	m, err := r.load(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		output.Diagnose(r.errOutput, err, nil)
		return err
	}
	r.machine = m
	fmt.Fprintf(r.output, "machine reloaded, fingerprint %s\n", m.FingerprintHex())
	return nil
}

// printf writes to w while holding the machine lock, so that output from a
// concurrent Reload never interleaves with the loop's own.
func (r *REPL) printf(w io.Writer, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(w, format, args...)
}

// Run starts the REPL loop. It returns on :quit, end of input or when ctx
// is cancelled. History is loaded first and saved on return.
func (r *REPL) Run(ctx context.Context) error {
	if err := r.history.Load(); err != nil {
		r.printf(r.errOutput, "warning: cannot load history: %v\n", err)
	}
	defer func() {
		if err := r.history.Save(); err != nil {
			r.printf(r.errOutput, "warning: cannot save history: %v\n", err)
		}
	}()

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		reader := bufio.NewReader(r.input)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if line != "" && err == io.EOF {
					select {
					case lines <- line:
					case <-done:
					}
				}
				readErr <- err
				return
			}
			select {
			case lines <- line:
			case <-done:
				return
			}
		}
	}()

	for {
		r.printf(r.output, "%s", r.prompt)

		select {
		case <-ctx.Done():
			r.printf(r.output, "\n")
			return nil
		case err := <-readErr:
			r.printf(r.output, "\n")
			if err == io.EOF {
				return nil
			}
			return err
		case line := <-lines:
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			r.history.Add(line)
			if quit := r.execute(ctx, line); quit {
				return nil
			}
		}
	}
}

// execute handles one line and reports whether the shell should exit.
func (r *REPL) execute(ctx context.Context, line string) bool {
	if line == "exit" || line == "quit" {
		return true
	}
	if !strings.HasPrefix(line, ":") {
		r.encrypt(ctx, line)
		return false
	}

	name, ok := r.completer.Resolve(strings.Fields(line)[0])
	if !ok {
		r.unknown(line)
		return false
	}

	switch name {
	case cmdQuit:
		return true
	case cmdHelp:
		r.printf(r.output, "%s", helpText)
	case cmdState:
		r.state()
	case cmdReset:
		r.mu.Lock()
		r.machine.Reset()
		fmt.Fprintln(r.output, "rotors reset")
		r.mu.Unlock()
	case cmdReload:
		if err := r.Reload(ctx); err != nil && r.load == nil {
			r.printf(r.errOutput, "error: %v\n", err)
		}
	case cmdHistory:
		var b strings.Builder
		for i, entry := range r.history.Entries() {
			fmt.Fprintf(&b, "%4d  %s\n", i+1, entry)
		}
		r.printf(r.output, "%s", b.String())
	}
	return false
}

func (r *REPL) encrypt(ctx context.Context, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.sessions.Encrypt(ctx, r.machine, strings.NewReader(line), r.output)
	if err != nil {
		output.Diagnose(r.errOutput, err, r.lineSource(line))
	}
}

// lineSource lets diagnostics quote the line being enciphered.
func (r *REPL) lineSource(line string) output.SourceReader {
	src := r.sessions.Options().Source
	return func(path string) ([]byte, error) {
		if path == src {
			return []byte(line), nil
		}
		return os.ReadFile(path)
	}
}

func (r *REPL) state() {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := &output.Table{Headers: []string{"ROTOR", "POSITION", "LETTER"}}
	for i, p := range r.machine.Positions() {
		t.AddRow(fmt.Sprint(i), fmt.Sprint(int(p)), p.String())
	}
	t.Render(r.output)
	fmt.Fprintf(r.output, "fingerprint %s\n", r.machine.FingerprintHex())
}

func (r *REPL) unknown(line string) {
	name := strings.Fields(line)[0]
	msg := "unknown command " + name
	if s := r.completer.Complete(name); len(s) > 0 {
		msg += ", did you mean " + strings.Join(s, " or ") + "?"
	}
	r.printf(r.errOutput, "%s (type :help)\n", msg)
}
