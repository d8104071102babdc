package service

import (
	"bufio"
	"context"
	"errors"
	"io"
	"iter"
	"unicode"

	"github.com/yndnr/enigma-go/internal/core/domain"
	"github.com/yndnr/enigma-go/internal/telemetry/logger"
	"github.com/yndnr/enigma-go/internal/telemetry/metric"
	"github.com/yndnr/enigma-go/pkg/enigma"
)

// DefaultTerminator ends the message when read from the input.
const DefaultTerminator = '.'

// EncryptOptions controls how text is read and written.
type EncryptOptions struct {
	// Terminator stops reading when encountered. Zero reads to end of input.
	Terminator rune
	// GroupSize splits the output into space separated blocks of that many
	// letters. Zero writes one unbroken run.
	GroupSize int
	// TrailingNewline ends non-empty output with a newline.
	TrailingNewline bool
	// Source names the input in error positions.
	Source string
}

// DefaultEncryptOptions returns the options of the classic console tool.
func DefaultEncryptOptions() EncryptOptions {
	return EncryptOptions{
		Terminator: DefaultTerminator,
		Source:     "<stdin>",
	}
}

// SessionService streams text through configured machines.
type SessionService struct {
	opts    EncryptOptions
	metrics *metric.Registry
	log     logger.Logger
}

// SessionOption configures a SessionService.
type SessionOption func(*SessionService)

// WithSessionMetrics records sessions and symbol counts in r.
func WithSessionMetrics(r *metric.Registry) SessionOption {
	return func(s *SessionService) { s.metrics = r }
}

// WithSessionLogger sets the service logger.
func WithSessionLogger(l logger.Logger) SessionOption {
	return func(s *SessionService) { s.log = l }
}

// NewSessionService creates a new SessionService.
func NewSessionService(opts EncryptOptions, options ...SessionOption) *SessionService {
	s := &SessionService{opts: opts, log: logger.Default()}
	for _, o := range options {
		o(s)
	}
	return s
}

// Options returns the service's encrypt options.
func (s *SessionService) Options() EncryptOptions {
	return s.opts
}

// Encrypt reads letters from r until the terminator or end of input,
// encrypts them with m and writes the result to w.
//
// Whitespace in the input is skipped. Any other character outside A-Z
// stops the session with an InvalidSymbol error positioned in the input;
// output produced before it is still written. The returned session is
// non-nil whenever the session started, even on error.
func (s *SessionService) Encrypt(ctx context.Context, m *enigma.Machine, r io.Reader, w io.Writer) (*domain.Session, error) {
	if !m.Configured() {
		return nil, enigma.ErrNotConfigured
	}

	sess, err := domain.NewSession(m.FingerprintHex())
	if err != nil {
		return nil, err
	}
	ctx = logger.WithSessionID(ctx, sess.ID)
	l := s.log.WithContext(ctx).With("session_id", sess.ID)
	if s.metrics != nil {
		s.metrics.IncSessions()
	}
	l.Debug("session started", "fingerprint", sess.Fingerprint)

	in := newRuneSource(ctx, r, s.opts)
	out := newGroupWriter(w, s.opts.GroupSize)

	var runErr error
	for sym, err := range m.EncryptStream(in.symbols()) {
		if err != nil {
			runErr = err
			break
		}
		if err := out.WriteSymbol(sym); err != nil {
			runErr = domain.ErrSessionWrite.WithCause(err)
			break
		}
		sess.Symbols++
	}
	if runErr == nil {
		runErr = in.err
	}

	if sess.Symbols > 0 && s.opts.TrailingNewline {
		if err := out.WriteNewline(); err != nil && runErr == nil {
			runErr = domain.ErrSessionWrite.WithCause(err)
		}
	}
	if err := out.Flush(); err != nil && runErr == nil {
		runErr = domain.ErrSessionWrite.WithCause(err)
	}

	if s.metrics != nil {
		s.metrics.AddSymbols(int(sess.Symbols))
		if errors.Is(runErr, enigma.ErrInvalidSymbol) {
			s.metrics.IncInvalidSymbols()
		}
	}

	if runErr != nil {
		l.Warn("session aborted", "symbols", sess.Symbols, "error", runErr)
		return sess, runErr
	}
	l.Info("session finished", "symbols", sess.Symbols, "elapsed", sess.Elapsed())
	return sess, nil
}

// runeSource turns an input stream into symbols, tracking input positions.
type runeSource struct {
	ctx  context.Context
	r    *bufio.Reader
	opts EncryptOptions
	pos  enigma.Position
	err  error
}

func newRuneSource(ctx context.Context, r io.Reader, opts EncryptOptions) *runeSource {
	return &runeSource{
		ctx:  ctx,
		r:    bufio.NewReader(r),
		opts: opts,
		pos:  enigma.Position{Source: opts.Source, Line: 1, Column: 1},
	}
}

// symbols yields input letters as symbols. It stops at the terminator, at
// end of input, or on the first failure, which is left in src.err.
func (src *runeSource) symbols() iter.Seq[enigma.Symbol] {
	return func(yield func(enigma.Symbol) bool) {
		for {
			if err := src.ctx.Err(); err != nil {
				src.err = err
				return
			}

			ch, size, err := src.r.ReadRune()
			if err == io.EOF {
				return
			}
			if err != nil {
				src.err = domain.ErrSessionRead.WithCause(err)
				return
			}

			at := src.pos
			src.advance(ch, size)

			if src.opts.Terminator != 0 && ch == src.opts.Terminator {
				return
			}
			if unicode.IsSpace(ch) {
				continue
			}

			sym, err := enigma.SymbolFromRune(ch)
			if err != nil {
				var e *enigma.Error
				if errors.As(err, &e) {
					e.Pos = at
				}
				src.err = err
				return
			}
			if !yield(sym) {
				return
			}
		}
	}
}

func (src *runeSource) advance(ch rune, size int) {
	src.pos.Offset += size
	if ch == '\n' {
		src.pos.Line++
		src.pos.Column = 1
		return
	}
	src.pos.Column++
}

// groupWriter writes letters in space separated blocks.
type groupWriter struct {
	w       *bufio.Writer
	size    int
	written int
}

func newGroupWriter(w io.Writer, size int) *groupWriter {
	return &groupWriter{w: bufio.NewWriter(w), size: size}
}

func (g *groupWriter) WriteSymbol(s enigma.Symbol) error {
	if g.size > 0 && g.written > 0 && g.written%g.size == 0 {
		if err := g.w.WriteByte(' '); err != nil {
			return err
		}
	}
	g.written++
	_, err := g.w.WriteRune(s.Rune())
	return err
}

func (g *groupWriter) WriteNewline() error {
	return g.w.WriteByte('\n')
}

func (g *groupWriter) Flush() error {
	return g.w.Flush()
}
