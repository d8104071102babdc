package service

import (
	"context"
	"errors"

	"github.com/yndnr/enigma-go/internal/core/domain"
	"github.com/yndnr/enigma-go/internal/infra/tokenfile"
	"github.com/yndnr/enigma-go/internal/telemetry/logger"
	"github.com/yndnr/enigma-go/internal/telemetry/metric"
	"github.com/yndnr/enigma-go/pkg/enigma"
)

// TokenReader loads the tokens of one configuration file.
type TokenReader interface {
	Read(path string) ([]enigma.Token, error)
}

// TokenReaderFunc adapts a function to TokenReader.
type TokenReaderFunc func(path string) ([]enigma.Token, error)

// Read implements TokenReader.
func (f TokenReaderFunc) Read(path string) ([]enigma.Token, error) { return f(path) }

// FileReader reads configuration files from disk.
var FileReader TokenReader = TokenReaderFunc(tokenfile.Read)

// MachineService builds configured machines from profiles.
type MachineService struct {
	reader  TokenReader
	metrics *metric.Registry
	log     logger.Logger
}

// MachineOption configures a MachineService.
type MachineOption func(*MachineService)

// WithMachineMetrics records configuration attempts in r.
func WithMachineMetrics(r *metric.Registry) MachineOption {
	return func(s *MachineService) { s.metrics = r }
}

// WithMachineLogger sets the service logger.
func WithMachineLogger(l logger.Logger) MachineOption {
	return func(s *MachineService) { s.log = l }
}

// NewMachineService creates a new MachineService reading through reader.
// A nil reader reads from disk.
func NewMachineService(reader TokenReader, opts ...MachineOption) *MachineService {
	if reader == nil {
		reader = FileReader
	}
	s := &MachineService{reader: reader, log: logger.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads every file of profile and returns a configured machine.
//
// Files are read in the order reflector, plugboard, positions, rotors and
// the first unreadable or malformed file is reported. Configuration errors
// carry the name of the file they refer to in Pos.Source.
func (s *MachineService) Load(ctx context.Context, profile domain.Profile) (*enigma.Machine, error) {
	m, err := s.load(ctx, profile)
	s.record(ctx, profile, m, err)
	return m, err
}

func (s *MachineService) load(ctx context.Context, p domain.Profile) (*enigma.Machine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var cfg enigma.Config
	var err error

	if cfg.Reflector, err = s.read(p.Reflector, enigma.ComponentReflector, -1); err != nil {
		return nil, err
	}
	if cfg.Plugboard, err = s.read(p.Plugboard, enigma.ComponentPlugboard, -1); err != nil {
		return nil, err
	}
	if p.Positions != "" {
		if cfg.Positions, err = s.read(p.Positions, enigma.ComponentPositions, -1); err != nil {
			return nil, err
		}
	}
	for i, path := range p.Rotors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tokens, err := s.read(path, enigma.ComponentRotor, i)
		if err != nil {
			return nil, err
		}
		cfg.Rotors = append(cfg.Rotors, domain.SplitRotorTokens(tokens))
	}

	m := enigma.New(len(p.Rotors))
	if err := m.Configure(cfg); err != nil {
		return nil, annotate(err, p)
	}
	return m, nil
}

// read loads one file and tags malformed token errors with the component
// the file configures.
func (s *MachineService) read(path string, c enigma.Component, rotor int) ([]enigma.Token, error) {
	tokens, err := s.reader.Read(path)
	if err == nil {
		return tokens, nil
	}

	var e *enigma.Error
	if errors.As(err, &e) {
		e.Component = c
		e.Rotor = rotor
		return nil, e
	}
	return nil, domain.ErrConfigFileOpen.WithDetails(path).WithCause(err)
}

// annotate fills in the file name for errors raised without a token
// position, such as mapping count errors.
func annotate(err error, p domain.Profile) error {
	var e *enigma.Error
	if !errors.As(err, &e) || e.Pos.Source != "" {
		return err
	}
	switch e.Component {
	case enigma.ComponentPlugboard:
		e.Pos.Source = p.Plugboard
	case enigma.ComponentReflector:
		e.Pos.Source = p.Reflector
	case enigma.ComponentPositions:
		e.Pos.Source = p.Positions
	case enigma.ComponentRotor:
		if e.Rotor >= 0 && e.Rotor < len(p.Rotors) {
			e.Pos.Source = p.Rotors[e.Rotor]
		}
	}
	return err
}

func (s *MachineService) record(ctx context.Context, p domain.Profile, m *enigma.Machine, err error) {
	l := s.log.WithContext(ctx)
	if err != nil {
		kind, _ := enigma.KindOf(err)
		if s.metrics != nil {
			s.metrics.RecordConfigLoad(false, string(kind))
		}
		l.Warn("machine configuration failed", "kind", kind, "error", err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordConfigLoad(true, "")
	}
	l.Info("machine configured",
		"rotors", len(p.Rotors),
		"fingerprint", m.FingerprintHex(),
	)
}
