package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "enigma"

// Load results for RecordConfigLoad.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	SymbolsTotal        prometheus.Counter
	SessionsTotal       prometheus.Counter
	InvalidSymbolsTotal prometheus.Counter
	ConfigLoadsTotal    *prometheus.CounterVec
	ConfigErrorsTotal   *prometheus.CounterVec
}

// NewRegistry creates a new metrics registry with the Go and process
// collectors registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		registry: reg,
		SymbolsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "symbols_total",
			Help:      "Total number of letters enciphered.",
		}),
		SessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Total number of encryption sessions started.",
		}),
		InvalidSymbolsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_symbols_total",
			Help:      "Total number of rejected input characters.",
		}),
		ConfigLoadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_loads_total",
			Help:      "Machine configuration attempts by result.",
		}, []string{"result"}),
		ConfigErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_errors_total",
			Help:      "Machine configuration failures by error kind.",
		}, []string{"kind"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.SymbolsTotal,
		r.SessionsTotal,
		r.InvalidSymbolsTotal,
		r.ConfigLoadsTotal,
		r.ConfigErrorsTotal,
	)
	return r
}

// Gatherer exposes the underlying registry for export and tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Register adds a custom collector, such as the rotor position collector.
func (r *Registry) Register(c prometheus.Collector) error {
	return r.registry.Register(c)
}

// AddSymbols counts n enciphered letters.
func (r *Registry) AddSymbols(n int) {
	if n > 0 {
		r.SymbolsTotal.Add(float64(n))
	}
}

// IncSessions counts a started session.
func (r *Registry) IncSessions() {
	r.SessionsTotal.Inc()
}

// IncInvalidSymbols counts a rejected input character.
func (r *Registry) IncInvalidSymbols() {
	r.InvalidSymbolsTotal.Inc()
}

// RecordConfigLoad counts a configuration attempt. kind is the failure
// kind and is ignored on success.
func (r *Registry) RecordConfigLoad(ok bool, kind string) {
	if ok {
		r.ConfigLoadsTotal.WithLabelValues(ResultOK).Inc()
		return
	}
	r.ConfigLoadsTotal.WithLabelValues(ResultError).Inc()
	if kind == "" {
		kind = "UNKNOWN"
	}
	r.ConfigErrorsTotal.WithLabelValues(kind).Inc()
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is replaced atomically.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
