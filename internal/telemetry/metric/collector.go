package metric

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PositionSource reports the current rotor positions, leftmost first.
type PositionSource interface {
	Positions() []int
}

// PositionFunc adapts a function to PositionSource.
type PositionFunc func() []int

// Positions implements PositionSource.
func (f PositionFunc) Positions() []int { return f() }

// Collector reports the live rotor positions of a machine as the
// enigma_rotor_position gauge, labelled by rotor index.
type Collector struct {
	source PositionSource
	desc   *prometheus.Desc
}

// NewCollector creates a rotor position collector reading from source.
func NewCollector(source PositionSource) *Collector {
	return &Collector{
		source: source,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "rotor_position"),
			"Current position of each rotor, leftmost rotor is 0.",
			[]string{"rotor"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for i, pos := range c.source.Positions() {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(pos), strconv.Itoa(i))
	}
}
