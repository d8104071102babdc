// Package metric provides Prometheus metrics for the machine.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: registry, counters and the textfile exporter
//   - collector.go: custom collector reporting live rotor positions
//
// A console tool has no scrape endpoint, so metrics are written in the
// Prometheus text format to a file picked up by the node exporter's
// textfile collector.
package metric
