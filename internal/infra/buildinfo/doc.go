// Package buildinfo provides build information for the enigma command.
//
// Values are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/enigma-go/internal/infra/buildinfo.Version=v1.0.0"
package buildinfo
