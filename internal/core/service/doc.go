// Package service provides the application services around the cipher core.
//
// Services orchestrate the core machine and define interfaces for their IO
// dependencies, allowing for dependency injection and testability.
//
// This package contains:
//
//   - MachineService: loads a profile's files and configures a machine
//   - SessionService: streams text through a configured machine
package service
