// Package domain defines the application models around the cipher core.
//
// Domain models are pure values without IO dependencies. This package contains:
//
//   - Profile: the set of files a machine is configured from
//   - Session: one encryption run and its bookkeeping
//   - Errors: application error codes and the process exit code mapping
package domain
