// errors.go
package pkgprobe

import (
	"github.com/pkgprobe/pkgprobe/pkg/probe"
)

// Every resolution failure is terminal: there is no partial result and
// nothing is retried. Match with errors.Is.
var (
	// ErrDisabled indicates discovery was opted out for this library
	// via its <LIB>_NO_PKG_CONFIG variable
	ErrDisabled = probe.ErrDisabled

	// ErrCrossCompilation indicates HOST and TARGET differ and
	// PKG_CONFIG_ALLOW_CROSS is not set
	ErrCrossCompilation = probe.ErrCrossCompilation

	// ErrToolInvocation indicates pkg-config could not be spawned
	ErrToolInvocation = probe.ErrToolInvocation

	// ErrToolFailure indicates pkg-config exited non-zero; the error
	// message carries its stdout and stderr verbatim
	ErrToolFailure = probe.ErrToolFailure
)
