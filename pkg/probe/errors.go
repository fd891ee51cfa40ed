// pkg/probe/errors.go
package probe

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrDisabled indicates discovery was opted out for the library via
	// its <LIB>_NO_PKG_CONFIG variable
	ErrDisabled = errors.New("pkg-config requested to be aborted")

	// ErrCrossCompilation indicates HOST and TARGET differ and no
	// override is present
	ErrCrossCompilation = errors.New("pkg-config does not handle cross compilation")

	// ErrToolInvocation indicates the discovery tool could not be spawned
	ErrToolInvocation = errors.New("pkg-config invocation failed")

	// ErrToolFailure indicates the discovery tool ran but exited non-zero
	ErrToolFailure = errors.New("pkg-config reported failure")
)

func disabledError(library string) error {
	return errors.Wrapf(ErrDisabled, "library %q", library)
}

func crossCompileError() error {
	return errors.WithHintf(ErrCrossCompilation,
		"set %s=1 in the environment to probe anyway", "PKG_CONFIG_ALLOW_CROSS")
}

func invocationError(cmdline string, cause error) error {
	return errors.Mark(errors.Wrapf(cause, "failed to run `%s`", cmdline), ErrToolInvocation)
}

func failureError(cmdline, state, stdout, stderr string) error {
	msg := fmt.Sprintf("`%s` did not exit successfully: %s", cmdline, state)
	if stdout != "" {
		msg += "\n--- stdout\n" + stdout
	}
	if stderr != "" {
		msg += "\n--- stderr\n" + stderr
	}
	return errors.Mark(errors.New(msg), ErrToolFailure)
}
