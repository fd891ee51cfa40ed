// pkg/probe/resolver.go

// Package probe shells out to the pkg-config utility to locate a
// system-installed library and translates its flag output into build
// directives plus a structured Library result.
package probe

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pkgprobe/pkgprobe/pkg/flagparse"
)

// Find runs the discovery tool for the named library using all
// configuration previously set. On success the build directives have
// been written to the configured output and the returned Library holds
// the classified flags. Every failure is terminal for this resolution;
// nothing is retried.
func (c *Config) Find(name string) (*Library, error) {
	return c.FindContext(context.Background(), name)
}

// FindContext is Find with a caller-supplied context. The context is
// passed through to the subprocess only; the library itself imposes no
// timeout.
func (c *Config) FindContext(ctx context.Context, name string) (*Library, error) {
	if c.policy.Disabled(name) {
		return nil, disabledError(name)
	}
	if !c.policy.CrossCompileAllowed() {
		return nil, crossCompileError()
	}

	statik := c.policy.InferStatic(name)
	if c.statik != nil {
		statik = *c.statik
	}

	tool, args := c.toolCommand()
	if statik {
		args = append(args, "--static")
	}
	args = append(args, "--libs", "--cflags")
	if c.minVersion != "" {
		args = append(args, fmt.Sprintf("%s >= %s", name, c.minVersion))
	} else {
		args = append(args, name)
	}

	cmdline := strings.Join(append([]string{tool}, args...), " ")
	c.logger.Debug("running discovery tool", "cmd", cmdline, "static", statik)

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Env = append(os.Environ(), EnvAllowSystemLibs+"=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			return nil, failureError(cmdline, exit.ProcessState.String(), stdout.String(), stderr.String())
		}
		return nil, invocationError(cmdline, err)
	}

	output := strings.TrimRight(stdout.String(), "\r\n")
	emit := NewEmitter(c.out)
	lib := &Library{}
	tokens := flagparse.Tokens(output)

	// Paths first: the -L directories feed the static archive check
	// below.
	var dirs []string
	for _, tok := range tokens {
		switch tok.Flag {
		case "-L":
			emit.LinkSearchNative(tok.Value)
			dirs = append(dirs, tok.Value)
			lib.LinkPaths = append(lib.LinkPaths, tok.Value)
		case "-F":
			emit.LinkSearchFramework(tok.Value)
			lib.FrameworkPaths = append(lib.FrameworkPaths, tok.Value)
		case "-I":
			lib.IncludePaths = append(lib.IncludePaths, tok.Value)
		}
	}

	for _, tok := range tokens {
		if tok.Flag != "-l" {
			continue
		}
		lib.Libs = append(lib.Libs, tok.Value)
		if statik && c.sysroot.staticArchiveOutside(tok.Value, dirs) {
			emit.LinkLibStatic(tok.Value)
		} else {
			emit.LinkLibDynamic(tok.Value)
		}
	}

	for _, fw := range flagparse.Frameworks(output) {
		emit.LinkFramework(fw)
		lib.Frameworks = append(lib.Frameworks, fw)
	}

	c.logger.Debug("resolution complete",
		"library", name, "libs", len(lib.Libs), "link_paths", len(lib.LinkPaths))

	return lib, nil
}
