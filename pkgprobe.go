// pkgprobe.go

// Package pkgprobe locates system-installed libraries for build scripts
// by shelling out to the pkg-config utility and translating its output
// into build directives.
//
// A probe runs pkg-config once, writes directive lines (see
// pkg/probe.Emitter) to stdout for the calling build system, and
// returns the classified flags as a Library. The Config type configures
// an invocation builder style:
//
//	lib, err := pkgprobe.NewConfig().Static(true).AtLeastVersion("1.2").Find("foo")
//
// Environment variables consulted (library names uppercased with '-'
// mapped to '_'):
//
//   - PKG_CONFIG_ALLOW_CROSS: permit discovery when HOST and TARGET
//     differ; otherwise cross compiles disable discovery entirely.
//   - FOO_NO_PKG_CONFIG: disable discovery for the library foo.
//   - FOO_STATIC / FOO_DYNAMIC: per-library link-mode override.
//   - PKG_CONFIG_ALL_STATIC / PKG_CONFIG_ALL_DYNAMIC: global link-mode
//     override. Per-library variables win; the first match in the order
//     above applies; the default is dynamic.
//   - PKG_CONFIG: replace the pkg-config command itself.
package pkgprobe

import (
	"context"

	"github.com/pkgprobe/pkgprobe/pkg/envpolicy"
	"github.com/pkgprobe/pkgprobe/pkg/probe"
)

// Re-export probe types for convenience
type (
	Config  = probe.Config
	Library = probe.Library
)

// Re-export probe constants
const (
	DefaultTool     = probe.DefaultTool
	DefaultSysroot  = probe.DefaultSysroot
	DirectivePrefix = probe.DirectivePrefix
)

// NewConfig creates a set of configuration options which are all
// initially blank.
func NewConfig() *Config {
	return probe.NewConfig()
}

// Find is a shortcut for probing a library with all default options.
func Find(name string) (*Library, error) {
	return probe.NewConfig().Find(name)
}

// FindContext is Find with a caller-supplied context for the subprocess.
func FindContext(ctx context.Context, name string) (*Library, error) {
	return probe.NewConfig().FindContext(ctx, name)
}

// CrossCompileSupported reports whether discovery may run for the
// current HOST/TARGET pair.
func CrossCompileSupported() bool {
	return envpolicy.New().CrossCompileAllowed()
}
