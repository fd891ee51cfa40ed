// pkg/probe/types.go
package probe

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkgprobe/pkgprobe/pkg/envpolicy"
)

// Library is the aggregated result of one successful resolution. All
// slices preserve the tool's output order; Libs may contain duplicates
// if the tool repeats them. The value is populated during a single
// parse pass and not mutated after it is returned.
type Library struct {
	Libs           []string // library link names
	LinkPaths      []string // native library search directories
	Frameworks     []string // framework names (platform-specific linkage)
	FrameworkPaths []string // framework search directories
	IncludePaths   []string // header search directories
}

// Config configures how the discovery tool is invoked, builder style.
// Each setter returns the receiver for chaining; Find and FindContext
// are the terminal operations. A Config is meant to be created fresh
// per resolution and not shared.
type Config struct {
	statik     *bool
	minVersion string
	tool       string

	lookup  envpolicy.LookupFunc
	policy  *envpolicy.Policy
	sysroot *Sysroot
	out     io.Writer
	logger  *log.Logger
}

// NewConfig creates a Config with every option left blank: link mode
// inferred from the environment, no version requirement, directives on
// stdout, trusted root at DefaultSysroot.
func NewConfig() *Config {
	return &Config{
		lookup:  os.LookupEnv,
		policy:  envpolicy.New(),
		sysroot: NewSysroot(DefaultSysroot),
		out:     os.Stdout,
		logger:  log.New(io.Discard),
	}
}

// Static indicates whether the --static flag should be passed,
// overriding the inference from environment variables.
func (c *Config) Static(statik bool) *Config {
	c.statik = &statik
	return c
}

// AtLeastVersion requires the library to be at least the given version.
// The string is passed to the tool verbatim; no validation happens at
// this layer.
func (c *Config) AtLeastVersion(version string) *Config {
	c.minVersion = version
	return c
}

// WithEnv replaces the environment source for policy decisions and the
// PKG_CONFIG command override. The spawned tool still inherits the real
// process environment.
func (c *Config) WithEnv(lookup envpolicy.LookupFunc) *Config {
	c.lookup = lookup
	c.policy = envpolicy.NewWithLookup(lookup)
	return c
}

// WithTool sets the discovery command explicitly, taking precedence
// over the PKG_CONFIG variable. The value may carry leading arguments.
func (c *Config) WithTool(command string) *Config {
	c.tool = command
	return c
}

// WithSysroot replaces the trusted system root prefix.
func (c *Config) WithSysroot(root string) *Config {
	c.sysroot = NewSysroot(root)
	return c
}

// WithOutput redirects build directives away from stdout.
func (c *Config) WithOutput(w io.Writer) *Config {
	c.out = w
	return c
}

// WithLogger attaches a logger for debug tracing. Directives never go
// through the logger.
func (c *Config) WithLogger(logger *log.Logger) *Config {
	if logger != nil {
		c.logger = logger
	}
	return c
}
