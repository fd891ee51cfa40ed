// pkg/probe/tool.go
package probe

import (
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// toolCommand resolves the discovery command: explicit Config override
// first, then the PKG_CONFIG variable, then the default. Overrides are
// split with shell quoting rules so they may carry leading arguments
// (e.g. PKG_CONFIG="pkg-config --personality=cross").
func (c *Config) toolCommand() (string, []string) {
	if c.tool != "" {
		return splitCommand(c.tool)
	}
	if v, ok := c.lookup(EnvTool); ok && strings.TrimSpace(v) != "" {
		return splitCommand(v)
	}
	return DefaultTool, nil
}

func splitCommand(raw string) (string, []string) {
	parts, err := shellquote.Split(raw)
	if err != nil {
		// Bad quoting; fall back to a whitespace split.
		parts = strings.Fields(raw)
	}
	if len(parts) == 0 {
		return DefaultTool, nil
	}
	return parts[0], parts[1:]
}

// LookupTool reports the absolute path the discovery command resolves
// to on PATH. Used for diagnostics only; Find does its own spawning.
func (c *Config) LookupTool() (string, error) {
	name, _ := c.toolCommand()
	return exec.LookPath(name)
}
