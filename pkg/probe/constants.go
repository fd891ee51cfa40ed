// pkg/probe/constants.go
package probe

const (
	// DefaultTool is the discovery command consulted when neither the
	// Config nor the PKG_CONFIG variable names another one.
	DefaultTool = "pkg-config"

	// EnvTool overrides the discovery command. The value may carry
	// leading arguments and is split with shell quoting rules.
	EnvTool = "PKG_CONFIG"

	// EnvAllowSystemLibs is injected into the tool's environment so
	// libraries living in default system directories are still reported.
	EnvAllowSystemLibs = "PKG_CONFIG_ALLOW_SYSTEM_LIBS"

	// DefaultSysroot is the trusted system root. Libraries found only
	// under it are always linked dynamically.
	DefaultSysroot = "/usr"
)

// DirectivePrefix starts every build directive line written to the
// output writer.
const DirectivePrefix = "pkgprobe:"
