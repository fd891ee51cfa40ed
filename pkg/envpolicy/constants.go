// pkg/envpolicy/constants.go
package envpolicy

const (
	// EnvHost identifies the platform the build is running on
	EnvHost = "HOST"

	// EnvTarget identifies the platform the build output is for
	EnvTarget = "TARGET"

	// EnvAllowCross permits discovery even when HOST and TARGET differ
	EnvAllowCross = "PKG_CONFIG_ALLOW_CROSS"

	// EnvAllStatic requests static linking for every probed library
	EnvAllStatic = "PKG_CONFIG_ALL_STATIC"

	// EnvAllDynamic requests dynamic linking for every probed library
	EnvAllDynamic = "PKG_CONFIG_ALL_DYNAMIC"
)

// Per-library variable suffixes, applied to the envified library name
// (e.g. "foo-bar" becomes FOO_BAR_STATIC).
const (
	SuffixDisable = "_NO_PKG_CONFIG"
	SuffixStatic  = "_STATIC"
	SuffixDynamic = "_DYNAMIC"
)
