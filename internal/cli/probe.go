// internal/cli/probe.go
package cli

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
)

var (
	probeStatic    bool
	probeDynamic   bool
	atleastVersion string
)

var probeCmd = &cobra.Command{
	Use:   "probe [library]",
	Short: "Resolve a library's link and include flags",
	Long: `Run pkg-config for a library, print build directives on stdout and
a human-readable summary on stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().BoolVar(&probeStatic, "static", false, "force static linking")
	probeCmd.Flags().BoolVar(&probeDynamic, "dynamic", false, "force dynamic linking")
	probeCmd.Flags().StringVar(&atleastVersion, "atleast-version", "", "minimum required library version")
}

func runProbe(cmd *cobra.Command, args []string) error {
	name := args[0]

	if probeStatic && probeDynamic {
		return fmt.Errorf("--static and --dynamic are mutually exclusive")
	}

	cfg := newProbeConfig()
	if probeStatic {
		cfg.Static(true)
	}
	if probeDynamic {
		cfg.Static(false)
	}
	if atleastVersion != "" {
		// Sanity check only; the string goes to pkg-config verbatim
		// either way, since pkg-config versions are not all semver.
		if _, err := semver.NewVersion(atleastVersion); err != nil {
			logger.Warn("version does not parse as semver, passing through verbatim",
				"version", atleastVersion)
		}
		cfg.AtLeastVersion(atleastVersion)
	}

	lib, err := cfg.FindContext(cmd.Context(), name)
	if err != nil {
		return err
	}

	// Summary on stderr; stdout stays machine-readable.
	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "Library: %s\n", name)
	if len(lib.Libs) > 0 {
		fmt.Fprintf(out, "Libs: %s\n", strings.Join(lib.Libs, " "))
	}
	if len(lib.LinkPaths) > 0 {
		fmt.Fprintf(out, "Link paths: %s\n", strings.Join(lib.LinkPaths, " "))
	}
	if len(lib.IncludePaths) > 0 {
		fmt.Fprintf(out, "Include paths: %s\n", strings.Join(lib.IncludePaths, " "))
	}
	if len(lib.Frameworks) > 0 {
		fmt.Fprintf(out, "Frameworks: %s\n", strings.Join(lib.Frameworks, " "))
	}
	if len(lib.FrameworkPaths) > 0 {
		fmt.Fprintf(out, "Framework paths: %s\n", strings.Join(lib.FrameworkPaths, " "))
	}

	return nil
}
