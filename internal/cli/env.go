// internal/cli/env.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgprobe/pkgprobe/pkg/envpolicy"
)

var envCmd = &cobra.Command{
	Use:   "env [library]",
	Short: "Show the effective discovery environment",
	Long: `Display the discovery command, trusted sysroot, and the environment
policy verdicts. With a library argument, also show the per-library
opt-out and link-mode inference.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEnv,
}

func runEnv(cmd *cobra.Command, args []string) error {
	cfg := newProbeConfig()
	policy := envpolicy.New()

	tool, err := cfg.LookupTool()
	if err != nil {
		tool = fmt.Sprintf("not found (%v)", err)
	}

	fmt.Printf("Tool: %s\n", tool)
	fmt.Printf("Sysroot: %s\n", config.Sysroot)
	fmt.Printf("Cross-compile allowed: %t\n", policy.CrossCompileAllowed())

	if len(args) == 1 {
		name := args[0]
		fmt.Printf("Library: %s\n", name)
		fmt.Printf("Env stem: %s\n", envpolicy.Envify(name))
		fmt.Printf("Discovery disabled: %t\n", policy.Disabled(name))
		mode := "dynamic"
		if policy.InferStatic(name) {
			mode = "static"
		}
		fmt.Printf("Inferred link mode: %s\n", mode)
	}

	return nil
}
