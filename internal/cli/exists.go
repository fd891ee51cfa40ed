// internal/cli/exists.go
package cli

import (
	"io"

	"github.com/spf13/cobra"
)

var existsVersion string

var existsCmd = &cobra.Command{
	Use:   "exists [library]",
	Short: "Check whether a library can be resolved",
	Long: `Run pkg-config for a library and report the answer through the exit
status only. No directives are printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runExists,
}

func init() {
	existsCmd.Flags().StringVar(&existsVersion, "atleast-version", "", "minimum required library version")
}

func runExists(cmd *cobra.Command, args []string) error {
	cfg := newProbeConfig().WithOutput(io.Discard)
	if existsVersion != "" {
		cfg.AtLeastVersion(existsVersion)
	}

	if _, err := cfg.FindContext(cmd.Context(), args[0]); err != nil {
		logger.Debug("probe failed", "library", args[0], "err", err)
		return err
	}
	return nil
}
