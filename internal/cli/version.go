// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pkgprobe version 0.1.0")
		fmt.Println("System library discovery for build scripts")
		fmt.Println("https://github.com/pkgprobe/pkgprobe")
	},
}
