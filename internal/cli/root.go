// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pkgprobe/pkgprobe/pkg/core"
	"github.com/pkgprobe/pkgprobe/pkg/probe"
)

var (
	cfgFile string
	debug   bool
	config  *core.Config
	logger  *log.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pkgprobe",
	Short: "System library discovery for build scripts",
	Long: `pkgprobe - System library discovery for build scripts

Resolves installed libraries through pkg-config and translates the
answer into build directives on stdout plus link/include metadata.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pkgprobe/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(existsCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "pkgprobe",
	})

	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}
	if config.Debug {
		logger.SetLevel(log.DebugLevel)
	}
}

// newProbeConfig builds a library Config from the CLI configuration.
func newProbeConfig() *probe.Config {
	cfg := probe.NewConfig().WithLogger(logger)
	if config.Tool != "" {
		cfg.WithTool(config.Tool)
	}
	if config.Sysroot != "" {
		cfg.WithSysroot(config.Sysroot)
	}
	return cfg
}
