package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thruflo/pipemaze/internal/config"
	"github.com/thruflo/pipemaze/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "pipemaze",
	Short: "Trace the pipe loop in a grid and count the tiles it encloses",
	Long: `pipemaze reads a grid of pipe symbols (| - L J 7 F), ground (.) and a
single start tile (S). It traces the closed loop through S, reports how
far along the loop the furthest tile is, and counts the tiles the loop
encloses.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pipemaze version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every solver stage")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory containing .pipemaze/config.yaml (default: current directory)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config for the current invocation and applies its
// log level. --verbose overrides the configured level.
func loadConfig() (*config.Config, error) {
	dir := configDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = cwd
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, err
	}

	level := cfg.Level()
	if verbose {
		level = logging.LevelDebug
	}
	logging.SetLevel(level)

	return cfg, nil
}

// commandContext returns cmd's context, or a background context when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
