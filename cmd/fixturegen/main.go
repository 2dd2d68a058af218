// fixturegen generates JSON scene fixtures for the rigid body solver.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hexforge/rigidkit/internal/config"
	"github.com/hexforge/rigidkit/internal/logger"
)

var (
	flagConfig      string
	flagFixturesDir string
	flagLogLevel    string
	flagLogFile     string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fixturegen",
	Short: "Generate JSON scene fixtures for the rigid body solver",
	Long: `fixturegen builds initial-scene fixtures consumed by the solver.

Each subcommand constructs one scene family and writes a single JSON
document. Without an explicit output path the fixture lands under the
configured fixtures directory.

Examples:
  fixturegen chainmail 10
  fixturegen pyramid --cor 0.5 --rows 5
  fixturegen chain-net --rows 8 --cols 8 --out nets/chain-net.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg.Apply(config.Overrides{
			FixturesDir: flagFixturesDir,
			LogLevel:    flagLogLevel,
			LogFile:     flagLogFile,
		})
		return logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagFixturesDir, "fixtures-dir", "", "root directory for default fixture paths")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "log to this file in addition to the console")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger.Log != nil {
			logger.Error("fixture generation failed", zap.Error(err))
			logger.Sync()
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	logger.Sync()
}
