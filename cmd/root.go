package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JoshuaShepherd/rethink-content/internal/config"
	"github.com/JoshuaShepherd/rethink-content/internal/logger"
	"github.com/JoshuaShepherd/rethink-content/internal/version"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "rethinkctl",
	Short: "Content pipeline for the Rethink ebook site",
	Long: `rethinkctl turns a source ebook into slugged content units and keeps
the site's aggregated content index up to date.

The pipeline runs in two stages: convert splits the extracted document
into principle sections and materializes them under the content root,
and build aggregates the materialized units into the lookup table the
site consumes.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("rethinkctl %s\n", version.String()))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose diagnostics")
}

// loadConfig reads the configured (or default) config file.
func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
