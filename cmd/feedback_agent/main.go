// Package main provides the feedback_agent CLI: parse generator responses into JSON records,
// map offsets between plain and rich text, and serve the same operations over HTTP.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/XenFolio/cv-ai/internal/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	// cfg is the merged configuration, set by the root PersistentPreRunE
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:           "feedback_agent",
	Short:         "CV and cover-letter feedback parser",
	Long:          "feedback_agent turns generator responses about CVs and cover letters into structured scores, keyword lists, improvement suggestions and grammar corrections.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging and human-readable summaries")
}

// setup loads the optional config file and configures logging.
func setup() error {
	defaults := config.Config{ModelTier: "standard", Port: config.DefaultPort}

	loaded := config.Config{}
	if configPath != "" {
		c, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}
		loaded = *c
	}
	cfg = loaded.MergeWithDefaults(defaults)

	if verbose || cfg.Verbose {
		verbose = true
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
