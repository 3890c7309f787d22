package main

import (
	"context"
	"os"
	"time"

	"github.com/XenFolio/cv-ai/internal/feedback"
	"github.com/XenFolio/cv-ai/internal/llm"
	"github.com/XenFolio/cv-ai/internal/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the parsers and the position mapper as JSON endpoints.
When GEMINI_API_KEY is set, the /v1/generate endpoints are enabled as well.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, else 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := cfg.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	var svc *feedback.Service
	if apiKey := firstNonEmpty(cfg.APIKey, os.Getenv("GEMINI_API_KEY")); apiKey != "" {
		client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), apiKey)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		svc = feedback.NewService(client, llm.ParseModelTier(cfg.ModelTier))
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, generate endpoints disabled")
	}

	srv := server.New(server.Config{
		Port:           port,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		Timeout:        time.Duration(cfg.TimeoutSeconds) * time.Second,
		ValidateOutput: cfg.ValidateOutput,
	}, svc)

	return srv.Start()
}
