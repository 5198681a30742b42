package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that accepts resume uploads on POST /analyze and returns the structured analysis as JSON.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfig)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
