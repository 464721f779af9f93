package main

import (
	"context"
	"os"

	"ehr-vaccine-service/cmd/bootstrap"
	"ehr-vaccine-service/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ehr-vaccine",
		Short: "EHR vaccine dose schedule service",
		// Running the binary with no subcommand starts the API server.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate the schema and load validated reference data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := bootstrap.Seed(context.Background(), cfg); err != nil {
				logrus.Errorf("Seed failed: %v", err)
				return err
			}
			return nil
		},
	}
}

func runServer() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize application with all dependencies
	app, err := bootstrap.New(cfg)
	if err != nil {
		logrus.Errorf("Failed to initialize application: %v", err)
		return err
	}

	return app.Run()
}
