package main

import (
	"fmt"

	"github.com/jonathan/jobpost-studio/internal/config"
	"github.com/jonathan/jobpost-studio/internal/server"
	"github.com/spf13/cobra"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP gateway server",
	Long: `Starts the gateway that bridges the browser UI and the remote generation service.

Configuration can be loaded from a JSON file using --config. Command-line arguments and environment variables override config file values.`,
	RunE: runServeCmd,
}

var (
	serveConfigPath string
	servePort       int
	serveServiceURL string
	serveTimeout    int
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (defaults to GATEWAY_PORT env var or 8080)")
	serveCommand.Flags().StringVar(&serveServiceURL, "service-url", "", "Base URL of the generation service (defaults to GENERATION_SERVICE_URL env var)")
	serveCommand.Flags().IntVar(&serveTimeout, "timeout", 0, "Generation call timeout in seconds")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("service-url") {
		cfg.ServiceURL = serveServiceURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = serveTimeout
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:       cfg.Port,
		ServiceURL: cfg.ServiceURL,
		Timeout:    cfg.Timeout(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveConfig layers defaults, environment overrides and an optional config
// file. CLI flags are applied by the caller afterwards so they always win.
func resolveConfig(configPath string) (config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*loaded)
	}

	return cfg.MergeWithDefaults(config.DefaultConfig()), nil
}
