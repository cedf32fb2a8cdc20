// Package main provides the entry point for the Jobpost Studio gateway and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobpost_agent",
	Short: "Jobpost Studio gateway and CLI",
	Long:  "Jobpost Studio collects job-posting inputs, sends them to the remote generation service, and normalizes the heterogeneous payloads it answers with into one canonical job post.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
