package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/jobpost-studio/internal/normalize"
	"github.com/jonathan/jobpost-studio/internal/observability"
	"github.com/jonathan/jobpost-studio/internal/types"
	"github.com/spf13/cobra"
)

var normalizeCommand = &cobra.Command{
	Use:   "normalize <payload.json>",
	Short: "Normalize a raw creation payload into a canonical job post",
	Long: `Reads a raw generation-service payload from a JSON file and prints the
canonical job post it normalizes to. Useful for inspecting how a saved
payload resolves without calling the service.`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalizeCmd,
}

var normalizeJSONOutput bool

func init() {
	normalizeCommand.Flags().BoolVar(&normalizeJSONOutput, "json", false, "Print the canonical job as JSON instead of a summary")

	rootCmd.AddCommand(normalizeCommand)
}

func runNormalizeCmd(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read payload file: %w", err)
	}

	var raw types.CreateJobResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse payload JSON: %w", err)
	}

	job := normalize.Job(&raw)

	if normalizeJSONOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(job)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJob(job)
	printer.PrintVoice(job)
	return nil
}
