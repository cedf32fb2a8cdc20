package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/jobpost-studio/internal/generator"
	"github.com/jonathan/jobpost-studio/internal/normalize"
	"github.com/jonathan/jobpost-studio/internal/observability"
	"github.com/jonathan/jobpost-studio/internal/types"
	"github.com/spf13/cobra"
)

var createCommand = &cobra.Command{
	Use:   "create",
	Short: "Create a job post via the generation service",
	Long: `Submits the job-posting inputs to the generation service, normalizes the
payload it answers with, and prints the canonical job post.`,
	RunE: runCreateCmd,
}

var (
	createConfigPath  string
	createCompanyName string
	createJobTitle    string
	createLanguage    string
	createLocation    string
	createTasks       string
	createBenefits    string
	createContact     string
	createWebsite     string
	createClosingDate string
	createJSONOutput  bool
)

func init() {
	createCommand.Flags().StringVar(&createConfigPath, "config", "", "Path to config.json file")
	createCommand.Flags().StringVarP(&createCompanyName, "company", "c", "", "Company name (required)")
	createCommand.Flags().StringVarP(&createJobTitle, "title", "t", "", "Job title (required)")
	createCommand.Flags().StringVarP(&createLanguage, "language", "l", "", "Output language")
	createCommand.Flags().StringVar(&createLocation, "location", "", "Job location")
	createCommand.Flags().StringVar(&createTasks, "tasks", "", "Task list, free text")
	createCommand.Flags().StringVar(&createBenefits, "benefits", "", "Benefit list, free text")
	createCommand.Flags().StringVar(&createContact, "contact", "", "Contact details, free text")
	createCommand.Flags().StringVar(&createWebsite, "website", "", "Company website")
	createCommand.Flags().StringVar(&createClosingDate, "closing-date", "", "Application closing date")
	createCommand.Flags().BoolVar(&createJSONOutput, "json", false, "Print the canonical job as JSON instead of a summary")

	_ = createCommand.MarkFlagRequired("company")
	_ = createCommand.MarkFlagRequired("title")

	rootCmd.AddCommand(createCommand)
}

func runCreateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(createConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	form := &types.CreateJobForm{
		CompanyName: createCompanyName,
		JobTitle:    createJobTitle,
		Language:    createLanguage,
		Location:    createLocation,
		Tasks:       createTasks,
		Benefits:    createBenefits,
		Contact:     createContact,
		Website:     createWebsite,
		ClosingDate: createClosingDate,
	}
	if err := form.Validate(); err != nil {
		return fmt.Errorf("company and title are required: %w", err)
	}

	client := generator.NewClient(cfg.ServiceURL, &generator.Options{Timeout: cfg.Timeout()})

	raw, err := client.CreateJobPost(context.Background(), form)
	if err != nil {
		return fmt.Errorf("%s", generator.DisplayMessage(err))
	}

	job := normalize.Job(raw)

	if createJSONOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(job)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJob(job)
	printer.PrintVoice(job)
	return nil
}
