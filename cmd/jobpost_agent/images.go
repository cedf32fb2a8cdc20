package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/jobpost-studio/internal/generator"
	"github.com/jonathan/jobpost-studio/internal/images"
	"github.com/spf13/cobra"
)

var imagesCommand = &cobra.Command{
	Use:   "images",
	Short: "Generate job-post images from a template",
	Long: `Uploads a template image plus a keyword to the generation service and
saves the returned artifacts as PNG files in the output directory.`,
	RunE: runImagesCmd,
}

var (
	imagesConfigPath string
	imagesTemplate   string
	imagesKeyword    string
	imagesOutputDir  string
)

func init() {
	imagesCommand.Flags().StringVar(&imagesConfigPath, "config", "", "Path to config.json file")
	imagesCommand.Flags().StringVarP(&imagesTemplate, "template", "t", "", "Path to the template image (required)")
	imagesCommand.Flags().StringVarP(&imagesKeyword, "keyword", "k", "", "Image keyword (required)")
	imagesCommand.Flags().StringVarP(&imagesOutputDir, "output", "o", "", "Output directory for the generated files")

	_ = imagesCommand.MarkFlagRequired("template")
	_ = imagesCommand.MarkFlagRequired("keyword")

	rootCmd.AddCommand(imagesCommand)
}

func runImagesCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(imagesConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = imagesOutputDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	template, err := os.Open(imagesTemplate)
	if err != nil {
		return fmt.Errorf("failed to open template: %w", err)
	}
	defer func() { _ = template.Close() }()

	client := generator.NewClient(cfg.ServiceURL, &generator.Options{Timeout: cfg.Timeout()})

	ctx := context.Background()
	artifacts, err := client.GenerateImage(ctx, template, filepath.Base(imagesTemplate), imagesKeyword)
	if err != nil {
		return fmt.Errorf("%s", generator.DisplayMessage(err))
	}

	paths, err := images.SaveAll(ctx, artifacts, cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to save images: %w", err)
	}

	for _, path := range paths {
		fmt.Println(path)
	}
	return nil
}
