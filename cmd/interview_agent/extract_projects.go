package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/inference"
	"github.com/jonathan/interview-coach/internal/logger"
	"github.com/jonathan/interview-coach/internal/pipeline"
)

var extractProjectsCmd = &cobra.Command{
	Use:   "extract-projects",
	Short: "Extract projects from a resume file",
	Long:  "Run ingestion and the three-tier project extractor on a resume text or HTML file and print the projects as JSON.",
	RunE:  runExtractProjects,
}

var (
	resumeFile string
	offline    bool
)

func init() {
	extractProjectsCmd.Flags().StringVarP(&resumeFile, "resume", "r", "", "Path to resume file (text or HTML)")
	extractProjectsCmd.Flags().BoolVar(&offline, "offline", false, "Skip the model-assisted tier")

	extractProjectsCmd.MarkFlagRequired("resume") //nolint:errcheck // flag is registered above

	rootCmd.AddCommand(extractProjectsCmd)
}

func runExtractProjects(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(resumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	p, err := buildPipeline(cmd.Context())
	if err != nil {
		return err
	}

	result, err := p.Prepare(cmd.Context(), string(data), pipeline.PrepareOptions{})
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	out, err := json.MarshalIndent(result.Projects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// buildPipeline wires an inference client and pipeline from config, without
// remote access when --offline is set or no API key is configured.
func buildPipeline(ctx context.Context) (*pipeline.Pipeline, error) {
	cfg := *config.FromEnv()
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	var client inference.Client
	if !offline && (cfg.HFAPIKey != "" || cfg.GeminiAPIKey != "") {
		client, err = inference.NewClient(ctx, &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create inference client: %w", err)
		}
	}

	return pipeline.New(client, cfg.SentimentEnabled, log), nil
}
