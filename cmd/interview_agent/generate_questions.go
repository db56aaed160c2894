package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/pipeline"
)

var generateQuestionsCmd = &cobra.Command{
	Use:   "generate-questions",
	Short: "Generate interview questions from a resume file",
	Long:  "Run the full preparation pipeline on a resume file and print the generated question set as JSON.",
	RunE:  runGenerateQuestions,
}

var questionsResumeFile string

func init() {
	generateQuestionsCmd.Flags().StringVarP(&questionsResumeFile, "resume", "r", "", "Path to resume file (text or HTML)")
	generateQuestionsCmd.Flags().BoolVar(&offline, "offline", false, "Skip remote generation and use local templates")

	generateQuestionsCmd.MarkFlagRequired("resume") //nolint:errcheck // flag is registered above

	rootCmd.AddCommand(generateQuestionsCmd)
}

func runGenerateQuestions(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(questionsResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	p, err := buildPipeline(cmd.Context())
	if err != nil {
		return err
	}

	result, err := p.Prepare(cmd.Context(), string(data), pipeline.PrepareOptions{})
	if err != nil {
		return fmt.Errorf("question generation failed: %w", err)
	}

	out, err := json.MarshalIndent(result.Questions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal questions: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
