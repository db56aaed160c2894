// Package pipeline provides the high-level orchestration for an interview
// session: resume text in, questions out, and at completion the aggregated
// report.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/analysis"
	"github.com/jonathan/interview-coach/internal/assessment"
	"github.com/jonathan/interview-coach/internal/extraction"
	"github.com/jonathan/interview-coach/internal/inference"
	"github.com/jonathan/interview-coach/internal/ingestion"
	"github.com/jonathan/interview-coach/internal/questions"
	"github.com/jonathan/interview-coach/internal/types"
)

// ProgressEvent represents a progress update during interview preparation.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called as preparation advances. Callbacks run on the
// calling goroutine; keep them fast.
type ProgressCallback func(event ProgressEvent)

// Step names emitted in progress events.
const (
	StepIngestion  = "ingestion"
	StepExtraction = "extraction"
	StepQuestions  = "questions"
)

// PrepareOptions configures one preparation run.
type PrepareOptions struct {
	OnProgress ProgressCallback
}

// PrepareResult is everything the caller needs to start the interview.
type PrepareResult struct {
	ResumeText string
	Projects   []types.Project
	Questions  []types.InterviewQuestion
}

// Pipeline wires the stages together. All collaborators are fixed at
// construction; a Pipeline is safe for concurrent use.
type Pipeline struct {
	client    inference.Client
	extractor *extraction.Extractor
	generator *questions.Generator
	analyzer  *analysis.Analyzer
	logger    *zap.Logger
}

// New builds a Pipeline around one inference client. A nil client disables
// the remote tiers; every stage then runs on its local fallback.
func New(client inference.Client, sentimentEnabled bool, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	var gen extraction.TextGenerator
	var cls analysis.SentimentClassifier
	if client != nil {
		gen = client
		cls = client
	}
	return &Pipeline{
		client:    client,
		extractor: extraction.New(gen, logger.Named("extraction")),
		generator: questions.New(client, logger.Named("questions")),
		analyzer:  analysis.New(cls, sentimentEnabled, logger.Named("analysis")),
		logger:    logger,
	}
}

// Prepare turns raw resume input into an ordered, deduplicated question set.
// HTML input is converted to text first. Extraction and generation degrade
// internally instead of erroring, so the only failure mode is unparseable
// HTML input.
func (p *Pipeline) Prepare(ctx context.Context, resume string, opts PrepareOptions) (*PrepareResult, error) {
	text := resume
	if ingestion.LooksLikeHTML(resume) {
		converted, err := ingestion.FromHTML(resume)
		if err != nil {
			return nil, fmt.Errorf("converting resume html: %w", err)
		}
		text = converted
	}
	text = ingestion.CleanText(text)
	emit(opts.OnProgress, StepIngestion, fmt.Sprintf("Cleaned resume text (%d chars)", len(text)), nil)

	projects := p.extractor.Extract(ctx, text)
	emit(opts.OnProgress, StepExtraction, fmt.Sprintf("Extracted %d projects", len(projects)), projects)

	qs := p.generator.GenerateGuaranteed(ctx, projects)
	emit(opts.OnProgress, StepQuestions, fmt.Sprintf("Generated %d questions", len(qs)), qs)

	p.logger.Info("interview prepared",
		zap.Int("projects", len(projects)),
		zap.Int("questions", len(qs)))

	return &PrepareResult{
		ResumeText: text,
		Projects:   projects,
		Questions:  qs,
	}, nil
}

// AnalyzeAnswer scores one submitted answer.
func (p *Pipeline) AnalyzeAnswer(ctx context.Context, question types.InterviewQuestion, answer string, project types.Project, responseTime float64) types.AnswerAnalysis {
	return p.analyzer.Analyze(ctx, question, answer, project, analysis.Options{ResponseTime: responseTime})
}

// Report is the completion output: aggregate metrics, skill estimate,
// comparison table, and the rendered feedback document.
type Report struct {
	Metrics    types.InterviewMetrics `json:"metrics"`
	Skill      types.SkillAssessment  `json:"skill_assessment"`
	Comparison []types.ComparisonData `json:"comparison"`
	Feedback   string                 `json:"feedback"`
	Analyses   []types.AnswerAnalysis `json:"analyses"`
}

// Complete folds the collected analyses into the final report. It never
// fails: empty inputs produce a neutral report.
func (p *Pipeline) Complete(analyses []types.AnswerAnalysis, projects []types.Project) *Report {
	metrics := assessment.AggregateMetrics(analyses)
	skill := assessment.AssessSkillLevel(projects)
	comparison := assessment.IndustryComparison(int(metrics.TechnicalDepth))
	feedback := assessment.ComposeFeedback(metrics, comparison, skill, projects)

	p.logger.Info("interview completed",
		zap.Int("answers", len(analyses)),
		zap.String("rating", string(metrics.OverallRating)),
		zap.String("level", string(skill.Level)))

	return &Report{
		Metrics:    metrics,
		Skill:      skill,
		Comparison: comparison,
		Feedback:   feedback,
		Analyses:   analyses,
	}
}

func emit(cb ProgressCallback, step, message string, content any) {
	if cb != nil {
		cb(ProgressEvent{Step: step, Message: message, Content: content})
	}
}
