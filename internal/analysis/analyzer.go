// Package analysis scores a single free-text interview answer.
//
// Scoring is deterministic lexical heuristics over the answer text,
// optionally blended with one remote sentiment classification. Sentiment
// failure never blocks scoring: the analyzer degrades to a neutral label
// and keeps going. Analyze never returns an error.
package analysis

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/inference"
	"github.com/jonathan/interview-coach/internal/types"
)

// Confidence defaults used when the sentiment gateway is skipped or fails.
const (
	emptyAnswerConfidence = 30
	neutralConfidence     = 50
)

// SentimentClassifier is the slice of the inference gateway the analyzer needs.
type SentimentClassifier interface {
	ClassifySentiment(ctx context.Context, text string) (inference.SentimentResult, error)
}

// Analyzer scores answers. Configuration is fixed at construction; Analyze
// is a pure function of its inputs plus at most one remote call.
type Analyzer struct {
	client  SentimentClassifier
	enabled bool
	logger  *zap.Logger
}

// New creates an Analyzer. Sentiment calls happen only when enabled is true
// and client is non-nil.
func New(client SentimentClassifier, enabled bool, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{client: client, enabled: enabled, logger: logger}
}

// Options carries caller-side context for one answer.
type Options struct {
	// ResponseTime is the measured seconds from question shown to answer
	// submitted. Zero means the caller could not measure it and a bounded
	// placeholder derived from answer length is used instead.
	ResponseTime float64
}

// Analyze produces the structured analysis for one answer. The project is
// accepted for interface parity with the session collaborator; scoring
// currently depends on the question category and answer text only.
func (a *Analyzer) Analyze(ctx context.Context, question types.InterviewQuestion, answer string, project types.Project, opts Options) types.AnswerAnalysis {
	_ = project
	clean := strings.TrimSpace(answer)

	if clean == "" {
		return a.build(clean, question, types.SentimentNeutral, emptyAnswerConfidence, opts)
	}

	sentiment, confidence := a.classify(ctx, clean)
	return a.build(clean, question, sentiment, confidence, opts)
}

// classify runs the optional remote sentiment call, degrading to neutral on
// any failure or when the gateway is disabled.
func (a *Analyzer) classify(ctx context.Context, text string) (types.Sentiment, int) {
	if !a.enabled || a.client == nil {
		return types.SentimentNeutral, neutralConfidence
	}

	result, err := a.client.ClassifySentiment(ctx, text)
	if err != nil {
		a.logger.Warn("sentiment classification failed, using neutral", zap.Error(err))
		return types.SentimentNeutral, neutralConfidence
	}

	label := strings.ToLower(result.Label)
	sentiment := types.SentimentNeutral
	switch {
	case strings.Contains(label, "pos"):
		sentiment = types.SentimentPositive
	case strings.Contains(label, "neg"):
		sentiment = types.SentimentNegative
	}

	score := result.Score
	if score <= 0 {
		score = 0.5
	}
	return sentiment, int(score*100 + 0.5)
}

// build assembles the analysis from the deterministic heuristics.
func (a *Analyzer) build(clean string, question types.InterviewQuestion, sentiment types.Sentiment, confidence int, opts Options) types.AnswerAnalysis {
	s := DeriveSignals(clean, question.Category)

	base := s.WordCount
	if base > 50 {
		base = 50
	}
	score := base
	if s.HasTechnicalTerms {
		score += 15
	}
	if s.HasExamples {
		score += 10
	}
	if s.HasMetrics {
		score += 10
	}
	score = clamp(score, 20, 95)

	strengths, weaknesses, suggestions := EvaluateFeedback(s)

	technicalAccuracy := 50
	if s.HasTechnicalTerms {
		technicalAccuracy = 75
	}
	communicationClarity := 45
	if s.WordCount > 30 {
		communicationClarity = 75
	}
	problemSolving := 60
	if s.HasExamples || s.HasMetrics {
		problemSolving = 80
	}
	codeQuality := 45
	if s.HasTechnicalTerms {
		codeQuality = 60
	}

	complexity := types.ComplexityBasic
	switch {
	case s.WordCount > 120:
		complexity = types.ComplexityAdvanced
	case s.WordCount > 50:
		complexity = types.ComplexityIntermediate
	}

	return types.AnswerAnalysis{
		Score:                  score,
		Strengths:              strengths,
		Weaknesses:             weaknesses,
		Suggestions:            suggestions,
		TechnicalAccuracy:      technicalAccuracy,
		CommunicationClarity:   communicationClarity,
		ProblemSolvingApproach: problemSolving,
		Sentiment:              sentiment,
		Confidence:             confidence,
		Keywords:               ExtractKeywords(clean),
		ResponseTime:           responseTime(opts, s.WordCount),
		Complexity:             complexity,
		IndustryRelevance:      technicalAccuracy,
		CodeQuality:            &codeQuality,
	}
}

// responseTime prefers the measured value; the placeholder grows with
// answer length and stays inside the 5-25s band.
func responseTime(opts Options, wordCount int) float64 {
	if opts.ResponseTime > 0 {
		return opts.ResponseTime
	}
	simulated := 5 + wordCount/10
	if simulated > 25 {
		simulated = 25
	}
	return float64(simulated)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
