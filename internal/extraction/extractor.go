// Package extraction turns raw resume text into structured project records.
//
// Extraction is a chain of strategies tried in order: model-assisted,
// structural (regex over section headings), and an emergency paragraph
// heuristic. The first strategy yielding at least one valid project wins;
// strategy failures are logged and never surfaced. An empty result is a
// legal outcome the question generator must handle.
package extraction

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/types"
)

// MinResumeLength is the shortest resume text worth extracting from.
// Anything shorter cannot describe a project.
const MinResumeLength = 50

// Strategy is one extraction tier. Extract returns the projects it found;
// an error or an empty slice both advance the chain to the next tier.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, resumeText string) ([]types.Project, error)
}

// Extractor runs the ordered strategy chain.
type Extractor struct {
	strategies []Strategy
	logger     *zap.Logger
}

// New builds the default chain. A nil client omits the model tier, leaving
// the two deterministic tiers.
func New(client TextGenerator, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}

	var strategies []Strategy
	if client != nil {
		strategies = append(strategies, &ModelStrategy{Client: client})
	}
	strategies = append(strategies, &StructuralStrategy{}, &EmergencyStrategy{})

	return &Extractor{strategies: strategies, logger: logger}
}

// NewWithStrategies builds an extractor with an explicit chain. Used by
// tests to exercise the orchestration separately from the tiers.
func NewWithStrategies(logger *zap.Logger, strategies ...Strategy) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{strategies: strategies, logger: logger}
}

// Extract returns 0-5 validated projects for the resume text. Deterministic
// given the same input and the same tier outcome; never returns an error.
func (e *Extractor) Extract(ctx context.Context, resumeText string) []types.Project {
	if len([]rune(resumeText)) < MinResumeLength {
		return nil
	}

	for _, strategy := range e.strategies {
		projects, err := strategy.Extract(ctx, resumeText)
		if err != nil {
			e.logger.Warn("extraction tier failed",
				zap.String("tier", strategy.Name()),
				zap.Error(err),
			)
			continue
		}
		if len(projects) > 0 {
			e.logger.Info("extraction tier succeeded",
				zap.String("tier", strategy.Name()),
				zap.Int("projects", len(projects)),
			)
			return projects
		}
	}

	e.logger.Info("no projects extracted")
	return nil
}

// validProjects filters candidates through the structural invariants and
// caps the result.
func validProjects(candidates []types.Project, limit int) []types.Project {
	var out []types.Project
	for _, candidate := range candidates {
		if !candidate.Validate() {
			continue
		}
		out = append(out, candidate)
		if len(out) == limit {
			break
		}
	}
	return out
}
