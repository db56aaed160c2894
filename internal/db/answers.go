package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/interview-coach/internal/types"
)

// SaveAnswer stores a submitted answer with its analysis. Re-answering a
// question overwrites the previous answer.
func (db *DB) SaveAnswer(ctx context.Context, interviewID, questionID uuid.UUID, answerText string, analysis types.AnswerAnalysis) (uuid.UUID, error) {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO answers (interview_id, question_id, answer_text, analysis)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (interview_id, question_id)
		 DO UPDATE SET answer_text = $3, analysis = $4, created_at = NOW()
		 RETURNING id`,
		interviewID, questionID, answerText, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save answer: %w", err)
	}
	return id, nil
}

// ListAnswers retrieves an interview's answers in question order
func (db *DB) ListAnswers(ctx context.Context, interviewID uuid.UUID) ([]Answer, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT a.id, a.interview_id, a.question_id, a.answer_text, a.analysis, a.created_at
		 FROM answers a
		 JOIN questions q ON q.id = a.question_id
		 WHERE a.interview_id = $1
		 ORDER BY q.position ASC`,
		interviewID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	defer rows.Close()

	var answers []Answer
	for rows.Next() {
		var a Answer
		if err := rows.Scan(&a.ID, &a.InterviewID, &a.QuestionID, &a.AnswerText, &a.Analysis, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, nil
}

// ListAnalyses decodes the stored analyses for an interview in question order
func (db *DB) ListAnalyses(ctx context.Context, interviewID uuid.UUID) ([]types.AnswerAnalysis, error) {
	answers, err := db.ListAnswers(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	analyses := make([]types.AnswerAnalysis, 0, len(answers))
	for _, a := range answers {
		var analysis types.AnswerAnalysis
		if err := json.Unmarshal(a.Analysis, &analysis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis for answer %s: %w", a.ID, err)
		}
		analyses = append(analyses, analysis)
	}
	return analyses, nil
}

// SaveReport stores the completion report, replacing any previous one
func (db *DB) SaveReport(ctx context.Context, interviewID uuid.UUID, metrics types.InterviewMetrics, skill types.SkillAssessment, comparison []types.ComparisonData, feedback string) error {
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}
	skillJSON, err := json.Marshal(skill)
	if err != nil {
		return fmt.Errorf("failed to marshal skill assessment: %w", err)
	}
	comparisonJSON, err := json.Marshal(comparison)
	if err != nil {
		return fmt.Errorf("failed to marshal comparison: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO reports (interview_id, metrics, skill, comparison, feedback)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (interview_id)
		 DO UPDATE SET metrics = $2, skill = $3, comparison = $4, feedback = $5, created_at = NOW()`,
		interviewID, metricsJSON, skillJSON, comparisonJSON, feedback,
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetReport retrieves the completion report. Returns nil when not found.
func (db *DB) GetReport(ctx context.Context, interviewID uuid.UUID) (*Report, error) {
	var r Report
	err := db.pool.QueryRow(ctx,
		`SELECT interview_id, metrics, skill, comparison, feedback, created_at
		 FROM reports WHERE interview_id = $1`,
		interviewID,
	).Scan(&r.InterviewID, &r.Metrics, &r.Skill, &r.Comparison, &r.Feedback, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &r, nil
}
