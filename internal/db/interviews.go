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

// CreateInterview inserts a new interview session and returns its ID
func (db *DB) CreateInterview(ctx context.Context, userID uuid.UUID, resumeText string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO interviews (user_id, resume_text, status)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, resumeText, InterviewStatusPending,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return id, nil
}

// GetInterview retrieves an interview by ID. Returns nil when not found.
func (db *DB) GetInterview(ctx context.Context, interviewID uuid.UUID) (*Interview, error) {
	var iv Interview
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, resume_text, COALESCE(projects, 'null'::jsonb), status, created_at, completed_at
		 FROM interviews WHERE id = $1`,
		interviewID,
	).Scan(&iv.ID, &iv.UserID, &iv.ResumeText, &iv.Projects, &iv.Status, &iv.CreatedAt, &iv.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return &iv, nil
}

// ListInterviews retrieves a user's interviews, most recent first
func (db *DB) ListInterviews(ctx context.Context, userID uuid.UUID, limit int) ([]Interview, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, '', COALESCE(projects, 'null'::jsonb), status, created_at, completed_at
		 FROM interviews WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	var interviews []Interview
	for rows.Next() {
		var iv Interview
		if err := rows.Scan(&iv.ID, &iv.UserID, &iv.ResumeText, &iv.Projects, &iv.Status, &iv.CreatedAt, &iv.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, iv)
	}
	return interviews, nil
}

// SaveProjects stores the extracted projects for an interview
func (db *DB) SaveProjects(ctx context.Context, interviewID uuid.UUID, projects []types.Project) error {
	payload, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`UPDATE interviews SET projects = $1 WHERE id = $2`,
		payload, interviewID,
	)
	if err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}
	return nil
}

// MarkInterviewInProgress advances a pending interview to in progress.
// Idempotent; completed interviews are left untouched.
func (db *DB) MarkInterviewInProgress(ctx context.Context, interviewID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE interviews SET status = $1 WHERE id = $2 AND status = $3`,
		InterviewStatusInProgress, interviewID, InterviewStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to mark interview in progress: %w", err)
	}
	return nil
}

// GetProjects decodes the stored project set for an interview
func (db *DB) GetProjects(ctx context.Context, interviewID uuid.UUID) ([]types.Project, error) {
	iv, err := db.GetInterview(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if iv == nil || len(iv.Projects) == 0 {
		return nil, nil
	}
	var projects []types.Project
	if err := json.Unmarshal(iv.Projects, &projects); err != nil {
		return nil, fmt.Errorf("failed to unmarshal projects: %w", err)
	}
	return projects, nil
}

// CompleteInterview marks the interview as completed
func (db *DB) CompleteInterview(ctx context.Context, interviewID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE interviews SET status = $1, completed_at = NOW() WHERE id = $2`,
		InterviewStatusCompleted, interviewID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete interview: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview not found: %s", interviewID)
	}
	return nil
}

// SaveQuestions stores the generated question set in order. Existing
// questions for the interview are replaced.
func (db *DB) SaveQuestions(ctx context.Context, interviewID uuid.UUID, qs []types.InterviewQuestion) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, `DELETE FROM questions WHERE interview_id = $1`, interviewID); err != nil {
		return fmt.Errorf("failed to clear questions: %w", err)
	}

	for i, q := range qs {
		points, err := json.Marshal(q.ExpectedPoints)
		if err != nil {
			return fmt.Errorf("failed to marshal expected points: %w", err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO questions (interview_id, question_key, project_title, question_text, category, expected_points, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			interviewID, q.ID, q.ProjectTitle, q.QuestionText, string(q.Category), points, i,
		)
		if err != nil {
			return fmt.Errorf("failed to save question %s: %w", q.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit questions: %w", err)
	}
	return nil
}

// GetQuestion retrieves one stored question by its row ID. Returns nil when
// not found.
func (db *DB) GetQuestion(ctx context.Context, questionID uuid.UUID) (*Question, error) {
	var q Question
	err := db.pool.QueryRow(ctx,
		`SELECT id, interview_id, question_key, project_title, question_text, category, expected_points, position
		 FROM questions WHERE id = $1`,
		questionID,
	).Scan(&q.ID, &q.InterviewID, &q.QuestionKey, &q.ProjectTitle, &q.QuestionText, &q.Category, &q.ExpectedPoints, &q.Position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &q, nil
}

// ListQuestions retrieves an interview's questions in generation order
func (db *DB) ListQuestions(ctx context.Context, interviewID uuid.UUID) ([]Question, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, interview_id, question_key, project_title, question_text, category, expected_points, position
		 FROM questions WHERE interview_id = $1 ORDER BY position ASC`,
		interviewID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.InterviewID, &q.QuestionKey, &q.ProjectTitle, &q.QuestionText, &q.Category, &q.ExpectedPoints, &q.Position); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// InterviewQuestion converts a stored question back to the domain shape
func (q *Question) InterviewQuestion() (types.InterviewQuestion, error) {
	var points []string
	if len(q.ExpectedPoints) > 0 {
		if err := json.Unmarshal(q.ExpectedPoints, &points); err != nil {
			return types.InterviewQuestion{}, fmt.Errorf("failed to unmarshal expected points: %w", err)
		}
	}
	return types.InterviewQuestion{
		ID:             q.QuestionKey,
		ProjectTitle:   q.ProjectTitle,
		QuestionText:   q.QuestionText,
		Category:       types.QuestionCategory(q.Category),
		ExpectedPoints: points,
	}, nil
}
