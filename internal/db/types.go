package db

import (
	"time"

	"github.com/google/uuid"
)

// Interview lifecycle states. An interview is pending until its first
// answer arrives, then in progress until completion.
const (
	InterviewStatusPending    = "pending"
	InterviewStatusInProgress = "in_progress"
	InterviewStatusCompleted  = "completed"
)

// User represents an account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Interview represents one mock-interview session
type Interview struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	ResumeText  string     `json:"resume_text,omitempty"`
	Projects    []byte     `json:"-"` // JSONB payload of extracted projects
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Question is one stored interview question. The row ID is the
// addressable identifier; QuestionKey keeps the generator's deterministic
// string ID for traceability.
type Question struct {
	ID             uuid.UUID `json:"id"`
	InterviewID    uuid.UUID `json:"interview_id"`
	QuestionKey    string    `json:"question_key"`
	ProjectTitle   string    `json:"project_title"`
	QuestionText   string    `json:"question_text"`
	Category       string    `json:"category"`
	ExpectedPoints []byte    `json:"-"` // JSONB array of strings
	Position       int       `json:"position"`
}

// Answer stores one submitted answer with its analysis payload
type Answer struct {
	ID          uuid.UUID `json:"id"`
	InterviewID uuid.UUID `json:"interview_id"`
	QuestionID  uuid.UUID `json:"question_id"`
	AnswerText  string    `json:"answer_text"`
	Analysis    []byte    `json:"-"` // JSONB analysis payload
	CreatedAt   time.Time `json:"created_at"`
}

// Report stores the completion output for an interview
type Report struct {
	InterviewID uuid.UUID `json:"interview_id"`
	Metrics     []byte    `json:"-"`
	Skill       []byte    `json:"-"`
	Comparison  []byte    `json:"-"`
	Feedback    string    `json:"feedback"`
	CreatedAt   time.Time `json:"created_at"`
}
