package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/pipeline"
	"github.com/jonathan/interview-coach/internal/server/middleware"
	"github.com/jonathan/interview-coach/internal/types"
)

// CreateInterviewRequest starts a new interview session from resume text.
type CreateInterviewRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=50"`
}

// InterviewResponse is the API shape of one interview session. Report is
// present only for completed interviews.
type InterviewResponse struct {
	ID          uuid.UUID          `json:"id"`
	Status      string             `json:"status"`
	Projects    []types.Project    `json:"projects,omitempty"`
	Questions   []QuestionResponse `json:"questions,omitempty"`
	Report      *ReportResponse    `json:"report,omitempty"`
	CreatedAt   string             `json:"created_at"`
	CompletedAt string             `json:"completed_at,omitempty"`
}

// ReportResponse is the stored completion report as served back to clients.
type ReportResponse struct {
	Metrics    types.InterviewMetrics `json:"metrics"`
	Skill      types.SkillAssessment  `json:"skill_assessment"`
	Comparison []types.ComparisonData `json:"comparison"`
	Feedback   string                 `json:"feedback"`
}

// QuestionResponse is the API shape of one question. The row ID is what the
// answer endpoint addresses; the key is the generator's deterministic ID.
type QuestionResponse struct {
	ID             uuid.UUID `json:"id"`
	Key            string    `json:"key"`
	ProjectTitle   string    `json:"project_title"`
	QuestionText   string    `json:"question_text"`
	Category       string    `json:"category"`
	ExpectedPoints []string  `json:"expected_points,omitempty"`
}

// AnswerRequest submits an answer to a question. ResponseTime is the
// measured seconds from question shown to answer submitted; omit it when the
// client cannot measure.
type AnswerRequest struct {
	Answer       string  `json:"answer"`
	ResponseTime float64 `json:"response_time,omitempty" validate:"omitempty,gte=0"`
}

// handleCreateInterview runs the preparation pipeline on the submitted
// resume and persists the resulting session.
func (s *Server) handleCreateInterview(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	result, err := s.pipeline.Prepare(r.Context(), req.ResumeText, pipeline.PrepareOptions{
		OnProgress: func(event pipeline.ProgressEvent) {
			s.logger.Debug("prepare progress", zap.String("step", event.Step), zap.String("message", event.Message))
		},
	})
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	interviewID, err := s.db.CreateInterview(r.Context(), userID, result.ResumeText)
	if err != nil {
		s.logger.Error("create interview failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to create interview")
		return
	}
	if err := s.db.SaveProjects(r.Context(), interviewID, result.Projects); err != nil {
		s.logger.Error("save projects failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to save projects")
		return
	}
	if err := s.db.SaveQuestions(r.Context(), interviewID, result.Questions); err != nil {
		s.logger.Error("save questions failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to save questions")
		return
	}

	stored, err := s.db.ListQuestions(r.Context(), interviewID)
	if err != nil {
		s.logger.Error("list questions failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load questions")
		return
	}

	resp := InterviewResponse{
		ID:        interviewID,
		Status:    db.InterviewStatusPending,
		Projects:  result.Projects,
		Questions: toQuestionResponses(stored),
	}
	s.jsonResponse(w, http.StatusCreated, resp)
}

// handleListInterviews returns the authenticated user's interviews.
func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	interviews, err := s.db.ListInterviews(r.Context(), userID, 50)
	if err != nil {
		s.logger.Error("list interviews failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list interviews")
		return
	}

	resp := make([]InterviewResponse, 0, len(interviews))
	for _, iv := range interviews {
		resp = append(resp, interviewResponse(&iv, nil))
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetInterview returns one interview with its projects and questions.
func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	interview, ok := s.ownedInterview(w, r, userID)
	if !ok {
		return
	}

	questions, err := s.db.ListQuestions(r.Context(), interview.ID)
	if err != nil {
		s.logger.Error("list questions failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load questions")
		return
	}

	resp := interviewResponse(interview, questions)
	if interview.Status == db.InterviewStatusCompleted {
		stored, err := s.db.GetReport(r.Context(), interview.ID)
		if err != nil {
			s.logger.Warn("get report failed", zap.Error(err))
		} else if stored != nil {
			report, err := reportResponse(stored)
			if err != nil {
				s.logger.Warn("decode report failed", zap.Error(err))
			} else {
				resp.Report = report
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAnswerQuestion analyzes and stores one submitted answer.
func (s *Server) handleAnswerQuestion(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	questionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid question id")
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	stored, err := s.db.GetQuestion(r.Context(), questionID)
	if err != nil {
		s.logger.Error("get question failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load question")
		return
	}
	if stored == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrNotFound{Resource: "question", ID: questionID.String()}).Error())
		return
	}

	interview, err := s.db.GetInterview(r.Context(), stored.InterviewID)
	if err != nil {
		s.logger.Error("get interview failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load interview")
		return
	}
	if interview == nil || interview.UserID != userID {
		// Hide existence of other users' interviews.
		s.errorResponse(w, http.StatusNotFound, (&ErrNotFound{Resource: "question", ID: questionID.String()}).Error())
		return
	}

	question, err := stored.InterviewQuestion()
	if err != nil {
		s.logger.Error("decode question failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to decode question")
		return
	}

	project := projectForQuestion(r, s, interview.ID, question.ProjectTitle)
	analysis := s.pipeline.AnalyzeAnswer(r.Context(), question, req.Answer, project, req.ResponseTime)

	if _, err := s.db.SaveAnswer(r.Context(), interview.ID, questionID, req.Answer, analysis); err != nil {
		s.logger.Error("save answer failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to save answer")
		return
	}
	if err := s.db.MarkInterviewInProgress(r.Context(), interview.ID); err != nil {
		s.logger.Warn("mark in progress failed", zap.Error(err))
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleCompleteInterview aggregates the collected answers into the final
// report and stores it.
func (s *Server) handleCompleteInterview(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	interview, ok := s.ownedInterview(w, r, userID)
	if !ok {
		return
	}

	analyses, err := s.db.ListAnalyses(r.Context(), interview.ID)
	if err != nil {
		s.logger.Error("list analyses failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load answers")
		return
	}
	projects, err := s.db.GetProjects(r.Context(), interview.ID)
	if err != nil {
		s.logger.Error("get projects failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load projects")
		return
	}

	report := s.pipeline.Complete(analyses, projects)

	if err := s.db.SaveReport(r.Context(), interview.ID, report.Metrics, report.Skill, report.Comparison, report.Feedback); err != nil {
		s.logger.Error("save report failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to save report")
		return
	}
	if err := s.db.CompleteInterview(r.Context(), interview.ID); err != nil {
		s.logger.Error("complete interview failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to complete interview")
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// ownedInterview loads the interview in the path and checks ownership,
// writing the error response itself on failure.
func (s *Server) ownedInterview(w http.ResponseWriter, r *http.Request, userID uuid.UUID) (*db.Interview, bool) {
	interviewID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid interview id")
		return nil, false
	}

	interview, err := s.db.GetInterview(r.Context(), interviewID)
	if err != nil {
		s.logger.Error("get interview failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load interview")
		return nil, false
	}
	if interview == nil || interview.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, (&ErrNotFound{Resource: "interview", ID: interviewID.String()}).Error())
		return nil, false
	}
	return interview, true
}

// projectForQuestion resolves the project a question refers to so the
// analyzer can receive it. Missing projects degrade to the zero value.
func projectForQuestion(r *http.Request, s *Server, interviewID uuid.UUID, projectTitle string) types.Project {
	projects, err := s.db.GetProjects(r.Context(), interviewID)
	if err != nil {
		s.logger.Warn("get projects failed", zap.Error(err))
		return types.Project{}
	}
	for _, p := range projects {
		if p.Title == projectTitle {
			return p
		}
	}
	return types.Project{}
}

// reportResponse decodes the stored JSONB payloads back into domain types.
func reportResponse(stored *db.Report) (*ReportResponse, error) {
	report := &ReportResponse{Feedback: stored.Feedback}
	if err := json.Unmarshal(stored.Metrics, &report.Metrics); err != nil {
		return nil, fmt.Errorf("failed to decode report metrics: %w", err)
	}
	if err := json.Unmarshal(stored.Skill, &report.Skill); err != nil {
		return nil, fmt.Errorf("failed to decode report skill assessment: %w", err)
	}
	if err := json.Unmarshal(stored.Comparison, &report.Comparison); err != nil {
		return nil, fmt.Errorf("failed to decode report comparison: %w", err)
	}
	return report, nil
}

func interviewResponse(iv *db.Interview, questions []db.Question) InterviewResponse {
	resp := InterviewResponse{
		ID:        iv.ID,
		Status:    iv.Status,
		CreatedAt: iv.CreatedAt.Format(time.RFC3339),
		Questions: toQuestionResponses(questions),
	}
	if iv.CompletedAt != nil {
		resp.CompletedAt = iv.CompletedAt.Format(time.RFC3339)
	}
	if len(iv.Projects) > 0 {
		_ = json.Unmarshal(iv.Projects, &resp.Projects)
	}
	return resp
}

func toQuestionResponses(questions []db.Question) []QuestionResponse {
	if len(questions) == 0 {
		return nil
	}
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		var points []string
		if len(q.ExpectedPoints) > 0 {
			_ = json.Unmarshal(q.ExpectedPoints, &points)
		}
		out = append(out, QuestionResponse{
			ID:             q.ID,
			Key:            q.QuestionKey,
			ProjectTitle:   q.ProjectTitle,
			QuestionText:   q.QuestionText,
			Category:       q.Category,
			ExpectedPoints: points,
		})
	}
	return out
}
