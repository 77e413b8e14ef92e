package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/career-coach/internal/interview"
	"github.com/jonathan/career-coach/internal/keywords"
	"github.com/jonathan/career-coach/internal/opportunities"
	"github.com/jonathan/career-coach/internal/resume"
	"github.com/jonathan/career-coach/internal/types"
)

// handleHealth responds to health checks.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSaveProfile stores or replaces the owner's profile.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")

	var profile types.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid profile JSON"})
		return
	}

	if err := s.store.SaveProfile(r.Context(), owner, &profile); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"owner": owner})
}

// handleGetProfile retrieves the owner's profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")

	profile, err := s.store.GetProfile(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}
	if profile == nil {
		writeError(w, &ErrProfileNotFound{Owner: owner})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// handleDeleteProfile removes the owner's profile.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")

	if err := s.store.DeleteProfile(r.Context(), owner); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCustomize builds a job-tailored resume from the owner's stored
// profile and persists it.
func (s *Server) handleCustomize(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")

	var req types.CustomizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid request JSON"})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	profile, err := s.store.GetProfile(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}
	if profile == nil {
		writeError(w, &ErrProfileNotFound{Owner: owner})
		return
	}

	payload, err := resume.Customize(profile, req.JobTitle, req.JobDescription, req.Template)
	if err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	id, err := s.store.SaveResume(r.Context(), owner, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":      id,
		"payload": payload,
	})
}

// handleImprove suggests profile improvements for a job description.
func (s *Server) handleImprove(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")

	var req struct {
		JobDescription string `json:"job_description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid request JSON"})
		return
	}
	if req.JobDescription == "" {
		writeError(w, &ErrValidation{Field: "job_description", Message: "job description is required"})
		return
	}

	profile, err := s.store.GetProfile(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}
	if profile == nil {
		writeError(w, &ErrProfileNotFound{Owner: owner})
		return
	}

	improvements := keywords.SuggestImprovements(resume.FlattenProfile(profile), req.JobDescription)
	writeJSON(w, http.StatusOK, improvements)
}

// handleListResumes retrieves the owner's stored resumes.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")

	records, err := s.store.ListResumes(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// handleGetResume retrieves a stored resume by ID.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, &ErrValidation{Field: "id", Message: "invalid resume ID"})
		return
	}

	record, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if record == nil {
		writeError(w, &ErrResumeNotFound{ID: id})
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// handleGrade grades a single interview answer with the three-axis
// grader.
func (s *Server) handleGrade(w http.ResponseWriter, r *http.Request) {
	var req types.GradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid request JSON"})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	feedback := interview.AnalyzeAnswer(req.Question, req.Answer)
	writeJSON(w, http.StatusOK, feedback)
}

// handleQuestions selects interview questions for a role.
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	if role == "" {
		writeError(w, &ErrValidation{Field: "role", Message: "role is required"})
		return
	}

	count := interview.DefaultQuestionCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, &ErrValidation{Field: "count", Message: "count must be a positive integer"})
			return
		}
		count = parsed
	}

	questionType := types.QuestionType(r.URL.Query().Get("type"))

	if difficulty := r.URL.Query().Get("difficulty"); difficulty != "" {
		var questionTypes []types.QuestionType
		if questionType != "" {
			questionTypes = append(questionTypes, questionType)
		}
		questions := interview.SelectByDifficulty(role, types.Difficulty(difficulty), questionTypes, count, nil)
		writeJSON(w, http.StatusOK, questions)
		return
	}

	writeJSON(w, http.StatusOK, interview.SelectQuestions(role, questionType, count, nil))
}

// handleSaveInterview persists a completed interview summary for the
// owner's history.
func (s *Server) handleSaveInterview(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")

	var summary types.InterviewSummary
	if err := json.NewDecoder(r.Body).Decode(&summary); err != nil {
		writeError(w, &ErrValidation{Field: "body", Message: "invalid summary JSON"})
		return
	}
	if summary.Role == "" {
		writeError(w, &ErrValidation{Field: "role", Message: "role is required"})
		return
	}

	id, err := s.store.SaveInterview(r.Context(), owner, &summary)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

// handleListInterviews retrieves the owner's interview history, newest
// first.
func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")

	records, err := s.store.ListInterviews(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// handleSearchJobs searches the job catalog.
func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := opportunities.JobFilter{
		JobType:  q.Get("job_type"),
		Location: q.Get("location"),
	}
	if kw := q.Get("keywords"); kw != "" {
		filter.Keywords = q["keywords"]
	}

	jobs := s.finder.SearchJobs(filter, nil)
	writeJSON(w, http.StatusOK, jobs)
}

// handleSearchHackathons searches the hackathon catalog.
func (s *Server) handleSearchHackathons(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := opportunities.HackathonFilter{
		Location:   q.Get("location"),
		SkillLevel: q.Get("skill_level"),
		TeamSize:   q.Get("team_size"),
	}
	if kw := q.Get("keywords"); kw != "" {
		filter.Keywords = q["keywords"]
	}
	if raw := q.Get("remote"); raw != "" {
		remote, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, &ErrValidation{Field: "remote", Message: "remote must be a boolean"})
			return
		}
		filter.Remote = &remote
	}

	hackathons := s.finder.SearchHackathons(filter)
	writeJSON(w, http.StatusOK, hackathons)
}

// handleRecommendations builds personalized recommendations from the
// owner's stored profile.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")

	profile, err := s.store.GetProfile(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}
	if profile == nil {
		writeError(w, &ErrProfileNotFound{Owner: owner})
		return
	}

	limit := opportunities.DefaultRecommendationLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, &ErrValidation{Field: "limit", Message: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	recs, err := s.finder.Recommendations(r.Context(), profile, limit)
	if err != nil {
		writeError(w, fmt.Errorf("failed to build recommendations: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, recs)
}
