package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/novonex/skill-align/internal/alignment"
	"github.com/novonex/skill-align/internal/catalog"
	"github.com/novonex/skill-align/internal/profile"
	"github.com/novonex/skill-align/internal/quiz"
	"github.com/novonex/skill-align/internal/radar"
	"github.com/novonex/skill-align/internal/simulation"
	"github.com/novonex/skill-align/internal/types"
)

// ---------------------------------------------------------------------
// Scoring Handlers
// ---------------------------------------------------------------------

// AlignmentRequest asks for an alignment score. Requirements may be given
// inline or by role id from the catalog.
type AlignmentRequest struct {
	UserSkills   []types.UserSkill        `json:"userSkills" validate:"required"`
	UserDomains  []types.SkillDomain      `json:"userDomains"`
	Requirements []types.SkillRequirement `json:"requirements"`
	RoleID       string                   `json:"roleId"`
}

// AlignmentResponse carries the score and its gap breakdown.
type AlignmentResponse struct {
	Score    int                     `json:"score"`
	Statuses []alignment.SkillStatus `json:"statuses"`
	Counts   alignment.Counts        `json:"counts"`
}

func (s *Server) handleAlignment(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	requirements, err := s.resolveRequirements(req.Requirements, req.RoleID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resolved := s.resolver(req.UserSkills, req.UserDomains).ResolveRequirements(requirements)
	score := alignment.Score(resolved, requirements)
	statuses, counts := alignment.Summarize(resolved, requirements)

	s.jsonResponse(w, http.StatusOK, AlignmentResponse{
		Score:    score,
		Statuses: statuses,
		Counts:   counts,
	})
}

// SimulateRequest asks for a what-if projection over the catalog actions.
type SimulateRequest struct {
	UserSkills    []types.UserSkill        `json:"userSkills" validate:"required"`
	UserDomains   []types.SkillDomain      `json:"userDomains"`
	Requirements  []types.SkillRequirement `json:"requirements"`
	RoleID        string                   `json:"roleId"`
	ActiveActions []string                 `json:"activeActions"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	requirements, err := s.resolveRequirements(req.Requirements, req.RoleID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	active := make(map[string]bool, len(req.ActiveActions))
	for _, id := range req.ActiveActions {
		active[id] = true
	}

	// Actions targeting skills the role never asks for cannot move the score.
	actions := catalog.Actions()
	if role, ok := catalog.RoleByID(req.RoleID); ok {
		actions = catalog.ActionsForRole(role)
	}

	baseline := s.resolver(req.UserSkills, req.UserDomains).ResolveRequirements(requirements)
	outcome := simulation.Simulate(baseline, actions, active, requirements)

	s.jsonResponse(w, http.StatusOK, outcome)
}

// RadarRequest asks for radar chart geometry.
type RadarRequest struct {
	Axes   []radar.Axis `json:"axes" validate:"required,min=1,dive"`
	Radius float64      `json:"radius" validate:"gt=0"`
}

func (s *Server) handleRadar(w http.ResponseWriter, r *http.Request) {
	var req RadarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, radar.Project(req.Axes, req.Radius))
}

// QuizGradeRequest submits answers for one skill's quiz.
type QuizGradeRequest struct {
	SkillID string `json:"skillId" validate:"required"`
	Answers []int  `json:"answers" validate:"required"`
}

// QuizGradeResponse reports the score and the inferred level.
type QuizGradeResponse struct {
	SkillID string           `json:"skillId"`
	Score   int              `json:"score"`
	Total   int              `json:"total"`
	Level   types.SkillLevel `json:"level"`
	Label   string           `json:"label"`
}

func (s *Server) handleQuizGrade(w http.ResponseWriter, r *http.Request) {
	var req QuizGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	score, level := quiz.Grade(types.QuizResult{SkillID: req.SkillID, Answers: req.Answers})

	s.jsonResponse(w, http.StatusOK, QuizGradeResponse{
		SkillID: req.SkillID,
		Score:   score,
		Total:   quiz.QuestionCount,
		Level:   level,
		Label:   level.Label(),
	})
}

// handleQuizQuestions returns the question set for a skill, without the
// correct answer indexes.
func (s *Server) handleQuizQuestions(w http.ResponseWriter, r *http.Request) {
	skillID := r.PathValue("skill_id")
	if skillID == "" {
		s.errorResponse(w, http.StatusBadRequest, "Skill ID is required")
		return
	}

	questions := quiz.QuestionsForSkill(skillID)

	type publicQuestion struct {
		ID      string   `json:"id"`
		Text    string   `json:"text"`
		Options []string `json:"options"`
	}
	public := make([]publicQuestion, len(questions))
	for i, q := range questions {
		public[i] = publicQuestion{ID: q.ID, Text: q.Text, Options: q.Options}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skillId":   skillID,
		"questions": public,
	})
}

// ---------------------------------------------------------------------
// Catalog Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCatalogDomains(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, catalog.DefaultDomains())
}

func (s *Server) handleCatalogRoles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, catalog.Roles())
}

func (s *Server) handleCatalogCompanies(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, catalog.CompanyTypes())
}

func (s *Server) handleCatalogActions(w http.ResponseWriter, r *http.Request) {
	roleID := r.URL.Query().Get("role")
	if roleID == "" {
		s.jsonResponse(w, http.StatusOK, catalog.Actions())
		return
	}

	role, ok := catalog.RoleByID(roleID)
	if !ok {
		err := &ErrUnknownRole{RoleID: roleID}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, catalog.ActionsForRole(role))
}

// ---------------------------------------------------------------------
// Shared helpers
// ---------------------------------------------------------------------

// resolveRequirements picks inline requirements when given, otherwise looks
// the role up in the catalog.
func (s *Server) resolveRequirements(inline []types.SkillRequirement, roleID string) ([]types.SkillRequirement, error) {
	if len(inline) > 0 {
		return inline, nil
	}
	if roleID == "" {
		return nil, &ErrValidation{Field: "requirements", Message: "requirements or roleId is required"}
	}

	role, ok := catalog.RoleByID(roleID)
	if !ok {
		return nil, &ErrUnknownRole{RoleID: roleID}
	}
	return role.RequiredSkills, nil
}

// resolver builds a skill resolver over the request's skills and vault,
// using the server's configured match policy.
func (s *Server) resolver(skills []types.UserSkill, domains []types.SkillDomain) *profile.Resolver {
	r := profile.NewResolver(skills, domains)
	r.Policy = s.policy
	return r
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
