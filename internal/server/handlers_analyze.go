package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/novonex/skill-align/internal/analysis"
	"github.com/novonex/skill-align/internal/fetch"
	"github.com/novonex/skill-align/internal/prompts"
	"github.com/novonex/skill-align/internal/schemas"
	"github.com/novonex/skill-align/internal/types"
)

// ---------------------------------------------------------------------
// Analysis Handlers
// ---------------------------------------------------------------------

// AnalyzeRequest asks for a model-generated company/role analysis. Either a
// company/role pair or a posting URL must be given.
type AnalyzeRequest struct {
	Company    string `json:"company"`
	Role       string `json:"role"`
	PostingURL string `json:"postingUrl"`
	Refresh    bool   `json:"refresh"` // bypass the cache
}

// AnalyzeResponse carries the analysis plus the requirement set derived
// from it, ready for the alignment endpoints.
type AnalyzeResponse struct {
	Company      string                   `json:"company"`
	Role         string                   `json:"role"`
	Cached       bool                     `json:"cached"`
	Analysis     *types.CompanyAnalysis   `json:"analysis"`
	Requirements []types.SkillRequirement `json:"requirements"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if s.llm == nil {
		err := &ErrServiceUnavailable{Service: "analysis model"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	byPosting := req.PostingURL != ""
	if !byPosting && (req.Company == "" || req.Role == "") {
		s.errorResponse(w, http.StatusBadRequest, "company and role, or postingUrl, are required")
		return
	}
	if byPosting && req.Company != "" {
		s.errorResponse(w, http.StatusBadRequest, "company and postingUrl are mutually exclusive")
		return
	}

	ctx := r.Context()

	// Cache lookup for company/role analyses.
	if !byPosting && !req.Refresh && s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, req.Company, req.Role); err == nil && ok {
			s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
				Company:      req.Company,
				Role:         req.Role,
				Cached:       true,
				Analysis:     cached,
				Requirements: analysis.Requirements(cached),
			})
			return
		}
	}

	var prompt string
	if byPosting {
		posting, err := fetch.PostingURL(ctx, req.PostingURL, nil)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch posting: "+err.Error())
			return
		}
		prompt = prompts.PostingAnalysisPrompt(posting.Text)
	} else {
		prompt = prompts.CompanyAnalysisPrompt(req.Company, req.Role)
	}

	raw, err := s.llm.GenerateJSON(ctx, prompt)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Analysis failed: "+err.Error())
		return
	}

	if err := schemas.ValidateAnalysisPayload(raw); err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Model returned an unusable payload: "+err.Error())
		return
	}

	result, err := analysis.ParseCompanyAnalysis([]byte(raw))
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to parse analysis: "+err.Error())
		return
	}

	if !byPosting {
		if s.cache != nil {
			_ = s.cache.Set(ctx, req.Company, req.Role, result)
		}
		if s.db != nil {
			// Persistence is best-effort; the analysis is still returned.
			if _, err := s.db.SaveAnalysis(ctx, req.Company, req.Role, result); err != nil {
				log.Printf("Failed to store analysis for %s/%s: %v", req.Company, req.Role, err)
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		Company:      req.Company,
		Role:         req.Role,
		Analysis:     result,
		Requirements: analysis.Requirements(result),
	})
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrServiceUnavailable{Service: "analysis storage"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	records, err := s.db.ListAnalyses(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, records)
}
