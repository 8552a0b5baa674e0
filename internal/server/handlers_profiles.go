package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/novonex/skill-align/internal/schemas"
	"github.com/novonex/skill-align/internal/types"
)

// ---------------------------------------------------------------------
// Profile Handlers
// ---------------------------------------------------------------------

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrServiceUnavailable{Service: "profile storage"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	exists, err := s.db.ProfileExists(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !exists {
		notFound := &ErrProfileNotFound{ProfileID: profileID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	doc, err := s.db.LoadProfile(r.Context(), profileID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, doc)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrServiceUnavailable{Service: "profile storage"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	// Schema validation before decoding keeps malformed levels and missing
	// ids out of storage.
	if err := schemas.ValidateProfileDocument(string(body)); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var doc types.ProfileDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.db.SaveProfile(r.Context(), profileID, &doc); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrServiceUnavailable{Service: "profile storage"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	if err := s.db.DeleteProfile(r.Context(), profileID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
