package server

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nubo/training/internal/export"
	"github.com/nubo/training/internal/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleGenerateProgram builds a program from the questionnaire. The program
// is persisted only with ?save=true.
func (s *Server) handleGenerateProgram(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var req models.AIProgramRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p := s.gen.Generate(req).AssignOwner(userID)
	if r.URL.Query().Get("save") != "true" {
		writeJSON(w, http.StatusOK, p)
		return
	}
	if err := s.store.SaveProgram(r.Context(), p); err != nil {
		s.writeError(w, err, "program")
		return
	}
	s.log.Info("program saved", "id", p.ID, "templates", len(p.Templates), "user", userID)
	writeJSON(w, http.StatusCreated, p)
}

// handleSaveProgram stores a program built elsewhere, e.g. by an MCP client.
func (s *Server) handleSaveProgram(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var p models.AIProgram
	if !decodeJSON(w, r, &p) {
		return
	}
	for _, t := range p.Templates {
		if err := validateTemplate(t); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "template " + t.Name + ": " + err.Error()})
			return
		}
	}
	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	for i := range p.Templates {
		if p.Templates[i].ID == "" {
			p.Templates[i].ID = s.newID()
		}
	}
	p = p.AssignOwner(userID)

	if err := s.store.SaveProgram(r.Context(), p); err != nil {
		s.writeError(w, err, "program")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	programs, err := s.store.ListPrograms(r.Context(), userID)
	if err != nil {
		s.writeError(w, err, "programs")
		return
	}
	writeJSON(w, http.StatusOK, programs)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	p, err := s.store.GetProgram(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		s.writeError(w, err, "program")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleExportProgram(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	p, err := s.store.GetProgram(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		s.writeError(w, err, "program")
		return
	}

	var buf bytes.Buffer
	if err := export.ProgramXLSX(p, &buf); err != nil {
		s.log.Error("export program", "id", p.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="program.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
