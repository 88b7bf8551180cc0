package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nubo/training/internal/catalog"
	"github.com/nubo/training/internal/models"
	"github.com/nubo/training/internal/program"
	"github.com/nubo/training/internal/store"
)

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userInfoFromContext(r))
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	custom, err := s.store.ListCustomExercises(r.Context(), userID)
	if err != nil {
		s.writeError(w, err, "exercises")
		return
	}

	q := r.URL.Query()
	all := s.catalog.Merge(custom).All()
	if q.Get("source") == "custom" {
		all = all[s.catalog.Len():]
	}
	mg := models.MuscleGroup(q.Get("muscle_group"))
	equipment := splitEquipment(q.Get("equipment"))

	out := make([]models.Exercise, 0, len(all))
	for _, ex := range all {
		if mg != "" && ex.MuscleGroup != mg {
			continue
		}
		if len(equipment) > 0 && !ex.Uses(equipment) {
			continue
		}
		out = append(out, ex)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var ex models.Exercise
	if !decodeJSON(w, r, &ex) {
		return
	}
	ex.ID = "custom-" + s.newID()
	ex.UserID = userID
	ex.IsCustom = true
	if err := catalog.Validate(ex); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	created, err := s.store.CreateExercise(r.Context(), ex)
	if err != nil {
		s.writeError(w, err, "exercise")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	templates, err := s.store.ListTemplates(r.Context(), userID)
	if err != nil {
		s.writeError(w, err, "templates")
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var t models.WorkoutTemplate
	if !decodeJSON(w, r, &t) {
		return
	}
	if err := validateTemplate(t); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	now := s.now()
	t.ID = s.newID()
	t.UserID = userID
	t.UsageCount = 0
	t.IsSystemTemplate = false
	t.CreatedAt, t.UpdatedAt = now, now
	if t.Exercises == nil {
		t.Exercises = []models.TemplateExercise{}
	}
	for i := range t.Exercises {
		if t.Exercises[i].ID == "" {
			t.Exercises[i].ID = s.newID()
		}
	}

	if err := s.store.CreateTemplate(r.Context(), t); err != nil {
		s.writeError(w, err, "template")
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	t, err := s.store.GetTemplate(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		s.writeError(w, err, "template")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteTemplate(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		s.writeError(w, err, "template")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUseTemplate starts a live workout from a template and bumps its usage count.
func (s *Server) handleUseTemplate(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	t, err := s.store.GetTemplate(r.Context(), id, userID)
	if err != nil {
		s.writeError(w, err, "template")
		return
	}
	if err := s.store.IncrementTemplateUsage(r.Context(), id, userID); err != nil {
		s.writeError(w, err, "template")
		return
	}

	workout := program.StartWorkout(t, s.newID, s.now())
	workout.UserID = userID
	if err := s.store.SaveWorkout(r.Context(), workout); err != nil {
		s.writeError(w, err, "workout")
		return
	}
	writeJSON(w, http.StatusCreated, workout)
}

// maxTemplateSets caps planned sets per template exercise.
const maxTemplateSets = 20

func validateTemplate(t models.WorkoutTemplate) error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("name is required")
	}
	for i, te := range t.Exercises {
		if te.Sets < 1 || te.Sets > maxTemplateSets {
			return fmt.Errorf("exercise %d: sets must be between 1 and %d", i+1, maxTemplateSets)
		}
	}
	return nil
}

// writeError maps store.ErrNotFound to 404 and logs everything else as 500.
func (s *Server) writeError(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": what + " not found"})
		return
	}
	s.log.Error("store error", "resource", what, "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func splitEquipment(s string) []models.Equipment {
	var out []models.Equipment
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, models.Equipment(part))
		}
	}
	return out
}

// intParam parses an optional non-negative integer query parameter. Missing
// values return 0.
func intParam(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return n, nil
}

// parseTimeRange reads start/end query parameters as RFC3339 or dates.
// Without start the range covers the last defaultDays days.
func parseTimeRange(r *http.Request, defaultDays int) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" {
		end = time.Now()
		start = end.AddDate(0, 0, -defaultDays)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}
	return
}
