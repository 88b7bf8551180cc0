package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nubo/training/internal/models"
	"github.com/nubo/training/internal/progression"
	"github.com/nubo/training/internal/records"
)

const measurementDays = 90

// handleProgression suggests the next session for an exercise from the
// caller's completed workouts.
func (s *Server) handleProgression(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	opts := progression.Options{Type: models.ProgressionType(r.URL.Query().Get("type"))}
	if opts.Type != "" && !opts.Type.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid progression type " + string(opts.Type)})
		return
	}
	for name, dst := range map[string]*int{
		"target_reps": &opts.TargetReps,
		"min_reps":    &opts.MinReps,
		"max_reps":    &opts.MaxReps,
		"week":        &opts.Week,
	} {
		n, err := intParam(r, name)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		*dst = n
	}
	if opts.MinReps > 0 && opts.MaxReps > 0 && opts.MinReps > opts.MaxReps {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "min_reps must not exceed max_reps"})
		return
	}

	workouts, err := s.store.ListWorkouts(r.Context(), userID, 0)
	if err != nil {
		s.writeError(w, err, "workouts")
		return
	}
	exerciseID := chi.URLParam(r, "exerciseID")
	advice, ok := progression.ForExercise(workouts, exerciseID, opts)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no history for exercise " + exerciseID})
		return
	}
	writeJSON(w, http.StatusOK, advice)
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	workouts, err := s.store.ListWorkouts(r.Context(), userID, 0)
	if err != nil {
		s.writeError(w, err, "workouts")
		return
	}
	writeJSON(w, http.StatusOK, records.PersonalRecords(workouts))
}

// handleWeeklyVolume aggregates the whole history unless start is given.
func (s *Server) handleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	workouts, err := s.store.ListWorkouts(r.Context(), userID, 0)
	if err != nil {
		s.writeError(w, err, "workouts")
		return
	}

	if r.URL.Query().Get("start") != "" {
		start, end, err := parseTimeRange(r, 0)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		inRange := make([]models.Workout, 0, len(workouts))
		for _, wo := range workouts {
			at := wo.PerformedAt()
			if !at.Before(start) && !at.After(end) {
				inRange = append(inRange, wo)
			}
		}
		workouts = inRange
	}
	writeJSON(w, http.StatusOK, records.WeeklyVolume(workouts))
}

func (s *Server) handleListMeasurements(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	start, end, err := parseTimeRange(r, measurementDays)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	rows, err := s.store.ListMeasurements(r.Context(), userID, start, end)
	if err != nil {
		s.writeError(w, err, "measurements")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleAddMeasurement(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var m models.BodyMeasurement
	if !decodeJSON(w, r, &m) {
		return
	}
	m.UserID = userID
	if m.Date.IsZero() {
		m.Date = s.now()
	}

	saved, err := s.store.AddMeasurement(r.Context(), m)
	if err != nil {
		s.writeError(w, err, "measurement")
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}
