package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nubo/training/internal/models"
	"github.com/nubo/training/internal/superset"
)

const defaultWorkoutLimit = 50

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	// limit=all returns the full history
	limit := 0
	if r.URL.Query().Get("limit") != "all" {
		n, err := intParam(r, "limit")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		limit = n
		if limit == 0 {
			limit = defaultWorkoutLimit
		}
	}

	workouts, err := s.store.ListWorkouts(r.Context(), userID, limit)
	if err != nil {
		s.writeError(w, err, "workouts")
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

// handleSaveWorkout inserts a new workout or replaces an existing one.
// Missing ids are assigned and an unset start time defaults to now.
func (s *Server) handleSaveWorkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var wo models.Workout
	if !decodeJSON(w, r, &wo) {
		return
	}

	wo.UserID = userID
	if wo.ID == "" {
		wo.ID = s.newID()
	}
	if wo.StartedAt.IsZero() {
		wo.StartedAt = s.now()
	}
	if wo.Exercises == nil {
		wo.Exercises = []models.WorkoutExercise{}
	}
	for i := range wo.Exercises {
		ex := &wo.Exercises[i]
		if ex.ID == "" {
			ex.ID = s.newID()
		}
		for j := range ex.Sets {
			set := &ex.Sets[j]
			if set.ID == "" {
				set.ID = s.newID()
			}
			if set.SetType == "" {
				set.SetType = models.SetStandard
			}
			if !set.SetType.Valid() {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid set type " + string(set.SetType)})
				return
			}
		}
	}

	if err := s.store.SaveWorkout(r.Context(), wo); err != nil {
		s.writeError(w, err, "workout")
		return
	}
	writeJSON(w, http.StatusCreated, wo)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	wo, err := s.store.GetWorkout(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		s.writeError(w, err, "workout")
		return
	}
	writeJSON(w, http.StatusOK, wo)
}

type supersetRequest struct {
	ExerciseA string `json:"exerciseA"`
	ExerciseB string `json:"exerciseB"`
}

type supersetResponse struct {
	GroupID string         `json:"groupId"`
	Color   string         `json:"color"`
	Workout models.Workout `json:"workout"`
}

// handleCreateSuperset pairs two exercises of a workout. Both ids must exist
// in the workout and differ.
func (s *Server) handleCreateSuperset(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var req supersetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ExerciseA == "" || req.ExerciseA == req.ExerciseB {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "two different exercises are required"})
		return
	}

	wo, err := s.store.GetWorkout(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		s.writeError(w, err, "workout")
		return
	}
	if !hasExercise(wo, req.ExerciseA) || !hasExercise(wo, req.ExerciseB) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise not in workout"})
		return
	}

	var groupID string
	wo.Exercises = superset.Create(wo.Exercises, req.ExerciseA, req.ExerciseB, func() string {
		groupID = s.newID()
		return groupID
	})
	if err := s.store.SaveWorkout(r.Context(), wo); err != nil {
		s.writeError(w, err, "workout")
		return
	}
	writeJSON(w, http.StatusOK, supersetResponse{GroupID: groupID, Color: superset.Color(groupID), Workout: wo})
}

func (s *Server) handleRemoveSuperset(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}
	wo, err := s.store.GetWorkout(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		s.writeError(w, err, "workout")
		return
	}
	groupID := chi.URLParam(r, "groupID")
	if len(superset.Exercises(wo.Exercises, groupID)) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "superset not found"})
		return
	}

	wo.Exercises = superset.RemoveGroup(wo.Exercises, groupID)
	if err := s.store.SaveWorkout(r.Context(), wo); err != nil {
		s.writeError(w, err, "workout")
		return
	}
	writeJSON(w, http.StatusOK, wo)
}

func hasExercise(wo models.Workout, id string) bool {
	for _, ex := range wo.Exercises {
		if ex.ID == id {
			return true
		}
	}
	return false
}
