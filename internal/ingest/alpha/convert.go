package alpha

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/nubo/training/internal/catalog"
	"github.com/nubo/training/internal/models"
)

// workoutNamespace seeds deterministic workout ids so re-importing the same
// export replaces workouts instead of duplicating them.
var workoutNamespace = uuid.MustParse("5b0c6f0e-3f5e-4d39-9a8e-1f6f0d7c2a41")

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

// matcher resolves exported English exercise names against the catalog.
type matcher struct {
	byName map[string]models.Exercise
}

func newMatcher(cat *catalog.Catalog) *matcher {
	m := &matcher{byName: map[string]models.Exercise{}}
	for _, ex := range cat.All() {
		if ex.NameEn != "" {
			m.byName[normalize(ex.NameEn)] = ex
		}
	}
	return m
}

// normalize lowercases, collapses punctuation and drops plural "s" so that
// "Hanging Leg Raises" and "Hanging Leg Raise" compare equal.
func normalize(name string) string {
	words := strings.Fields(nonWord.ReplaceAllString(strings.ToLower(name), " "))
	for i, w := range words {
		if len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") {
			words[i] = strings.TrimSuffix(w, "s")
		}
	}
	return strings.Join(words, " ")
}

// match looks the exercise up by name, then by equipment and name
// ("Bench Press" with "Barbell" finds "Barbell Bench Press").
func (m *matcher) match(ex Exercise) (models.Exercise, bool) {
	for _, candidate := range []string{ex.Name, ex.Equipment + " " + ex.Name} {
		if found, ok := m.byName[normalize(candidate)]; ok {
			return found, true
		}
	}
	return models.Exercise{}, false
}

// equipmentFor maps the export's free-text equipment onto the catalog enum.
func equipmentFor(s string) models.Equipment {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "machine"), strings.Contains(s, "smith"):
		return models.EquipmentMachine
	case strings.Contains(s, "barbell"), strings.Contains(s, "ez bar"):
		return models.EquipmentBarbell
	case strings.Contains(s, "dumbbell"):
		return models.EquipmentDumbbell
	case strings.Contains(s, "cable"):
		return models.EquipmentCable
	case strings.Contains(s, "bodyweight"):
		return models.EquipmentBodyweight
	case strings.Contains(s, "kettlebell"):
		return models.EquipmentKettlebell
	case strings.Contains(s, "band"):
		return models.EquipmentBands
	}
	return models.EquipmentOther
}

// rpeFromRIR converts reps in reserve to an integer RPE in [1, 10].
func rpeFromRIR(rir float64) int {
	rpe := int(math.Round(10 - rir))
	return max(1, min(rpe, 10))
}

// toWorkout converts a session into a completed workout owned by userID.
// Unmatched exercises become custom entries with an "alpha-" id.
func (m *matcher) toWorkout(s Session, userID int) (models.Workout, []string) {
	id := uuid.NewSHA1(workoutNamespace, []byte(fmt.Sprintf("%d|%s|%s", userID, s.Date.Format("2006-01-02T15:04"), s.Name))).String()
	done := s.Date.Add(s.Duration)
	w := models.Workout{
		ID:          id,
		UserID:      userID,
		Name:        s.Name,
		StartedAt:   s.Date,
		CompletedAt: &done,
		Exercises:   make([]models.WorkoutExercise, 0, len(s.Exercises)),
	}

	var unmatched []string
	for _, ex := range s.Exercises {
		catEx, ok := m.match(ex)
		if !ok {
			unmatched = append(unmatched, ex.Name)
			catEx = models.Exercise{
				ID:          "alpha-" + strings.ReplaceAll(normalize(ex.Name), " ", "-"),
				Name:        ex.Name,
				NameEn:      ex.Name,
				MuscleGroup: models.MuscleOther,
				Equipment:   []models.Equipment{equipmentFor(ex.Equipment)},
				IsCustom:    true,
				UserID:      userID,
			}
		}

		we := models.WorkoutExercise{
			ID:       fmt.Sprintf("%s-%d", id, ex.Number),
			Exercise: catEx,
			Sets:     make([]models.WorkoutSet, 0, len(ex.Sets)),
		}
		if ex.TargetReps > 0 {
			we.Notes = fmt.Sprintf("Цель: %d повторений", ex.TargetReps)
		}
		for _, set := range ex.Sets {
			ws := models.WorkoutSet{
				ID:        fmt.Sprintf("%s-%d-%d", id, ex.Number, set.Number),
				Weight:    set.WeightKg,
				Reps:      set.Reps,
				Completed: true,
				IsWarmup:  set.IsWarmup,
				SetType:   models.SetStandard,
			}
			if set.IsWarmup {
				ws.ID = fmt.Sprintf("%s-%d-wu%d", id, ex.Number, set.Number)
			} else {
				ws.RPE = rpeFromRIR(set.RIR)
			}
			we.Sets = append(we.Sets, ws)
		}
		w.Exercises = append(w.Exercises, we)
	}
	return w, unmatched
}
