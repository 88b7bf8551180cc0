package program

import (
	"time"

	"github.com/nubo/training/internal/models"
)

// StartWorkout opens a live session from a template. Each template exercise
// gets its planned number of empty standard sets. Exercises sharing a
// template superset tag are paired under one group id in order of appearance.
func StartWorkout(t models.WorkoutTemplate, newID IDGenerator, now time.Time) models.Workout {
	w := models.Workout{
		ID:         newID(),
		UserID:     t.UserID,
		Name:       t.Name,
		TemplateID: t.ID,
		StartedAt:  now,
		Exercises:  make([]models.WorkoutExercise, 0, len(t.Exercises)),
	}

	groups := map[string]string{}
	seen := map[string]int{}
	for _, te := range t.Exercises {
		we := models.WorkoutExercise{
			ID:       newID(),
			Exercise: te.Exercise,
			Sets:     make([]models.WorkoutSet, 0, max(te.Sets, 0)),
		}
		for range max(te.Sets, 0) {
			we.Sets = append(we.Sets, models.WorkoutSet{ID: newID(), SetType: models.SetStandard})
		}
		if tag := te.Superset; tag != "" && seen[tag] < 2 {
			if _, ok := groups[tag]; !ok {
				groups[tag] = newID()
			}
			seen[tag]++
			we.SupersetID = groups[tag]
			we.SupersetOrder = seen[tag]
		}
		w.Exercises = append(w.Exercises, we)
	}
	return w
}
