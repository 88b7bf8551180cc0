package program

import (
	"fmt"
	"testing"
	"time"

	"github.com/nubo/training/internal/models"
)

func TestStartWorkout(t *testing.T) {
	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	now := time.Date(2026, 5, 4, 7, 30, 0, 0, time.UTC)
	tpl := models.WorkoutTemplate{
		ID:     "tpl-1",
		UserID: 3,
		Name:   "Верх A",
		Exercises: []models.TemplateExercise{
			{Exercise: models.Exercise{ID: "barbell-bench-press"}, Sets: 3},
			{Exercise: models.Exercise{ID: "barbell-row"}, Sets: 2, Superset: "a"},
			{Exercise: models.Exercise{ID: "dumbbell-fly"}, Sets: 2, Superset: "a"},
			{Exercise: models.Exercise{ID: "cable-crunch"}, Sets: 1, Superset: "a"},
		},
	}

	w := StartWorkout(tpl, newID, now)

	if w.ID != "id-1" || w.TemplateID != "tpl-1" || w.UserID != 3 || !w.StartedAt.Equal(now) {
		t.Errorf("workout header = %+v", w)
	}
	if w.CompletedAt != nil {
		t.Error("new workout is already completed")
	}
	if len(w.Exercises) != 4 {
		t.Fatalf("exercises = %d, want 4", len(w.Exercises))
	}
	for i, want := range []int{3, 2, 2, 1} {
		if got := len(w.Exercises[i].Sets); got != want {
			t.Errorf("exercise %d sets = %d, want %d", i, got, want)
		}
	}
	for _, s := range w.Exercises[0].Sets {
		if s.SetType != models.SetStandard || s.Completed || s.ID == "" {
			t.Errorf("set = %+v, want empty standard set with id", s)
		}
	}

	row, fly, crunch := w.Exercises[1], w.Exercises[2], w.Exercises[3]
	if row.SupersetID == "" || row.SupersetID != fly.SupersetID {
		t.Errorf("superset ids = %q, %q; want same non-empty", row.SupersetID, fly.SupersetID)
	}
	if row.SupersetOrder != 1 || fly.SupersetOrder != 2 {
		t.Errorf("superset orders = %d, %d; want 1, 2", row.SupersetOrder, fly.SupersetOrder)
	}
	if crunch.SupersetID != "" || crunch.SupersetOrder != 0 {
		t.Errorf("third tagged exercise paired: %+v", crunch)
	}
	if w.Exercises[0].SupersetID != "" {
		t.Error("untagged exercise has a superset id")
	}
}

// TestStartWorkoutNegativeSets verifies a malformed template yields exercises
// without sets instead of failing.
func TestStartWorkoutNegativeSets(t *testing.T) {
	tpl := models.WorkoutTemplate{Exercises: []models.TemplateExercise{{Sets: -1}}}
	w := StartWorkout(tpl, func() string { return "id" }, time.Now())
	if len(w.Exercises) != 1 || len(w.Exercises[0].Sets) != 0 {
		t.Errorf("exercises = %+v, want one exercise without sets", w.Exercises)
	}
}
