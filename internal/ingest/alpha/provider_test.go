package alpha

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nubo/training/internal/catalog"
	"github.com/nubo/training/internal/models"
)

type memSaver struct {
	workouts map[string]models.Workout
}

func (m *memSaver) SaveWorkout(_ context.Context, w models.Workout) error {
	m.workouts[w.ID] = w
	return nil
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"Hanging Leg Raises": "hanging leg raise",
		"Lat Pull-Downs":     "lat pull down",
		"Bench Press":        "bench press",
		"  Dips ":            "dip",
	}
	for in, want := range tests {
		if got := normalize(in); got != want {
			t.Errorf("normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRPEFromRIR(t *testing.T) {
	tests := []struct {
		rir  float64
		want int
	}{{0, 10}, {1, 9}, {0.5, 10}, {2.5, 8}, {12, 1}}
	for _, tt := range tests {
		if got := rpeFromRIR(tt.rir); got != tt.want {
			t.Errorf("rpeFromRIR(%v) = %d, want %d", tt.rir, got, tt.want)
		}
	}
}

func TestEquipmentFor(t *testing.T) {
	tests := map[string]models.Equipment{
		"Machine":         models.EquipmentMachine,
		"Smith machine":   models.EquipmentMachine,
		"Dumbbells":       models.EquipmentDumbbell,
		"Barbell":         models.EquipmentBarbell,
		"Bodyweight":      models.EquipmentBodyweight,
		"Resistance band": models.EquipmentBands,
		"Sled":            models.EquipmentOther,
	}
	for in, want := range tests {
		if got := equipmentFor(in); got != want {
			t.Errorf("equipmentFor(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestIngest verifies sessions become completed workouts matched against the
// catalog, and that re-importing replaces instead of duplicating.
func TestIngest(t *testing.T) {
	db := &memSaver{workouts: map[string]models.Workout{}}
	p := NewProvider(db, catalog.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	res, err := p.Ingest(context.Background(), strings.NewReader(sampleCSV), 3)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if res.SessionsReceived != 2 || res.WorkoutsSaved != 2 {
		t.Errorf("result = %+v, want 2 sessions saved", res)
	}
	if res.SetsReceived != 28 || res.WarmupSets != 8 {
		t.Errorf("sets = %d (warmup %d), want 28 (8)", res.SetsReceived, res.WarmupSets)
	}
	wantUnmatched := []string{"Hack Squats", "Hyperextensions on Roman Chair", "Reverse Lunges", "Sumo Squats"}
	if diff := cmp.Diff(wantUnmatched, res.UnmatchedExercises); diff != "" {
		t.Errorf("unmatched mismatch (-want +got):\n%s", diff)
	}

	if _, err := p.Ingest(context.Background(), strings.NewReader(sampleCSV), 3); err != nil {
		t.Fatalf("second Ingest: %v", err)
	}
	if len(db.workouts) != 2 {
		t.Fatalf("stored workouts = %d after re-import, want 2", len(db.workouts))
	}

	var push models.Workout
	for _, w := range db.workouts {
		if strings.HasPrefix(w.Name, "Push") {
			push = w
		}
	}
	if push.UserID != 3 || push.CompletedAt == nil || push.CompletedAt.Sub(push.StartedAt).Minutes() != 72 {
		t.Errorf("push workout = %+v", push)
	}
	bench := push.Exercises[0]
	if bench.Exercise.ID != "barbell-bench-press" {
		t.Errorf("bench matched %q, want barbell-bench-press", bench.Exercise.ID)
	}
	last := bench.Sets[len(bench.Sets)-1]
	if last.Weight != 100 || last.Reps != 6 || last.RPE != 10 || !last.Completed || last.IsWarmup {
		t.Errorf("last bench set = %+v", last)
	}

	for _, w := range db.workouts {
		for _, ex := range w.Exercises {
			if ex.Exercise.Name == "Hack Squats" {
				if ex.Exercise.ID != "alpha-hack-squat" || !ex.Exercise.IsCustom || ex.Exercise.MuscleGroup != models.MuscleOther {
					t.Errorf("unmatched exercise = %+v", ex.Exercise)
				}
			}
		}
	}
}
