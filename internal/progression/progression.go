// Package progression suggests the next session's weight and reps from the
// previous performance of an exercise.
package progression

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/nubo/training/internal/models"
)

const (
	// heavyThresholdKg is the weight from which linear progression uses the larger step.
	heavyThresholdKg = 60
	// doubleHeavyThresholdKg is the same boundary for double progression.
	doubleHeavyThresholdKg = 50

	smallIncrementKg = 2.5
	largeIncrementKg = 5.0

	// DefaultMinReps and DefaultMaxReps bound the double progression rep band.
	DefaultMinReps = 6
	DefaultMaxReps = 12

	// deloadWindow is how many recent sessions are checked for stagnation.
	deloadWindow = 4
)

// RoundWeight rounds to the nearest 0.5 kg.
func RoundWeight(kg float64) float64 {
	return math.Round(kg*2) / 2
}

// Increment returns the linear progression step for the current weight.
func Increment(weight float64) float64 {
	if weight < heavyThresholdKg {
		return smallIncrementKg
	}
	return largeIncrementKg
}

func doubleIncrement(weight float64) float64 {
	if weight < doubleHeavyThresholdKg {
		return smallIncrementKg
	}
	return largeIncrementKg
}

// Linear adds weight once the target reps are reached and otherwise keeps the
// load so the lifter can try again.
func Linear(weight float64, reps, targetReps int) models.ProgressionSuggestion {
	if reps >= targetReps {
		inc := Increment(weight)
		return models.ProgressionSuggestion{
			Type:   models.ProgressionLinear,
			Weight: weight + inc,
			Reps:   targetReps,
			Reason: fmt.Sprintf("Все %d повторений выполнены: добавьте %s кг", targetReps, formatKg(inc)),
		}
	}
	return models.ProgressionSuggestion{
		Type:   models.ProgressionLinear,
		Weight: weight,
		Reps:   targetReps,
		Reason: fmt.Sprintf("Продолжайте с текущим весом, пока не выполните %d повторений", targetReps),
	}
}

// Double progresses reps inside [minReps, maxReps] and adds weight when the
// top of the band is reached, resetting reps to minReps. The step is 2.5 kg
// below 50 kg and 5 kg from 50 kg on.
func Double(weight float64, reps, minReps, maxReps int) models.ProgressionSuggestion {
	if reps >= maxReps {
		inc := doubleIncrement(weight)
		return models.ProgressionSuggestion{
			Type:   models.ProgressionDouble,
			Weight: weight + inc,
			Reps:   minReps,
			Reason: fmt.Sprintf("Достигнут верх диапазона (%d): добавьте %s кг и начните с %d повторений",
				maxReps, formatKg(inc), minReps),
		}
	}
	next := min(reps+1, maxReps)
	return models.ProgressionSuggestion{
		Type:   models.ProgressionDouble,
		Weight: weight,
		Reps:   next,
		Reason: fmt.Sprintf("Добавьте повторение: %d из %d", next, maxReps),
	}
}

// Wave cycles light, medium and heavy weeks keyed by week mod 3.
func Wave(week int, baseWeight float64, baseReps int) models.ProgressionSuggestion {
	switch ((week % 3) + 3) % 3 {
	case 0:
		return models.ProgressionSuggestion{
			Type:   models.ProgressionWave,
			Weight: RoundWeight(baseWeight * 0.85),
			Reps:   baseReps + 2,
			Reason: "Лёгкая неделя: 85% рабочего веса и +2 повторения",
		}
	case 1:
		return models.ProgressionSuggestion{
			Type:   models.ProgressionWave,
			Weight: baseWeight * 0.95,
			Reps:   baseReps,
			Reason: "Средняя неделя: 95% рабочего веса",
		}
	default:
		return models.ProgressionSuggestion{
			Type:   models.ProgressionWave,
			Weight: RoundWeight(baseWeight + smallIncrementKg),
			Reps:   baseReps,
			Reason: "Тяжёлая неделя: рабочий вес +2.5 кг",
		}
	}
}

// Deload drops to 60% of the weight and 70% of the reps.
func Deload(weight float64, reps int) models.ProgressionSuggestion {
	return models.ProgressionSuggestion{
		Type:   models.ProgressionDeload,
		Weight: RoundWeight(weight * 0.6),
		Reps:   reps * 7 / 10,
		Reason: "Разгрузка: прогресс остановился, снизьте вес до 60% и повторения до 70% для восстановления",
	}
}

// ShouldDeload reports stagnation over the four most recent sessions.
// history must be ordered most recent first; fewer than four records never
// trigger a deload.
func ShouldDeload(history []models.WorkoutExercise) bool {
	if len(history) < deloadWindow {
		return false
	}
	weights := make([]float64, deloadWindow)
	for i := range weights {
		weights[i] = history[i].MaxWeight()
	}
	for i := 1; i < len(weights); i++ {
		if weights[i] > weights[i-1] {
			return false
		}
	}
	return true
}

// Options selects the strategy and its parameters. Zero values fall back to
// linear progression, the last set's reps as target and the default rep band.
type Options struct {
	Type       models.ProgressionType
	TargetReps int
	MinReps    int
	MaxReps    int
	Week       int
}

// Suggest returns the suggestion for the next session. Detected stagnation
// overrides the requested strategy with a deload.
func Suggest(last models.WorkoutSet, history []models.WorkoutExercise, opts Options) models.ProgressionSuggestion {
	if ShouldDeload(history) {
		return Deload(last.Weight, last.Reps)
	}

	switch opts.Type {
	case models.ProgressionDouble:
		minReps, maxReps := opts.MinReps, opts.MaxReps
		if minReps <= 0 {
			minReps = DefaultMinReps
		}
		if maxReps <= 0 {
			maxReps = DefaultMaxReps
		}
		return Double(last.Weight, last.Reps, minReps, maxReps)
	case models.ProgressionWave:
		return Wave(opts.Week, last.Weight, last.Reps)
	case models.ProgressionDeload:
		return Deload(last.Weight, last.Reps)
	default:
		target := opts.TargetReps
		if target <= 0 {
			target = last.Reps
		}
		return Linear(last.Weight, last.Reps, target)
	}
}

// LastWorkingSet returns the set progression should be based on: the last
// completed working set, else the last working set, else the last set.
func LastWorkingSet(ex models.WorkoutExercise) (models.WorkoutSet, bool) {
	if len(ex.Sets) == 0 {
		return models.WorkoutSet{}, false
	}
	for i := len(ex.Sets) - 1; i >= 0; i-- {
		if s := ex.Sets[i]; s.Completed && !s.IsWarmup {
			return s, true
		}
	}
	for i := len(ex.Sets) - 1; i >= 0; i-- {
		if s := ex.Sets[i]; !s.IsWarmup {
			return s, true
		}
	}
	return ex.Sets[len(ex.Sets)-1], true
}

// History collects an exercise's records from completed workouts, most recent first.
func History(workouts []models.Workout, exerciseID string) []models.WorkoutExercise {
	done := make([]models.Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.CompletedAt != nil {
			done = append(done, w)
		}
	}
	sort.SliceStable(done, func(i, j int) bool {
		return done[i].CompletedAt.After(*done[j].CompletedAt)
	})

	var out []models.WorkoutExercise
	for _, w := range done {
		for _, ex := range w.Exercises {
			if ex.Exercise.ID == exerciseID {
				out = append(out, ex)
			}
		}
	}
	return out
}

func formatKg(kg float64) string {
	return strconv.FormatFloat(kg, 'f', -1, 64)
}

// Advice is a suggestion with the set it was derived from.
type Advice struct {
	ExerciseID string                       `json:"exerciseId"`
	LastSet    models.WorkoutSet            `json:"lastSet"`
	Sessions   int                          `json:"sessions"`
	Deload     bool                         `json:"deload"`
	Suggestion models.ProgressionSuggestion `json:"suggestion"`
}

// ForExercise builds advice for an exercise from raw workout history. It
// reports false when no completed workout contains a set of the exercise.
func ForExercise(workouts []models.Workout, exerciseID string, opts Options) (Advice, bool) {
	history := History(workouts, exerciseID)
	for _, ex := range history {
		last, ok := LastWorkingSet(ex)
		if !ok {
			continue
		}
		return Advice{
			ExerciseID: exerciseID,
			LastSet:    last,
			Sessions:   len(history),
			Deload:     ShouldDeload(history),
			Suggestion: Suggest(last, history, opts),
		}, true
	}
	return Advice{}, false
}
