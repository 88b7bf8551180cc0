// Package records derives personal records and training volume from workout history.
package records

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/nubo/training/internal/models"
)

// Estimate1RM estimates a one-rep max with the Epley formula. A single rep
// returns the weight itself.
func Estimate1RM(weight float64, reps int) float64 {
	if reps <= 0 || weight <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	return math.Round(weight*(1+float64(reps)/30)*100) / 100
}

// isWorking reports whether a set counts towards records and volume.
func isWorking(s models.WorkoutSet) bool {
	return s.Completed && !s.IsWarmup && s.Reps > 0
}

// PersonalRecords returns the best results per exercise across all completed
// working sets, sorted by exercise name.
func PersonalRecords(workouts []models.Workout) []models.PersonalRecord {
	byID := make(map[string]*models.PersonalRecord)
	for _, w := range workouts {
		at := w.PerformedAt()
		for _, ex := range w.Exercises {
			for _, s := range ex.Sets {
				if !isWorking(s) {
					continue
				}
				pr, ok := byID[ex.Exercise.ID]
				if !ok {
					pr = &models.PersonalRecord{ExerciseID: ex.Exercise.ID, ExerciseName: ex.Exercise.Name}
					byID[ex.Exercise.ID] = pr
				}
				if s.Weight > pr.MaxWeight || (s.Weight == pr.MaxWeight && s.Reps > pr.MaxWeightReps) {
					pr.MaxWeight = s.Weight
					pr.MaxWeightReps = s.Reps
					pr.AchievedAt = at
				}
				if v := s.Weight * float64(s.Reps); v > pr.BestVolume {
					pr.BestVolume = v
				}
				if e := Estimate1RM(s.Weight, s.Reps); e > pr.Estimated1RM {
					pr.Estimated1RM = e
				}
			}
		}
	}

	result := make([]models.PersonalRecord, 0, len(byID))
	for _, pr := range byID {
		result = append(result, *pr)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ExerciseName != result[j].ExerciseName {
			return result[i].ExerciseName < result[j].ExerciseName
		}
		return result[i].ExerciseID < result[j].ExerciseID
	})
	return result
}

// VolumeWeek aggregates strength volume for one ISO week.
type VolumeWeek struct {
	Week        string    `json:"week"`
	Start       time.Time `json:"start"`
	Sessions    int       `json:"sessions"`
	WorkingSets int       `json:"workingSets"`
	TotalReps   int       `json:"totalReps"`
	TonnageKg   float64   `json:"tonnageKg"`
}

// WeeklyVolume aggregates completed workouts per ISO week, oldest first.
func WeeklyVolume(workouts []models.Workout) []VolumeWeek {
	byWeek := make(map[string]*VolumeWeek)
	for _, w := range workouts {
		if w.CompletedAt == nil {
			continue
		}
		at := w.CompletedAt.UTC()
		year, week := at.ISOWeek()
		key := fmt.Sprintf("%d-W%02d", year, week)
		vw, ok := byWeek[key]
		if !ok {
			vw = &VolumeWeek{Week: key, Start: weekStart(at)}
			byWeek[key] = vw
		}
		vw.Sessions++
		for _, ex := range w.Exercises {
			for _, s := range ex.Sets {
				if !isWorking(s) {
					continue
				}
				vw.WorkingSets++
				vw.TotalReps += s.Reps
				vw.TonnageKg += s.Weight * float64(s.Reps)
			}
		}
	}

	result := make([]VolumeWeek, 0, len(byWeek))
	for _, vw := range byWeek {
		result = append(result, *vw)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Start.Before(result[j].Start) })
	return result
}

// weekStart returns midnight UTC of the Monday starting t's ISO week.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
