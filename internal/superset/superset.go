// Package superset pairs exercises of a live workout into supersets.
//
// All functions return new slices and never modify their input. Operations on
// ids that match nothing return an unchanged copy.
package superset

import "github.com/nubo/training/internal/models"

// colors are the display tokens a group id maps onto.
var colors = [...]string{"blue", "green", "purple", "orange", "pink", "cyan"}

// Create pairs the exercises idA and idB under a new group id, idA first.
// Existing membership of either exercise is overwritten.
func Create(exercises []models.WorkoutExercise, idA, idB string, newID func() string) []models.WorkoutExercise {
	groupID := newID()
	out := make([]models.WorkoutExercise, len(exercises))
	for i, ex := range exercises {
		switch ex.ID {
		case idA:
			ex.SupersetID = groupID
			ex.SupersetOrder = 1
		case idB:
			ex.SupersetID = groupID
			ex.SupersetOrder = 2
		}
		out[i] = ex
	}
	return out
}

// RemoveGroup clears superset membership of every exercise in groupID.
func RemoveGroup(exercises []models.WorkoutExercise, groupID string) []models.WorkoutExercise {
	out := make([]models.WorkoutExercise, len(exercises))
	for i, ex := range exercises {
		if groupID != "" && ex.SupersetID == groupID {
			ex.SupersetID = ""
			ex.SupersetOrder = 0
		}
		out[i] = ex
	}
	return out
}

// Color returns the display color of a group. Different groups may share a color.
func Color(groupID string) string {
	sum := 0
	for _, r := range groupID {
		sum += int(r)
	}
	return colors[sum%len(colors)]
}

// Position returns the A/B label of an exercise within its pair.
func Position(ex models.WorkoutExercise) string {
	if ex.SupersetOrder == 1 {
		return "A"
	}
	return "B"
}

// IsInSuperset reports whether the exercise belongs to a superset group.
func IsInSuperset(ex models.WorkoutExercise) bool {
	return ex.SupersetID != ""
}

// Exercises returns the members of groupID in workout order.
func Exercises(exercises []models.WorkoutExercise, groupID string) []models.WorkoutExercise {
	var out []models.WorkoutExercise
	if groupID == "" {
		return out
	}
	for _, ex := range exercises {
		if ex.SupersetID == groupID {
			out = append(out, ex)
		}
	}
	return out
}

// Partner returns the other member of ex's superset.
func Partner(exercises []models.WorkoutExercise, ex models.WorkoutExercise) (models.WorkoutExercise, bool) {
	if !IsInSuperset(ex) {
		return models.WorkoutExercise{}, false
	}
	for _, other := range exercises {
		if other.SupersetID == ex.SupersetID && other.ID != ex.ID {
			return other, true
		}
	}
	return models.WorkoutExercise{}, false
}
