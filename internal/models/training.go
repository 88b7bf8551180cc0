package models

import "time"

// Exercise is a catalog entry. Built-in exercises have UserID 0; custom
// exercises belong to the user who created them.
type Exercise struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	NameEn       string      `json:"nameEn,omitempty" yaml:"name_en"`
	MuscleGroup  MuscleGroup `json:"muscleGroup" yaml:"muscle_group"`
	Equipment    []Equipment `json:"equipment" yaml:"equipment"`
	Instructions []string    `json:"instructions,omitempty" yaml:"instructions"`
	IsCustom     bool        `json:"isCustom" yaml:"-"`
	UserID       int         `json:"userId,omitempty" yaml:"-"`
}

// Uses reports whether the exercise can be performed with any of the allowed equipment.
func (e Exercise) Uses(allowed []Equipment) bool {
	for _, have := range e.Equipment {
		for _, want := range allowed {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Requires reports whether eq is one of the exercise's equipment options.
func (e Exercise) Requires(eq Equipment) bool {
	for _, have := range e.Equipment {
		if have == eq {
			return true
		}
	}
	return false
}

// TemplateExercise places an exercise inside a workout template.
type TemplateExercise struct {
	ID         string   `json:"id"`
	Exercise   Exercise `json:"exercise"`
	Sets       int      `json:"sets"`
	TargetReps string   `json:"targetReps"`
	RestTimer  int      `json:"restTimer"`
	Superset   string   `json:"superset,omitempty"`
}

// WorkoutTemplate is a reusable session blueprint.
type WorkoutTemplate struct {
	ID               string             `json:"id"`
	UserID           int                `json:"userId"`
	Name             string             `json:"name"`
	Description      string             `json:"description"`
	Exercises        []TemplateExercise `json:"exercises"`
	UsageCount       int                `json:"usageCount"`
	IsSystemTemplate bool               `json:"isSystemTemplate"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// AIProgramRequest is the program questionnaire.
type AIProgramRequest struct {
	Goal         Goal        `json:"goal"`
	Experience   Experience  `json:"experience"`
	DaysPerWeek  int         `json:"daysPerWeek"`
	Duration     int         `json:"duration"`
	Equipment    []Equipment `json:"equipment"`
	Restrictions string      `json:"restrictions,omitempty"`
}

// AIProgram is a generated multi-week plan.
type AIProgram struct {
	ID          string            `json:"id"`
	UserID      int               `json:"userId"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Duration    int               `json:"duration"`
	Templates   []WorkoutTemplate `json:"templates"`
	Schedule    string            `json:"schedule"`
	Request     AIProgramRequest  `json:"request"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// AssignOwner returns a copy of the program with the user stamped on the
// program and every template.
func (p AIProgram) AssignOwner(userID int) AIProgram {
	out := p
	out.UserID = userID
	out.Templates = make([]WorkoutTemplate, len(p.Templates))
	for i, t := range p.Templates {
		t.UserID = userID
		out.Templates[i] = t
	}
	return out
}

// WorkoutSet is one performed or planned set.
type WorkoutSet struct {
	ID        string  `json:"id"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	RPE       int     `json:"rpe,omitempty"`
	Completed bool    `json:"completed"`
	IsWarmup  bool    `json:"isWarmup"`
	SetType   SetType `json:"setType,omitempty"`
}

// WorkoutExercise is an exercise instance inside a live session.
// SupersetID is empty and SupersetOrder zero when not paired.
type WorkoutExercise struct {
	ID            string       `json:"id"`
	Exercise      Exercise     `json:"exercise"`
	Sets          []WorkoutSet `json:"sets"`
	Notes         string       `json:"notes,omitempty"`
	SupersetID    string       `json:"supersetId,omitempty"`
	SupersetOrder int          `json:"supersetOrder,omitempty"`
}

// MaxWeight returns the heaviest weight across all sets.
func (we WorkoutExercise) MaxWeight() float64 {
	var maxW float64
	for _, s := range we.Sets {
		if s.Weight > maxW {
			maxW = s.Weight
		}
	}
	return maxW
}

// Workout is a live or finished training session.
type Workout struct {
	ID          string            `json:"id"`
	UserID      int               `json:"userId"`
	Name        string            `json:"name"`
	TemplateID  string            `json:"templateId,omitempty"`
	StartedAt   time.Time         `json:"startedAt"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
	Exercises   []WorkoutExercise `json:"exercises"`
	Notes       string            `json:"notes,omitempty"`
}

// PerformedAt is the completion time, or the start time for unfinished sessions.
func (w Workout) PerformedAt() time.Time {
	if w.CompletedAt != nil {
		return *w.CompletedAt
	}
	return w.StartedAt
}

// ProgressionSuggestion is the calculator's advice for the next session.
type ProgressionSuggestion struct {
	Type   ProgressionType `json:"type"`
	Weight float64         `json:"weight"`
	Reps   int             `json:"reps"`
	Reason string          `json:"reason"`
}

// BodyMeasurement is a dated set of body measurements. Zero fields were not measured.
type BodyMeasurement struct {
	ID         int64     `json:"id"`
	UserID     int       `json:"userId"`
	Date       time.Time `json:"date"`
	WeightKg   *float64  `json:"weightKg,omitempty"`
	BodyFatPct *float64  `json:"bodyFatPct,omitempty"`
	ChestCm    *float64  `json:"chestCm,omitempty"`
	WaistCm    *float64  `json:"waistCm,omitempty"`
	HipsCm     *float64  `json:"hipsCm,omitempty"`
	BicepsCm   *float64  `json:"bicepsCm,omitempty"`
	ThighCm    *float64  `json:"thighCm,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

// PersonalRecord holds the best results for one exercise.
type PersonalRecord struct {
	ExerciseID    string    `json:"exerciseId"`
	ExerciseName  string    `json:"exerciseName"`
	MaxWeight     float64   `json:"maxWeight"`
	MaxWeightReps int       `json:"maxWeightReps"`
	BestVolume    float64   `json:"bestVolume"`
	Estimated1RM  float64   `json:"estimated1RM"`
	AchievedAt    time.Time `json:"achievedAt"`
}

// User is an authenticated app user.
type User struct {
	ID          int    `json:"id"`
	Login       string `json:"login"`
	DisplayName string `json:"displayName"`
}
