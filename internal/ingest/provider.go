// Package ingest holds what workout history importers share.
package ingest

// Result holds the outcome of an import.
type Result struct {
	SessionsReceived int `json:"sessionsReceived"`
	WorkoutsSaved    int `json:"workoutsSaved"`
	SetsReceived     int `json:"setsReceived"`
	WarmupSets       int `json:"warmupSets"`

	// UnmatchedExercises lists names not found in the catalog. Their sets are
	// kept under generated "alpha-" exercise ids.
	UnmatchedExercises []string `json:"unmatchedExercises,omitempty"`
}
