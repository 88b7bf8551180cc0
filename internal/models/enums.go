package models

// MuscleGroup is the primary muscle group an exercise trains.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleArms      MuscleGroup = "arms"
	MuscleLegs      MuscleGroup = "legs"
	MuscleAbs       MuscleGroup = "abs"
	MuscleGlutes    MuscleGroup = "glutes"
	MuscleFullBody  MuscleGroup = "fullBody"
	MuscleOther     MuscleGroup = "other"
)

// MuscleGroups lists every muscle group in display order.
var MuscleGroups = []MuscleGroup{
	MuscleChest, MuscleBack, MuscleShoulders, MuscleArms, MuscleLegs,
	MuscleAbs, MuscleGlutes, MuscleFullBody, MuscleOther,
}

func (m MuscleGroup) Valid() bool {
	for _, v := range MuscleGroups {
		if m == v {
			return true
		}
	}
	return false
}

// Equipment is a piece of equipment an exercise can be performed with.
type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentMachine    Equipment = "machine"
	EquipmentCable      Equipment = "cable"
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentBands      Equipment = "bands"
	EquipmentOther      Equipment = "other"
)

// AllEquipment lists every equipment value.
var AllEquipment = []Equipment{
	EquipmentBarbell, EquipmentDumbbell, EquipmentMachine, EquipmentCable,
	EquipmentBodyweight, EquipmentKettlebell, EquipmentBands, EquipmentOther,
}

func (e Equipment) Valid() bool {
	for _, v := range AllEquipment {
		if e == v {
			return true
		}
	}
	return false
}

// Goal is the training goal chosen in the program questionnaire.
type Goal string

const (
	GoalStrength    Goal = "strength"
	GoalHypertrophy Goal = "hypertrophy"
	GoalEndurance   Goal = "endurance"
	GoalWeightLoss  Goal = "weightLoss"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalStrength, GoalHypertrophy, GoalEndurance, GoalWeightLoss:
		return true
	}
	return false
}

// Experience is the self-reported training experience level.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

func (e Experience) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

// SetType distinguishes timer modes of a set.
type SetType string

const (
	SetStandard SetType = "standard"
	SetAMRAP    SetType = "amrap"
	SetEMOM     SetType = "emom"
)

func (s SetType) Valid() bool {
	switch s {
	case SetStandard, SetAMRAP, SetEMOM:
		return true
	}
	return false
}

// ProgressionType selects an auto-progression strategy.
type ProgressionType string

const (
	ProgressionLinear ProgressionType = "linear"
	ProgressionDouble ProgressionType = "double"
	ProgressionWave   ProgressionType = "wave"
	ProgressionDeload ProgressionType = "deload"
)

func (p ProgressionType) Valid() bool {
	switch p {
	case ProgressionLinear, ProgressionDouble, ProgressionWave, ProgressionDeload:
		return true
	}
	return false
}
