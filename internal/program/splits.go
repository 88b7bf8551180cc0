package program

import "github.com/nubo/training/internal/models"

// slot is one exercise position in a template. An empty equipment matches any
// equipment. A distinct slot skips exercises already picked for the template.
type slot struct {
	muscle    models.MuscleGroup
	equipment models.Equipment
	distinct  bool
}

func (s slot) pick(pool, picked []models.Exercise) (models.Exercise, bool) {
	for _, ex := range pool {
		if ex.MuscleGroup != s.muscle {
			continue
		}
		if s.equipment != "" && !ex.Requires(s.equipment) {
			continue
		}
		if s.distinct && containsID(picked, ex.ID) {
			continue
		}
		return ex, true
	}
	return models.Exercise{}, false
}

func containsID(exercises []models.Exercise, id string) bool {
	for _, ex := range exercises {
		if ex.ID == id {
			return true
		}
	}
	return false
}

// templatePlan is a template blueprint before exercises are chosen.
type templatePlan struct {
	name        string
	description string
	slots       []slot
}

var (
	fullBodyA = templatePlan{
		name:        "Фулбади A",
		description: "Тренировка всего тела: базовые движения со штангой",
		slots: []slot{
			{muscle: models.MuscleLegs, equipment: models.EquipmentBarbell},
			{muscle: models.MuscleChest, equipment: models.EquipmentBarbell},
			{muscle: models.MuscleBack, equipment: models.EquipmentBarbell},
			{muscle: models.MuscleShoulders},
			{muscle: models.MuscleAbs},
		},
	}
	fullBodyB = templatePlan{
		name:        "Фулбади B",
		description: "Тренировка всего тела: вариации с гантелями",
		slots: []slot{
			{muscle: models.MuscleLegs, equipment: models.EquipmentDumbbell},
			{muscle: models.MuscleChest, equipment: models.EquipmentDumbbell},
			{muscle: models.MuscleBack, equipment: models.EquipmentDumbbell},
			{muscle: models.MuscleShoulders, equipment: models.EquipmentDumbbell},
			{muscle: models.MuscleGlutes},
		},
	}
	fullBodyC = templatePlan{
		name:        "Фулбади C",
		description: "Тренировка всего тела: тренажёры и блоки",
		slots: []slot{
			{muscle: models.MuscleLegs, equipment: models.EquipmentMachine},
			{muscle: models.MuscleChest, equipment: models.EquipmentMachine},
			{muscle: models.MuscleBack, equipment: models.EquipmentCable},
			{muscle: models.MuscleArms},
			{muscle: models.MuscleAbs},
		},
	}

	upperA = templatePlan{
		name:        "Верх A",
		description: "Верх тела: грудь, спина, плечи, руки",
		slots: []slot{
			{muscle: models.MuscleChest, equipment: models.EquipmentBarbell},
			{muscle: models.MuscleBack, equipment: models.EquipmentBarbell},
			{muscle: models.MuscleShoulders},
			{muscle: models.MuscleArms},
			{muscle: models.MuscleArms, distinct: true},
		},
	}
	upperB = templatePlan{
		name:        "Верх B",
		description: "Верх тела: вариации с гантелями и блоками",
		slots: []slot{
			{muscle: models.MuscleChest, equipment: models.EquipmentDumbbell},
			{muscle: models.MuscleBack, equipment: models.EquipmentCable},
			{muscle: models.MuscleShoulders, equipment: models.EquipmentDumbbell},
			{muscle: models.MuscleArms, equipment: models.EquipmentDumbbell},
			{muscle: models.MuscleArms, equipment: models.EquipmentCable},
		},
	}
	lowerA = templatePlan{
		name:        "Низ A",
		description: "Низ тела: приседания и тяговые движения",
		slots: []slot{
			{muscle: models.MuscleLegs, equipment: models.EquipmentBarbell},
			{muscle: models.MuscleLegs, distinct: true},
			{muscle: models.MuscleGlutes},
			{muscle: models.MuscleAbs},
		},
	}
	lowerB = templatePlan{
		name:        "Низ B",
		description: "Низ тела: односторонние и вспомогательные движения",
		slots: []slot{
			{muscle: models.MuscleLegs, equipment: models.EquipmentDumbbell},
			{muscle: models.MuscleLegs, distinct: true},
			{muscle: models.MuscleGlutes},
			{muscle: models.MuscleAbs},
		},
	}

	pushA = templatePlan{
		name:        "Жим A",
		description: "Жимовые движения: грудь, плечи, трицепс",
		slots: []slot{
			{muscle: models.MuscleChest, equipment: models.EquipmentBarbell},
			{muscle: models.MuscleChest, equipment: models.EquipmentDumbbell},
			{muscle: models.MuscleShoulders},
			{muscle: models.MuscleArms, equipment: models.EquipmentCable},
		},
	}
	pullA = templatePlan{
		name:        "Тяга A",
		description: "Тяговые движения: спина и бицепс",
		slots: []slot{
			{muscle: models.MuscleBack, equipment: models.EquipmentBarbell},
			{muscle: models.MuscleBack, equipment: models.EquipmentCable},
			{muscle: models.MuscleBack, equipment: models.EquipmentBodyweight},
			{muscle: models.MuscleArms, equipment: models.EquipmentBarbell},
		},
	}
	legsA = templatePlan{
		name:        "Ноги A",
		description: "Ноги и ягодицы",
		slots: []slot{
			{muscle: models.MuscleLegs, equipment: models.EquipmentBarbell},
			{muscle: models.MuscleLegs, distinct: true},
			{muscle: models.MuscleGlutes},
			{muscle: models.MuscleAbs},
		},
	}
	pushB = templatePlan{
		name:        "Жим B",
		description: "Жимовые движения: вариации с гантелями и блоками",
		slots: []slot{
			{muscle: models.MuscleChest, equipment: models.EquipmentDumbbell},
			{muscle: models.MuscleShoulders, equipment: models.EquipmentDumbbell},
			{muscle: models.MuscleChest, equipment: models.EquipmentCable},
			{muscle: models.MuscleArms, distinct: true},
		},
	}
	pullB = templatePlan{
		name:        "Тяга B",
		description: "Тяговые движения: вариации с гантелями и блоками",
		slots: []slot{
			{muscle: models.MuscleBack, equipment: models.EquipmentDumbbell},
			{muscle: models.MuscleBack, distinct: true},
			{muscle: models.MuscleShoulders, equipment: models.EquipmentCable},
			{muscle: models.MuscleArms, equipment: models.EquipmentDumbbell},
		},
	}
	legsB = templatePlan{
		name:        "Ноги B",
		description: "Ноги и ягодицы: тренажёры",
		slots: []slot{
			{muscle: models.MuscleLegs, equipment: models.EquipmentMachine},
			{muscle: models.MuscleLegs, distinct: true},
			{muscle: models.MuscleGlutes},
			{muscle: models.MuscleAbs},
		},
	}
)

// splitFor returns the template plans for a weekly training frequency.
func splitFor(daysPerWeek int) []templatePlan {
	switch daysPerWeek {
	case 2:
		return []templatePlan{fullBodyA, fullBodyB}
	case 3:
		return []templatePlan{fullBodyA, fullBodyB, fullBodyC}
	case 4:
		return []templatePlan{upperA, lowerA, upperB, lowerB}
	case 5:
		return []templatePlan{pushA, pullA, legsA}
	case 6:
		return []templatePlan{pushA, pullA, legsA, pushB, pullB, legsB}
	}
	return nil
}
