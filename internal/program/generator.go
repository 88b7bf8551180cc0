// Package program generates multi-week training programs from the
// questionnaire using fixed split and slot rules.
package program

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nubo/training/internal/models"
)

// IDGenerator returns a fresh unique identifier.
type IDGenerator func() string

// Generator builds programs from an exercise pool.
type Generator struct {
	exercises []models.Exercise
	newID     IDGenerator
	now       func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithIDGenerator overrides the default UUID generator.
func WithIDGenerator(fn IDGenerator) Option {
	return func(g *Generator) { g.newID = fn }
}

// WithClock overrides time.Now for template timestamps.
func WithClock(fn func() time.Time) Option {
	return func(g *Generator) { g.now = fn }
}

// New creates a Generator over the given exercises, in catalog order.
func New(exercises []models.Exercise, opts ...Option) *Generator {
	g := &Generator{
		exercises: exercises,
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a program for the request. It never fails: an unsupported
// day count yields a program with no templates, and slots without a matching
// exercise are left out.
func (g *Generator) Generate(req models.AIProgramRequest) models.AIProgram {
	now := g.now()

	var pool []models.Exercise
	for _, ex := range g.exercises {
		if ex.Uses(req.Equipment) {
			pool = append(pool, ex)
		}
	}

	sets, reps := SetsReps(req.Goal, req.Experience)
	rest := RestTimer(req.Goal)

	plans := splitFor(req.DaysPerWeek)
	templates := make([]models.WorkoutTemplate, 0, len(plans))
	for _, plan := range plans {
		t := models.WorkoutTemplate{
			ID:               g.newID(),
			Name:             plan.name,
			Description:      plan.description,
			Exercises:        []models.TemplateExercise{},
			IsSystemTemplate: true,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		for _, ex := range fillSlots(pool, plan.slots) {
			t.Exercises = append(t.Exercises, models.TemplateExercise{
				ID:         g.newID(),
				Exercise:   ex,
				Sets:       sets,
				TargetReps: reps,
				RestTimer:  rest,
			})
		}
		templates = append(templates, t)
	}

	return models.AIProgram{
		ID:          g.newID(),
		Name:        Name(req),
		Description: Description(req),
		Duration:    req.Duration,
		Templates:   templates,
		Schedule:    Schedule(req.DaysPerWeek),
		Request:     req,
		CreatedAt:   now,
	}
}

// fillSlots picks the first matching exercise for each slot, in order.
func fillSlots(pool []models.Exercise, slots []slot) []models.Exercise {
	var picked []models.Exercise
	for _, s := range slots {
		if ex, ok := s.pick(pool, picked); ok {
			picked = append(picked, ex)
		}
	}
	return picked
}

// SetsReps returns the per-exercise set count and rep range for a goal and
// experience level.
func SetsReps(goal models.Goal, experience models.Experience) (int, string) {
	sets := 3
	switch experience {
	case models.ExperienceBeginner:
		sets = 2
	case models.ExperienceIntermediate:
		sets = 3
	case models.ExperienceAdvanced:
		sets = 4
	}

	switch goal {
	case models.GoalStrength:
		return sets, "4-6"
	case models.GoalHypertrophy:
		return sets, "8-12"
	case models.GoalEndurance:
		return sets - 1, "15-20"
	case models.GoalWeightLoss:
		return sets, "12-15"
	}
	return sets, "8-12"
}

// RestTimer returns the rest between sets in seconds for a goal.
func RestTimer(goal models.Goal) int {
	switch goal {
	case models.GoalStrength:
		return 180
	case models.GoalHypertrophy:
		return 90
	case models.GoalEndurance:
		return 45
	case models.GoalWeightLoss:
		return 60
	}
	return 90
}

// FlexibleSchedule is returned for day counts without a fixed weekly layout.
const FlexibleSchedule = "Гибкое расписание"

var schedules = map[int]string{
	2: "Пн, Чт",
	3: "Пн, Ср, Пт",
	4: "Пн, Вт, Чт, Пт",
	5: "Пн, Вт, Ср, Пт, Сб",
	6: "Пн, Вт, Ср, Чт, Пт, Сб",
}

// Schedule returns the weekday layout for a training frequency.
func Schedule(daysPerWeek int) string {
	if s, ok := schedules[daysPerWeek]; ok {
		return s
	}
	return FlexibleSchedule
}

var goalLabels = map[models.Goal]string{
	models.GoalStrength:    "Сила",
	models.GoalHypertrophy: "Набор массы",
	models.GoalEndurance:   "Выносливость",
	models.GoalWeightLoss:  "Похудение",
}

var goalFocus = map[models.Goal]string{
	models.GoalStrength:    "развитие силы",
	models.GoalHypertrophy: "набор мышечной массы",
	models.GoalEndurance:   "развитие выносливости",
	models.GoalWeightLoss:  "снижение веса",
}

var experienceLabels = map[models.Experience]string{
	models.ExperienceBeginner:     "новичка",
	models.ExperienceIntermediate: "среднего уровня",
	models.ExperienceAdvanced:     "продвинутого уровня",
}

// GoalLabel returns the display label of a goal, falling back to the raw value.
func GoalLabel(goal models.Goal) string {
	if l, ok := goalLabels[goal]; ok {
		return l
	}
	return string(goal)
}

// Name renders the program title, e.g. "Сила | 3x неделя | 8 недель".
func Name(req models.AIProgramRequest) string {
	return fmt.Sprintf("%s | %dx неделя | %d недель", GoalLabel(req.Goal), req.DaysPerWeek, req.Duration)
}

// Description renders the one-sentence program summary.
func Description(req models.AIProgramRequest) string {
	focus, ok := goalFocus[req.Goal]
	if !ok {
		focus = string(req.Goal)
	}
	level, ok := experienceLabels[req.Experience]
	if !ok {
		level = string(req.Experience)
	}
	return fmt.Sprintf("Программа для %s на %d тренировки в неделю с упором на %s.", level, req.DaysPerWeek, focus)
}
