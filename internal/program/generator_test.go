package program

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/nubo/training/internal/catalog"
	"github.com/nubo/training/internal/models"
)

var fixedNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// counterIDs returns a deterministic id generator: id-1, id-2, ...
func counterIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestGenerator() *Generator {
	return New(catalog.Default().All(),
		WithIDGenerator(counterIDs()),
		WithClock(func() time.Time { return fixedNow }))
}

func allEquipment() []models.Equipment {
	return append([]models.Equipment(nil), models.AllEquipment...)
}

func exerciseIDs(t models.WorkoutTemplate) []string {
	ids := make([]string, len(t.Exercises))
	for i, te := range t.Exercises {
		ids[i] = te.Exercise.ID
	}
	return ids
}

// TestSplitCoverage verifies the template count per weekly frequency, including
// unsupported frequencies which yield an empty program instead of an error.
func TestSplitCoverage(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{2, 2}, {3, 3}, {4, 4}, {5, 3}, {6, 6},
		{0, 0}, {1, 0}, {7, 0}, {-3, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d days", tt.days), func(t *testing.T) {
			p := newTestGenerator().Generate(models.AIProgramRequest{
				Goal:        models.GoalHypertrophy,
				Experience:  models.ExperienceIntermediate,
				DaysPerWeek: tt.days,
				Duration:    8,
				Equipment:   allEquipment(),
			})
			if len(p.Templates) != tt.want {
				t.Errorf("templates = %d, want %d", len(p.Templates), tt.want)
			}
			if p.Templates == nil {
				t.Error("templates is nil, want empty slice")
			}
			if p.Name == "" || p.Description == "" || p.Schedule == "" {
				t.Errorf("program text missing: %+v", p)
			}
		})
	}
}

func TestTemplateNamesPerSplit(t *testing.T) {
	tests := []struct {
		days int
		want []string
	}{
		{2, []string{"Фулбади A", "Фулбади B"}},
		{3, []string{"Фулбади A", "Фулбади B", "Фулбади C"}},
		{4, []string{"Верх A", "Низ A", "Верх B", "Низ B"}},
		{5, []string{"Жим A", "Тяга A", "Ноги A"}},
		{6, []string{"Жим A", "Тяга A", "Ноги A", "Жим B", "Тяга B", "Ноги B"}},
	}
	for _, tt := range tests {
		p := newTestGenerator().Generate(models.AIProgramRequest{
			Goal: models.GoalStrength, Experience: models.ExperienceBeginner,
			DaysPerWeek: tt.days, Duration: 4, Equipment: allEquipment(),
		})
		var got []string
		for _, tpl := range p.Templates {
			got = append(got, tpl.Name)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%d days: template names mismatch (-want +got):\n%s", tt.days, diff)
		}
	}
}

// TestFullBodySelection verifies first-match slot filling against the
// built-in catalog.
func TestFullBodySelection(t *testing.T) {
	p := newTestGenerator().Generate(models.AIProgramRequest{
		Goal: models.GoalStrength, Experience: models.ExperienceIntermediate,
		DaysPerWeek: 2, Duration: 6, Equipment: allEquipment(),
	})
	want := []string{"barbell-squat", "barbell-bench-press", "barbell-row", "overhead-press", "plank"}
	if diff := cmp.Diff(want, exerciseIDs(p.Templates[0])); diff != "" {
		t.Errorf("full body A mismatch (-want +got):\n%s", diff)
	}
}

// TestLowerBodyExcludesFirstLegExercise verifies the second leg slot never
// repeats the exercise picked by the first one.
func TestLowerBodyExcludesFirstLegExercise(t *testing.T) {
	p := newTestGenerator().Generate(models.AIProgramRequest{
		Goal: models.GoalHypertrophy, Experience: models.ExperienceAdvanced,
		DaysPerWeek: 4, Duration: 8, Equipment: allEquipment(),
	})
	lowerA := p.Templates[1]
	want := []string{"barbell-squat", "romanian-deadlift", "hip-thrust", "plank"}
	if diff := cmp.Diff(want, exerciseIDs(lowerA)); diff != "" {
		t.Errorf("lower A mismatch (-want +got):\n%s", diff)
	}
	for _, tpl := range p.Templates {
		ids := exerciseIDs(tpl)
		if strings.HasPrefix(tpl.Name, "Низ") && len(ids) >= 2 && ids[0] == ids[1] {
			t.Errorf("%s repeats leg exercise %q", tpl.Name, ids[0])
		}
	}
}

// TestUnmatchedSlotsDropped verifies that a restricted equipment set shrinks
// templates rather than failing.
func TestUnmatchedSlotsDropped(t *testing.T) {
	p := newTestGenerator().Generate(models.AIProgramRequest{
		Goal: models.GoalHypertrophy, Experience: models.ExperienceBeginner,
		DaysPerWeek: 2, Duration: 4,
		Equipment: []models.Equipment{models.EquipmentBarbell},
	})
	if diff := cmp.Diff([]string{"barbell-squat", "barbell-bench-press", "barbell-row", "overhead-press"},
		exerciseIDs(p.Templates[0])); diff != "" {
		t.Errorf("full body A mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"romanian-deadlift", "hip-thrust"}, exerciseIDs(p.Templates[1])); diff != "" {
		t.Errorf("full body B mismatch (-want +got):\n%s", diff)
	}

	empty := newTestGenerator().Generate(models.AIProgramRequest{
		Goal: models.GoalHypertrophy, Experience: models.ExperienceBeginner,
		DaysPerWeek: 3, Duration: 4,
	})
	for _, tpl := range empty.Templates {
		if len(tpl.Exercises) != 0 {
			t.Errorf("%s has %d exercises with no equipment allowed, want 0", tpl.Name, len(tpl.Exercises))
		}
	}
}

// TestEquipmentFilter verifies every selected exercise is usable with the
// requested equipment.
func TestEquipmentFilter(t *testing.T) {
	allowed := []models.Equipment{models.EquipmentDumbbell, models.EquipmentBodyweight}
	p := newTestGenerator().Generate(models.AIProgramRequest{
		Goal: models.GoalWeightLoss, Experience: models.ExperienceIntermediate,
		DaysPerWeek: 6, Duration: 12, Equipment: allowed,
	})
	for _, tpl := range p.Templates {
		for _, te := range tpl.Exercises {
			if !te.Exercise.Uses(allowed) {
				t.Errorf("%s: %s needs %v, not in %v", tpl.Name, te.Exercise.ID, te.Exercise.Equipment, allowed)
			}
		}
	}
}

// TestDeterminism verifies identical requests produce identical programs when
// ids and clock are fixed, and identical selections when they are not.
func TestDeterminism(t *testing.T) {
	req := models.AIProgramRequest{
		Goal: models.GoalHypertrophy, Experience: models.ExperienceAdvanced,
		DaysPerWeek: 6, Duration: 10, Equipment: allEquipment(),
	}
	a := newTestGenerator().Generate(req)
	b := newTestGenerator().Generate(req)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("programs differ (-a +b):\n%s", diff)
	}

	g := New(catalog.Default().All())
	c, d := g.Generate(req), g.Generate(req)
	if c.ID == d.ID {
		t.Error("default generator reused program id")
	}
	for i := range c.Templates {
		if diff := cmp.Diff(exerciseIDs(c.Templates[i]), exerciseIDs(d.Templates[i])); diff != "" {
			t.Errorf("template %d selection differs:\n%s", i, diff)
		}
	}
}

func TestTemplateInvariants(t *testing.T) {
	p := newTestGenerator().Generate(models.AIProgramRequest{
		Goal: models.GoalEndurance, Experience: models.ExperienceAdvanced,
		DaysPerWeek: 3, Duration: 6, Equipment: allEquipment(),
	})
	for _, tpl := range p.Templates {
		if !tpl.IsSystemTemplate {
			t.Errorf("%s: IsSystemTemplate = false", tpl.Name)
		}
		if tpl.UsageCount != 0 || tpl.UserID != 0 {
			t.Errorf("%s: usage=%d user=%d, want 0/0", tpl.Name, tpl.UsageCount, tpl.UserID)
		}
		if !tpl.CreatedAt.Equal(fixedNow) || !tpl.UpdatedAt.Equal(fixedNow) {
			t.Errorf("%s: timestamps = %v/%v, want %v", tpl.Name, tpl.CreatedAt, tpl.UpdatedAt, fixedNow)
		}
		for _, te := range tpl.Exercises {
			if te.Sets != 3 || te.TargetReps != "15-20" || te.RestTimer != 45 {
				t.Errorf("%s/%s: sets=%d reps=%q rest=%d, want 3/15-20/45",
					tpl.Name, te.Exercise.ID, te.Sets, te.TargetReps, te.RestTimer)
			}
		}
	}
	if p.Duration != 6 {
		t.Errorf("duration = %d, want 6", p.Duration)
	}
}

// TestRestrictionsIgnored verifies the free-text restrictions field does not
// change exercise selection.
func TestRestrictionsIgnored(t *testing.T) {
	req := models.AIProgramRequest{
		Goal: models.GoalStrength, Experience: models.ExperienceBeginner,
		DaysPerWeek: 4, Duration: 8, Equipment: allEquipment(),
	}
	plain := newTestGenerator().Generate(req)
	req.Restrictions = "болит колено, без приседаний"
	restricted := newTestGenerator().Generate(req)
	for i := range plain.Templates {
		if diff := cmp.Diff(exerciseIDs(plain.Templates[i]), exerciseIDs(restricted.Templates[i])); diff != "" {
			t.Errorf("template %d changed by restrictions:\n%s", i, diff)
		}
	}
}

func TestSetsReps(t *testing.T) {
	tests := []struct {
		goal       models.Goal
		experience models.Experience
		wantSets   int
		wantReps   string
	}{
		{models.GoalStrength, models.ExperienceBeginner, 2, "4-6"},
		{models.GoalStrength, models.ExperienceIntermediate, 3, "4-6"},
		{models.GoalStrength, models.ExperienceAdvanced, 4, "4-6"},
		{models.GoalHypertrophy, models.ExperienceBeginner, 2, "8-12"},
		{models.GoalHypertrophy, models.ExperienceIntermediate, 3, "8-12"},
		{models.GoalHypertrophy, models.ExperienceAdvanced, 4, "8-12"},
		{models.GoalEndurance, models.ExperienceBeginner, 1, "15-20"},
		{models.GoalEndurance, models.ExperienceIntermediate, 2, "15-20"},
		{models.GoalEndurance, models.ExperienceAdvanced, 3, "15-20"},
		{models.GoalWeightLoss, models.ExperienceBeginner, 2, "12-15"},
		{models.GoalWeightLoss, models.ExperienceIntermediate, 3, "12-15"},
		{models.GoalWeightLoss, models.ExperienceAdvanced, 4, "12-15"},
	}
	for _, tt := range tests {
		sets, reps := SetsReps(tt.goal, tt.experience)
		if sets != tt.wantSets || reps != tt.wantReps {
			t.Errorf("SetsReps(%s, %s) = (%d, %q), want (%d, %q)",
				tt.goal, tt.experience, sets, reps, tt.wantSets, tt.wantReps)
		}
	}
}

func TestRestTimer(t *testing.T) {
	tests := []struct {
		goal models.Goal
		want int
	}{
		{models.GoalStrength, 180},
		{models.GoalHypertrophy, 90},
		{models.GoalEndurance, 45},
		{models.GoalWeightLoss, 60},
	}
	for _, tt := range tests {
		if got := RestTimer(tt.goal); got != tt.want {
			t.Errorf("RestTimer(%s) = %d, want %d", tt.goal, got, tt.want)
		}
	}
}

func TestSchedule(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{2, "Пн, Чт"},
		{3, "Пн, Ср, Пт"},
		{4, "Пн, Вт, Чт, Пт"},
		{5, "Пн, Вт, Ср, Пт, Сб"},
		{6, "Пн, Вт, Ср, Чт, Пт, Сб"},
		{1, FlexibleSchedule},
		{7, FlexibleSchedule},
	}
	for _, tt := range tests {
		if got := Schedule(tt.days); got != tt.want {
			t.Errorf("Schedule(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestNameAndDescription(t *testing.T) {
	req := models.AIProgramRequest{
		Goal: models.GoalStrength, Experience: models.ExperienceBeginner,
		DaysPerWeek: 3, Duration: 8,
	}
	if got, want := Name(req), "Сила | 3x неделя | 8 недель"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	want := "Программа для новичка на 3 тренировки в неделю с упором на развитие силы."
	if got := Description(req); got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}
}
