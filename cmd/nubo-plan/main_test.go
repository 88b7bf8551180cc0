package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nubo/training/internal/models"
)

func TestParseEquipment(t *testing.T) {
	got := parseEquipment(" barbell, ,dumbbell,")
	if len(got) != 2 || got[0] != models.EquipmentBarbell || got[1] != models.EquipmentDumbbell {
		t.Errorf("parseEquipment = %v, want [barbell dumbbell]", got)
	}
	if got := parseEquipment(""); len(got) != 0 {
		t.Errorf("parseEquipment(empty) = %v, want none", got)
	}
}

func TestWriteText(t *testing.T) {
	p := models.AIProgram{
		Name:        "Сила | 2x неделя | 4 недель",
		Description: "Программа",
		Schedule:    "Пн, Чт",
		Templates: []models.WorkoutTemplate{{
			Name:        "Фулбади A",
			Description: "Всё тело",
			Exercises: []models.TemplateExercise{{
				Exercise:   models.Exercise{Name: "Приседания со штангой"},
				Sets:       2,
				TargetReps: "4-6",
				RestTimer:  180,
			}},
		}},
	}
	var buf bytes.Buffer
	if err := writeText(&buf, p); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Расписание: Пн, Чт", "Фулбади A (Всё тело)", "Приседания со штангой", "2 x 4-6", "отдых 180 с"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
