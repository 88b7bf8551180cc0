// Package export renders generated programs as spreadsheets.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nubo/training/internal/models"
)

// OverviewSheet is the name of the first sheet with program details.
const OverviewSheet = "Программа"

// maxSheetName is the Excel limit on sheet name length.
const maxSheetName = 31

var templateHeaders = []string{"#", "Упражнение", "Группа", "Подходы", "Повторы", "Отдых (сек)", "Суперсет"}

var templateWidths = []float64{5, 36, 14, 10, 10, 12, 12}

var muscleLabels = map[models.MuscleGroup]string{
	models.MuscleChest:     "Грудь",
	models.MuscleBack:      "Спина",
	models.MuscleShoulders: "Плечи",
	models.MuscleArms:      "Руки",
	models.MuscleLegs:      "Ноги",
	models.MuscleAbs:       "Пресс",
	models.MuscleGlutes:    "Ягодицы",
	models.MuscleFullBody:  "Всё тело",
	models.MuscleOther:     "Другое",
}

// ProgramXLSX writes the program as a workbook: an overview sheet followed
// by one sheet per template.
func ProgramXLSX(p models.AIProgram, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", OverviewSheet); err != nil {
		return fmt.Errorf("renaming overview sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2F5597"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := writeOverview(f, p, headerStyle); err != nil {
		return err
	}
	for i, t := range p.Templates {
		if err := writeTemplate(f, SheetName(i, t.Name), t, headerStyle); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeOverview(f *excelize.File, p models.AIProgram, headerStyle int) error {
	rows := [][]any{
		{"Название", p.Name},
		{"Описание", p.Description},
		{"Длительность (недель)", p.Duration},
		{"Расписание", p.Schedule},
		{"Тренировок", len(p.Templates)},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(OverviewSheet, cell, &row); err != nil {
			return fmt.Errorf("writing overview row: %w", err)
		}
	}
	if err := f.SetCellStyle(OverviewSheet, "A1", fmt.Sprintf("A%d", len(rows)), headerStyle); err != nil {
		return fmt.Errorf("styling overview: %w", err)
	}
	if err := f.SetColWidth(OverviewSheet, "A", "A", 24); err != nil {
		return err
	}
	return f.SetColWidth(OverviewSheet, "B", "B", 70)
}

func writeTemplate(f *excelize.File, sheet string, t models.WorkoutTemplate, headerStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %q: %w", sheet, err)
	}

	header := make([]any, len(templateHeaders))
	for i, h := range templateHeaders {
		header[i] = h
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, templateWidths[i]); err != nil {
			return err
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(templateHeaders), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, te := range t.Exercises {
		row := []any{
			i + 1,
			te.Exercise.Name,
			muscleLabel(te.Exercise.MuscleGroup),
			te.Sets,
			te.TargetReps,
			te.RestTimer,
			te.Superset,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing exercise row: %w", err)
		}
	}
	return nil
}

func muscleLabel(mg models.MuscleGroup) string {
	if l, ok := muscleLabels[mg]; ok {
		return l
	}
	return string(mg)
}

// SheetName returns a unique, Excel-safe sheet name for the i-th template.
func SheetName(i int, name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, name)
	s := []rune(fmt.Sprintf("%d. %s", i+1, name))
	if len(s) > maxSheetName {
		s = s[:maxSheetName]
	}
	return string(s)
}
