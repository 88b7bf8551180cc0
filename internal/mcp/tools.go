package mcp

import (
	"context"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nubo/training/internal/models"
	"github.com/nubo/training/internal/progression"
	"github.com/nubo/training/internal/records"
)

// defaultTimeRange returns start/end defaulting to the last 7 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -7)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

func splitEquipment(s string) []models.Equipment {
	var out []models.Equipment
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, models.Equipment(part))
		}
	}
	return out
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// --- Tool definitions ---

var toolGenerateProgram = mcp.NewTool("generate_program",
	mcp.WithDescription("Generate a multi-week training program from a questionnaire. Returns workout templates with exercises, sets, rep ranges and rest times, plus a weekly schedule."),
	mcp.WithString("goal", mcp.Required(), mcp.Description("Training goal"), mcp.Enum("strength", "hypertrophy", "endurance", "weightLoss")),
	mcp.WithString("experience", mcp.Required(), mcp.Description("Training experience"), mcp.Enum("beginner", "intermediate", "advanced")),
	mcp.WithNumber("days_per_week", mcp.Required(), mcp.Description("Training days per week (2-6 have a fixed split)")),
	mcp.WithNumber("duration_weeks", mcp.Description("Program length in weeks. Defaults to 8.")),
	mcp.WithString("equipment", mcp.Required(), mcp.Description("Comma-separated available equipment, e.g. 'barbell,dumbbell,bodyweight'")),
	mcp.WithString("restrictions", mcp.Description("Free-text injuries or limitations, stored with the request")),
	mcp.WithBoolean("save", mcp.Description("Store the program and its templates. Defaults to false.")),
)

var toolListPrograms = mcp.NewTool("list_programs",
	mcp.WithDescription("List saved training programs, newest first, without their templates."),
)

var toolSuggestProgression = mcp.NewTool("suggest_progression",
	mcp.WithDescription("Suggest weight and reps for the next session of an exercise based on completed workouts. Detected stagnation over the last four sessions overrides the strategy with a deload."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise id, e.g. barbell-squat")),
	mcp.WithString("type", mcp.Description("Progression strategy. Defaults to linear."), mcp.Enum("linear", "double", "wave", "deload")),
	mcp.WithNumber("target_reps", mcp.Description("Linear: reps to reach before adding weight. Defaults to the last set's reps.")),
	mcp.WithNumber("min_reps", mcp.Description("Double: bottom of the rep range. Defaults to 6.")),
	mcp.WithNumber("max_reps", mcp.Description("Double: top of the rep range. Defaults to 12.")),
	mcp.WithNumber("week", mcp.Description("Wave: program week number, cycled light/medium/heavy.")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List exercises from the catalog and the user's custom exercises, optionally filtered."),
	mcp.WithString("muscle_group", mcp.Description("Primary muscle group"), mcp.Enum(enumValues(models.MuscleGroups)...)),
	mcp.WithString("equipment", mcp.Description("Comma-separated equipment; exercises usable with any of them match")),
)

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("Retrieve workouts with exercises and sets, most recent first."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("Personal records per exercise: heaviest set, best single-set volume and estimated 1RM (Epley)."),
	mcp.WithString("exercise_id", mcp.Description("Only return the record of this exercise")),
)

var toolGetWeeklyVolume = mcp.NewTool("get_weekly_volume",
	mcp.WithDescription("Weekly training volume (sessions, working sets, reps, tonnage in kg) per ISO week, oldest first."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

// --- Tool handlers ---

func (h *handlers) generateProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goal, err := req.RequireString("goal")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	experience, err := req.RequireString("experience")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	days, err := req.RequireInt("days_per_week")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	equipment, err := req.RequireString("equipment")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p := h.gen.Generate(models.AIProgramRequest{
		Goal:         models.Goal(goal),
		Experience:   models.Experience(experience),
		DaysPerWeek:  days,
		Duration:     req.GetInt("duration_weeks", 8),
		Equipment:    splitEquipment(equipment),
		Restrictions: req.GetString("restrictions", ""),
	})

	uid := UserIDFromContext(ctx)
	p = p.AssignOwner(uid)
	if req.GetBool("save", false) {
		if err := h.ds.SaveProgram(ctx, p); err != nil {
			h.log.Error("mcp generate_program", "error", err)
			return mcp.NewToolResultError("saving program failed: " + err.Error()), nil
		}
	}

	result, err := mcp.NewToolResultJSON(p)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listPrograms(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	programs, err := h.ds.ListPrograms(ctx, UserIDFromContext(ctx))
	if err != nil {
		h.log.Error("mcp list_programs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(programs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) suggestProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts := progression.Options{
		Type:       models.ProgressionType(req.GetString("type", "")),
		TargetReps: req.GetInt("target_reps", 0),
		MinReps:    req.GetInt("min_reps", 0),
		MaxReps:    req.GetInt("max_reps", 0),
		Week:       req.GetInt("week", 0),
	}
	if opts.Type != "" && !opts.Type.Valid() {
		return mcp.NewToolResultError("unknown progression type " + string(opts.Type)), nil
	}

	workouts, err := h.ds.ListWorkouts(ctx, UserIDFromContext(ctx), 0)
	if err != nil {
		h.log.Error("mcp suggest_progression", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	advice, ok := progression.ForExercise(workouts, exerciseID, opts)
	if !ok {
		return mcp.NewToolResultError("no completed sets recorded for " + exerciseID), nil
	}

	result, err := mcp.NewToolResultJSON(advice)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	custom, err := h.ds.ListCustomExercises(ctx, UserIDFromContext(ctx))
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	mg := models.MuscleGroup(req.GetString("muscle_group", ""))
	equipment := splitEquipment(req.GetString("equipment", ""))
	exercises := []models.Exercise{}
	for _, ex := range h.cat.Merge(custom).All() {
		if mg != "" && ex.MuscleGroup != mg {
			continue
		}
		if len(equipment) > 0 && !ex.Uses(equipment) {
			continue
		}
		exercises = append(exercises, ex)
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// workoutsInRange loads all workouts and keeps those performed in [start, end].
func (h *handlers) workoutsInRange(ctx context.Context, req mcp.CallToolRequest) ([]models.Workout, *mcp.CallToolResult) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return nil, mcp.NewToolResultError("invalid date format: " + err.Error())
	}

	all, err := h.ds.ListWorkouts(ctx, UserIDFromContext(ctx), 0)
	if err != nil {
		h.log.Error("mcp list workouts", "tool", req.Params.Name, "error", err)
		return nil, mcp.NewToolResultError("query failed: " + err.Error())
	}

	workouts := []models.Workout{}
	for _, w := range all {
		at := w.PerformedAt()
		if at.Before(start) || at.After(end) {
			continue
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workouts, errResult := h.workoutsInRange(ctx, req)
	if errResult != nil {
		return errResult, nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPersonalRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workouts, err := h.ds.ListWorkouts(ctx, UserIDFromContext(ctx), 0)
	if err != nil {
		h.log.Error("mcp get_personal_records", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	prs := records.PersonalRecords(workouts)
	if id := req.GetString("exercise_id", ""); id != "" {
		filtered := []models.PersonalRecord{}
		for _, pr := range prs {
			if pr.ExerciseID == id {
				filtered = append(filtered, pr)
			}
		}
		prs = filtered
	}

	result, err := mcp.NewToolResultJSON(prs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeeklyVolume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workouts, errResult := h.workoutsInRange(ctx, req)
	if errResult != nil {
		return errResult, nil
	}

	result, err := mcp.NewToolResultJSON(records.WeeklyVolume(workouts))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
