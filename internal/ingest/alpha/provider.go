package alpha

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/nubo/training/internal/catalog"
	"github.com/nubo/training/internal/ingest"
	"github.com/nubo/training/internal/models"
)

// WorkoutSaver stores imported workouts. store.Store satisfies it.
type WorkoutSaver interface {
	SaveWorkout(ctx context.Context, w models.Workout) error
}

// Provider imports Alpha Progression CSV exports as workouts.
type Provider struct {
	db      WorkoutSaver
	matcher *matcher
	log     *slog.Logger
}

// NewProvider creates a new Alpha Progression import provider.
func NewProvider(db WorkoutSaver, cat *catalog.Catalog, log *slog.Logger) *Provider {
	return &Provider{db: db, matcher: newMatcher(cat), log: log}
}

// Ingest parses a CSV export and stores one completed workout per session.
// Re-importing an export replaces the workouts it created before.
func (p *Provider) Ingest(ctx context.Context, r io.Reader, userID int) (*ingest.Result, error) {
	sessions, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	result := &ingest.Result{SessionsReceived: len(sessions)}
	unmatched := map[string]bool{}
	for _, s := range sessions {
		w, missing := p.matcher.toWorkout(s, userID)
		for _, name := range missing {
			unmatched[name] = true
		}
		for _, ex := range w.Exercises {
			for _, set := range ex.Sets {
				result.SetsReceived++
				if set.IsWarmup {
					result.WarmupSets++
				}
			}
		}
		if err := p.db.SaveWorkout(ctx, w); err != nil {
			return nil, fmt.Errorf("saving workout for session %s: %w", s.Date.Format("2006-01-02"), err)
		}
		result.WorkoutsSaved++
	}

	for name := range unmatched {
		result.UnmatchedExercises = append(result.UnmatchedExercises, name)
	}
	sort.Strings(result.UnmatchedExercises)

	p.log.Info("alpha import", "user", userID, "sessions", result.SessionsReceived,
		"sets", result.SetsReceived, "unmatched", len(result.UnmatchedExercises))
	return result, nil
}
