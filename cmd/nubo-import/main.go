package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/nubo/training/internal/catalog"
	"github.com/nubo/training/internal/ingest"
	"github.com/nubo/training/internal/ingest/alpha"
	"github.com/nubo/training/internal/localdb"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	csvPath := flag.String("file", "", "path to an Alpha Progression CSV export")
	dbPath := flag.String("db", "", "path to a local SQLite database")
	serverURL := flag.String("server", "", "NUBO server URL to upload to instead of a local database")
	apiKey := flag.String("api-key", os.Getenv("NUBO_API_KEY"), "API key for -server uploads")
	userID := flag.Int("user", 1, "user id for local imports")
	dryRun := flag.Bool("dry-run", false, "parse the export and print a summary without storing anything")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("nubo-import", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *csvPath == "" || (!*dryRun && (*dbPath == "") == (*serverURL == "")) {
		fmt.Fprintf(os.Stderr, "Usage: nubo-import -file <export.csv> (-db <path> | -server <URL> | -dry-run)\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Error("failed to open export", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	ctx := context.Background()
	var result *ingest.Result
	switch {
	case *dryRun:
		result, err = summarize(f)
	case *serverURL != "":
		result, err = upload(ctx, strings.TrimRight(*serverURL, "/"), *apiKey, f)
	default:
		var db *localdb.DB
		db, err = localdb.Open(*dbPath)
		if err != nil {
			log.Error("failed to open database", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		result, err = alpha.NewProvider(db, catalog.Default(), log).Ingest(ctx, f, *userID)
	}
	if err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}

	log.Info("import complete",
		"sessions", result.SessionsReceived,
		"workouts", result.WorkoutsSaved,
		"sets", result.SetsReceived,
		"warmups", result.WarmupSets,
	)
	for _, name := range result.UnmatchedExercises {
		log.Warn("exercise not in catalog", "name", name)
	}
}

func summarize(r io.Reader) (*ingest.Result, error) {
	sessions, err := alpha.Parse(r)
	if err != nil {
		return nil, err
	}
	res := &ingest.Result{SessionsReceived: len(sessions)}
	for _, s := range sessions {
		for _, ex := range s.Exercises {
			for _, set := range ex.Sets {
				res.SetsReceived++
				if set.IsWarmup {
					res.WarmupSets++
				}
			}
		}
	}
	return res, nil
}

func upload(ctx context.Context, serverURL, apiKey string, body io.Reader) (*ingest.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverURL+"/api/v1/ingest/alpha", body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "text/csv")
	req.Header.Set("X-API-Key", apiKey)

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	var res ingest.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &res, nil
}
