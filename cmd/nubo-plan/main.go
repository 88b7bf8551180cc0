// Command nubo-plan generates a training program offline and prints it as
// text or JSON, or writes it as an XLSX workbook.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/nubo/training/internal/catalog"
	"github.com/nubo/training/internal/export"
	"github.com/nubo/training/internal/localdb"
	"github.com/nubo/training/internal/models"
	"github.com/nubo/training/internal/program"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	goal := flag.String("goal", "hypertrophy", "goal: strength, hypertrophy, endurance, weightLoss")
	experience := flag.String("experience", "beginner", "experience: beginner, intermediate, advanced")
	days := flag.Int("days", 3, "training days per week")
	weeks := flag.Int("weeks", 8, "program duration in weeks")
	equipment := flag.String("equipment", "barbell,dumbbell,bodyweight", "comma-separated available equipment")
	restrictions := flag.String("restrictions", "", "injuries or limitations to note on the program")
	catalogPath := flag.String("catalog", "", "path to an exercise catalog YAML (defaults to the built-in catalog)")
	format := flag.String("format", "text", "output format: text, json, xlsx")
	out := flag.String("out", "", "output file (defaults to stdout; required for xlsx)")
	dbPath := flag.String("db", "", "also save the program to this SQLite database")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("nubo-plan", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *format == "xlsx" && *out == "" {
		fmt.Fprintf(os.Stderr, "Error: -out is required for -format xlsx\n")
		os.Exit(1)
	}

	cat := catalog.Default()
	if *catalogPath != "" {
		var err error
		cat, err = catalog.Load(*catalogPath)
		if err != nil {
			log.Error("failed to load catalog", "error", err)
			os.Exit(1)
		}
	}

	req := models.AIProgramRequest{
		Goal:         models.Goal(*goal),
		Experience:   models.Experience(*experience),
		DaysPerWeek:  *days,
		Duration:     *weeks,
		Equipment:    parseEquipment(*equipment),
		Restrictions: *restrictions,
	}
	if !req.Goal.Valid() || !req.Experience.Valid() {
		log.Warn("unknown goal or experience, using defaults", "goal", *goal, "experience", *experience)
	}
	p := program.New(cat.All()).Generate(req).AssignOwner(1)
	if len(p.Templates) == 0 {
		log.Warn("no fixed split for this day count", "days", *days)
	}

	if *dbPath != "" {
		db, err := localdb.Open(*dbPath)
		if err != nil {
			log.Error("failed to open database", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		err = db.SaveProgram(context.Background(), p)
		db.Close()
		if err != nil {
			log.Error("failed to save program", "error", err)
			os.Exit(1)
		}
		log.Info("program saved", "id", p.ID, "db", *dbPath)
	}

	w := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Error("failed to create output file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	var err error
	switch *format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(p)
	case "xlsx":
		err = export.ProgramXLSX(p, w)
	case "text":
		err = writeText(w, p)
	default:
		log.Error("unknown format", "format", *format)
		os.Exit(1)
	}
	if err != nil {
		log.Error("failed to write program", "format", *format, "error", err)
		os.Exit(1)
	}
}

func parseEquipment(s string) []models.Equipment {
	var out []models.Equipment
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, models.Equipment(part))
		}
	}
	return out
}

func writeText(w io.Writer, p models.AIProgram) error {
	fmt.Fprintf(w, "%s\n%s\nРасписание: %s\n", p.Name, p.Description, p.Schedule)
	for _, t := range p.Templates {
		fmt.Fprintf(w, "\n%s (%s)\n", t.Name, t.Description)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i, te := range t.Exercises {
			fmt.Fprintf(tw, "  %d.\t%s\t%d x %s\tотдых %d с\n", i+1, te.Exercise.Name, te.Sets, te.TargetReps, te.RestTimer)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
