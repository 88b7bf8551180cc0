package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/nubo/training/internal/catalog"
	"github.com/nubo/training/internal/localdb"
	nubomcp "github.com/nubo/training/internal/mcp"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "NUBO server URL for remote mode (e.g. http://nubo.tail1234.ts.net)")
	dbPath := flag.String("db", "", "path to a local SQLite database (local mode)")
	catalogPath := flag.String("catalog", "", "path to an exercise catalog YAML (defaults to the built-in catalog)")
	userID := flag.Int("user", 1, "user id for local mode")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("nubo-mcp", Version)
		return
	}

	// stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if (*serverURL == "") == (*dbPath == "") {
		fmt.Fprintf(os.Stderr, "Usage: nubo-mcp (-server <URL> | -db <path>) [-catalog <file>] [-user N]\n\n")
		flag.PrintDefaults()
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

	var ds nubomcp.DataSource
	if *serverURL != "" {
		ds = nubomcp.NewHTTPClient(*serverURL)
		log.Info("remote mode", "server", *serverURL)
	} else {
		db, err := localdb.Open(*dbPath)
		if err != nil {
			log.Error("failed to open database", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		ds = db
		log.Info("local mode", "db", *dbPath, "user", *userID)
	}

	s := nubomcp.New(ds, cat, Version, log)
	uid := *userID
	err := mcpserver.ServeStdio(s, mcpserver.WithStdioContextFunc(func(ctx context.Context) context.Context {
		return nubomcp.WithUserID(ctx, uid)
	}))
	if err != nil {
		log.Error("stdio server stopped", "error", err)
		os.Exit(1)
	}
}
