package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/mvbuuren/donatui/internal/config"
	"github.com/mvbuuren/donatui/internal/database"
	"github.com/mvbuuren/donatui/internal/database/repository"
	"github.com/mvbuuren/donatui/internal/flow"
	"github.com/mvbuuren/donatui/internal/health"
	"github.com/mvbuuren/donatui/internal/i18n"
	"github.com/mvbuuren/donatui/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrationsWithDB(db, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	sessionID := cfg.Study.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	repo := repository.NewDonationRepo(db)
	engine := flow.NewEngine(sessionID, cfg.Study.Platform, health.ExtractDailySteps, health.ZipContents)
	app := tui.New(ctx, engine, repo, sessionID, i18n.Locale(cfg.UI.Locale))

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		log.Fatalf("tui: %v", err)
	}
	if a, ok := final.(*tui.App); ok && a.Err() != nil {
		fmt.Fprintf(os.Stderr, "donatui: %v\n", a.Err())
		os.Exit(1)
	}
}
