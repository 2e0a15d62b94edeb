package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/gkoster9x/ApocalypseLogsApps/internal/gemini"
	"github.com/gkoster9x/ApocalypseLogsApps/internal/store"
	"github.com/gkoster9x/ApocalypseLogsApps/internal/ui"
	"github.com/gkoster9x/ApocalypseLogsApps/internal/util"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	pathFlag := flag.String("path", "", "Data directory (defaults to ~/.apocalypse-logs)")
	themeFlag := flag.String("theme", "", "UI theme: wasteland|bunker|overgrowth|ashfall")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "apocalypse-logs [--path dir] [--theme name] | version\n")
	}
	flag.Parse()

	if len(flag.Args()) > 0 && flag.Args()[0] == "version" {
		fmt.Println("apocalypse-logs", version)
		return
	}

	cfg, err := util.LoadConfig()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *pathFlag != "" {
		cfg.BasePath = *pathFlag
	}
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}
	cfg.APIKey = os.Getenv("GEMINI_API_KEY")

	ctx := context.Background()

	db, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open data store: %v", err)
	}
	st, err := db.Load()
	if err != nil {
		log.Fatalf("failed to load journal data: %v", err)
	}

	var ai gemini.Assistant
	client, err := gemini.NewClient(cfg.APIKey, cfg.Model, cfg.ImageModel)
	if err != nil {
		log.Printf("Gemini unavailable: %v", err)
		ai = gemini.Offline()
	} else {
		ai = client
	}

	if err := ui.Run(ctx, &st, db, ai, cfg); err != nil {
		log.Fatal(err)
	}
}
