package main

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/trivial-maison/internal/catalog"
	"github.com/tatianab/trivial-maison/internal/config"
	"github.com/tatianab/trivial-maison/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.LogFile == "-" {
		log.SetOutput(io.Discard)
	} else {
		f, err := tea.LogToFile(cfg.LogFile, "trivia")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	questions, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		fmt.Printf("Error loading questions: %v\n", err)
		os.Exit(1)
	}
	log.Printf("loaded %d categories", len(questions.Categories))

	var random func() float64
	if cfg.Seed != 0 {
		random = rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed))).Float64
	}

	if err := tui.Run(questions, cfg.Players, random); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
