package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tama/internal/pet"
	"tama/internal/ui"
)

func main() {
	reset := flag.Bool("reset", false, "start over with a fresh egg")
	savePath := flag.String("save", pet.DefaultSavePath(), "path to the save file")
	speed := flag.Float64("speed", 6.0, "game-time speed multiplier")
	aiSetup := flag.Bool("ai", false, "run the AI chatter setup (needs local Ollama)")
	aiModel := flag.String("ai-model", "qwen2.5:0.5b", "preferred Ollama model for -ai")
	flag.Parse()

	if os.Getenv("TAMA_DEBUG") != "" {
		f, err := tea.LogToFile("tama-debug.log", "tama")
		if err == nil {
			defer f.Close()
		}
	} else {
		log.SetOutput(io.Discard)
	}

	var p *pet.Pet
	if !*reset {
		p = pet.Load(*savePath)
	}
	if p == nil {
		p = pet.New()
	}
	p.InitIfNeeded()

	if *aiSetup {
		enabled, model, personality := ui.RunAISetup(*aiModel)
		p.AIEnabled = enabled
		p.AIModel = model
		p.AIPersonality = personality
		p.AINextSayAt = 0
		p.AILastSayAt = 0
	}

	m := ui.NewModel(p, ui.Config{
		SavePath: *savePath,
		Speed:    pet.ClampSpeed(*speed),
	})

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()

	if saveErr := pet.Save(p, *savePath); saveErr != nil {
		log.Printf("final save failed: %v", saveErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
