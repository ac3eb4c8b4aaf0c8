package main

import (
	"fmt"
	"log"
	"os"

	"viralagent/campaign"
	"viralagent/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if os.Getenv("COHERE_API_KEY") == "" {
		fmt.Println("COHERE_API_KEY is not set; the studio cannot generate campaigns.")
		os.Exit(1)
	}

	generator := campaign.NewGeneratorFromEnv()

	p := tea.NewProgram(tui.NewModel(generator))
	if _, err := p.Run(); err != nil {
		log.Fatalf("studio error: %v", err)
	}
}
