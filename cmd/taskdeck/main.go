package main

import (
	"fmt"
	"os"

	"taskdeck/internal/api"
	"taskdeck/internal/config"
	"taskdeck/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	client := api.NewClient(cfg.APIBaseURL)

	if err := ui.Run(client, cfg, configPath); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
