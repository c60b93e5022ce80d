// cmd/polyedit-rl/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"go-polygon-editor/internal/config"
	"go-polygon-editor/internal/rlview"
)

// Нативная версия редактора на raylib, без браузера.
func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := config.NewLogger(settings, os.Stderr)
	log.Info("starting raylib editor")
	rlview.New(settings, log).Run()
}
