// cmd/polyedit/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"go-polygon-editor/internal/config"
	"go-polygon-editor/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := config.NewLogger(settings, os.Stderr)

	if *pprofAddr != "" {
		go func() {
			log.WithError(http.ListenAndServe(*pprofAddr, nil)).Warn("pprof server stopped")
		}()
	}

	game, err := ui.NewGame(settings, log)
	if err != nil {
		log.WithError(err).Fatal("failed to create editor")
	}

	w, h := settings.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Polygon Editor")
	log.WithField("canvas", fmt.Sprintf("%dx%d", settings.CanvasWidth, settings.CanvasHeight)).Info("starting editor")
	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("editor stopped")
	}
}
