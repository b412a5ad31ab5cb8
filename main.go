package main

import (
	"flag"
	"log"

	"github.com/gonewx/riftborne/pkg/app"
	"github.com/gonewx/riftborne/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose log output")
	skipLoading := flag.Bool("skip-loading", false, "skip the loading screen and jump straight to class selection")
	flag.Parse()

	// Make embedded manifests available before any resource loading happens.
	embedded.Init(assetsFS, dataFS)

	riftborne, err := app.NewApp(app.Config{
		Verbose:          *verbose,
		SkipLoadingScene: *skipLoading,
	})
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	ebiten.SetWindowSize(app.DefaultWindowWidth, app.DefaultWindowHeight)
	ebiten.SetWindowTitle("Riftborne")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the game loop.
	// This will call Update() and Draw() repeatedly until the window is closed.
	if err := ebiten.RunGame(riftborne); err != nil {
		log.Fatal(err)
	}
}
