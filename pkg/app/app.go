// Package app provides the top-level game wrapper.
//
// It pulls the startup wiring out of package main: resource manifest, class
// roster, settings storage, scene manager and the initial scene. The App
// implements ebiten.Game and fans the host's layout changes out to the
// active scene.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/riftborne/pkg/config"
	"github.com/gonewx/riftborne/pkg/embedded"
	"github.com/gonewx/riftborne/pkg/game"
	"github.com/gonewx/riftborne/pkg/modules"
	"github.com/gonewx/riftborne/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Default window size at startup.
const (
	DefaultWindowWidth  = config.GameWindowWidth
	DefaultWindowHeight = config.GameWindowHeight
)

// Config defines the application startup configuration.
type Config struct {
	// Verbose enables log output; without it all logging is discarded.
	Verbose bool
	// SkipLoadingScene jumps straight to class selection.
	SkipLoadingScene bool
}

// App is the core game wrapper implementing the ebiten.Game interface.
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	verbose      bool

	// Last size reported to Layout, for resize edge detection.
	lastWidth  int
	lastHeight int

	// Delayed window size reset after leaving fullscreen.
	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp creates and wires the application.
//
// embedded.Init must have been called before this.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	resourceManager := game.NewResourceManager()
	if err := resourceManager.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		return nil, fmt.Errorf("failed to load resource manifest: %w", err)
	}

	rosterData, err := embedded.ReadFile("data/classes.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read class roster: %w", err)
	}
	roster, err := config.LoadClassConfig(rosterData)
	if err != nil {
		return nil, fmt.Errorf("failed to load class roster: %w", err)
	}
	log.Printf("[App] Loaded %d classes", len(roster.Classes))

	// Settings storage; a failure here only loses persistence.
	gdataManager, err := gdata.Open(gdata.Config{AppName: "riftborne"})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings manager: %w", err)
	}
	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// One texture cache for the life of the app; generated backdrop
	// textures are shared by every screen instance.
	textureCache := modules.NewTextureCache()

	sceneManager := game.NewSceneManager()

	if cfg.SkipLoadingScene {
		log.Printf("[App] SkipLoadingScene enabled")
		sceneManager.SwitchTo(scenes.NewClassSelectScene(resourceManager, sceneManager, settings, textureCache, roster))
	} else {
		sceneManager.SwitchTo(scenes.NewLoadingScene(resourceManager, sceneManager, settings, textureCache, roster))
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
		lastWidth:    DefaultWindowWidth,
		lastHeight:   DefaultWindowHeight,
	}, nil
}

// Update updates the game logic. Called once per tick (typically 60/s).
func (a *App) Update() error {
	// Window size can only be set a few frames after leaving fullscreen;
	// the window manager needs time to process the mode change.
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(DefaultWindowWidth, DefaultWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 toggles fullscreen.
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.setFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// setFullscreen applies the new mode and persists the preference, so the
// next launch starts the way the player left the window. F11 is the only
// toggle surface, so persistence lives here.
func (a *App) setFullscreen(fullscreen bool) {
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw renders the active scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen implements ebiten.FinalScreenDrawer to control fullscreen
// scaling quality and letterbox color.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout reports the logical screen size. The pre-game flow renders at the
// window's native size, so every outside size change is forwarded to the
// active scene as a resize event. Degenerate sizes are clamped.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	width := max(outsideWidth, 0)
	height := max(outsideHeight, 0)

	if width != a.lastWidth || height != a.lastHeight {
		a.lastWidth = width
		a.lastHeight = height
		a.sceneManager.OnResize(width, height)
	}

	// Ebitengine requires a positive layout.
	return max(width, 1), max(height, 1)
}

// GetSceneManager returns the scene manager.
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose reports whether verbose logging is enabled.
func (a *App) IsVerbose() bool {
	return a.verbose
}
