package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/riftborne/pkg/config"
	"github.com/gonewx/riftborne/pkg/game"
	"github.com/gonewx/riftborne/pkg/modules"
	"github.com/gonewx/riftborne/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LoadingScene is the screen shown while the pre-game asset group loads.
// It displays a title drop animation and a per-file progress bar, then hands
// off to class selection shortly after the last file lands.
type LoadingScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	settings        *game.SettingsManager
	textureCache    *modules.TextureCache
	roster          *config.ClassConfig

	// Progress tracking
	groupLoad       *game.GroupLoad
	progress        float64 // Loading progress (0.0 - 1.0), monotonic
	loadingComplete bool    // Whether the completion event has been observed
	handoffElapsed  float64 // Time since completion
	elapsedTime     float64 // Elapsed time since scene start

	// Title drop animation
	titleY        float64
	titleAnimDone bool

	// Fonts (nil-tolerated; rendering skips missing text)
	titleFont *text.GoTextFace
	textFont  *text.GoTextFace

	// Viewport
	width  int
	height int
}

// NewLoadingScene creates the loading scene and starts the "select" group
// load. The roster is passed through untouched to the class select scene.
func NewLoadingScene(rm *game.ResourceManager, sm *game.SceneManager, settings *game.SettingsManager, cache *modules.TextureCache, roster *config.ClassConfig) *LoadingScene {
	scene := &LoadingScene{
		resourceManager: rm,
		sceneManager:    sm,
		settings:        settings,
		textureCache:    cache,
		roster:          roster,
		titleY:          -120, // Start above the screen
		width:           config.GameWindowWidth,
		height:          config.GameWindowHeight,
	}

	scene.loadFonts()

	groupLoad, err := rm.BeginGroupLoad("select")
	if err != nil {
		// Nothing to load; the bar jumps straight to full.
		log.Printf("[LoadingScene] Warning: %v", err)
		scene.progress = 1.0
		scene.loadingComplete = true
	} else {
		scene.groupLoad = groupLoad
	}

	return scene
}

// loadFonts loads the fonts for the loading screen text.
func (s *LoadingScene) loadFonts() {
	var err error
	s.titleFont, err = s.resourceManager.LoadFontByID("FONT_TITLE", config.SelectTitleFontSize)
	if err != nil {
		log.Printf("[LoadingScene] Failed to load title font: %v", err)
	}
	s.textFont, err = s.resourceManager.LoadFontByID("FONT_BODY", config.LoadingTextFontSize)
	if err != nil {
		log.Printf("[LoadingScene] Failed to load text font: %v", err)
	}
}

// Update advances the title animation, steps the group load by one file and
// switches scenes once the handoff delay after completion has passed.
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsedTime += deltaTime

	s.updateTitleAnimation()

	// One file per tick keeps the loop responsive and the bar granular.
	if s.groupLoad != nil && !s.loadingComplete {
		s.groupLoad.Step()
		s.progress = s.groupLoad.Progress()
		if s.groupLoad.Done() {
			// Completion is observed exactly once.
			s.loadingComplete = true
			log.Printf("[LoadingScene] Group load complete")
		}
	}

	if s.loadingComplete {
		s.handoffElapsed += deltaTime
		if s.handoffElapsed >= config.LoadingHandoffDelay {
			s.handoff()
		}
	}
}

// updateTitleAnimation drops the title from above the screen to its resting
// position with an ease-out curve.
func (s *LoadingScene) updateTitleAnimation() {
	if s.titleAnimDone {
		return
	}

	if s.elapsedTime < config.LoadingLogoAnimDuration {
		t := utils.EaseOutQuad(s.elapsedTime / config.LoadingLogoAnimDuration)
		s.titleY = utils.Lerp(-120, config.LoadingLogoTargetY, t)
	} else {
		s.titleY = config.LoadingLogoTargetY
		s.titleAnimDone = true
	}
}

// handoff switches to the class select scene.
func (s *LoadingScene) handoff() {
	selectScene := NewClassSelectScene(s.resourceManager, s.sceneManager, s.settings, s.textureCache, s.roster)
	s.sceneManager.SwitchTo(selectScene)
}

// OnResize recenters the layout. Degenerate sizes are clamped, never refused.
func (s *LoadingScene) OnResize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
}

// Progress returns the current loading progress in [0, 1].
func (s *LoadingScene) Progress() float64 {
	return s.progress
}

// Complete reports whether the asset group has finished loading.
func (s *LoadingScene) Complete() bool {
	return s.loadingComplete
}

// Draw renders the loading screen.
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 11, B: 18, A: 255})

	centerX := float64(s.width) / 2
	centerY := float64(s.height) / 2

	// Title.
	if s.titleFont != nil {
		title := "R I F T B O R N E"
		titleW, _ := text.Measure(title, s.titleFont, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(centerX-titleW/2, centerY+s.titleY)
		op.ColorScale.ScaleWithColor(color.RGBA{R: 214, G: 199, B: 148, A: 255})
		text.Draw(screen, title, s.titleFont, op)
	}

	s.drawProgressBar(screen, centerX, centerY)
	s.drawStatusText(screen, centerX, centerY)
}

// drawProgressBar draws the bar frame and its fill for the current progress.
func (s *LoadingScene) drawProgressBar(screen *ebiten.Image, centerX, centerY float64) {
	barX := float32(centerX - config.LoadingBarWidth/2)
	barY := float32(centerY + config.LoadingBarOffsetY)

	vector.StrokeRect(screen, barX, barY, float32(config.LoadingBarWidth), float32(config.LoadingBarHeight),
		1, color.RGBA{R: 120, G: 124, B: 140, A: 255}, true)

	fillWidth := float32(config.LoadingBarWidth * s.progress)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, barX, barY, fillWidth, float32(config.LoadingBarHeight),
			color.RGBA{R: 120, G: 90, B: 200, A: 255}, true)
	}
}

// drawStatusText draws the loading message under the bar.
func (s *LoadingScene) drawStatusText(screen *ebiten.Image, centerX, centerY float64) {
	if s.textFont == nil {
		return
	}

	var message string
	if s.loadingComplete {
		message = "Entering the rift..."
	} else {
		message = fmt.Sprintf("Loading... %d%%", int(s.progress*100))
		if s.groupLoad != nil && s.groupLoad.LastFile() != "" {
			message += "  " + s.groupLoad.LastFile()
		}
	}

	msgW, _ := text.Measure(message, s.textFont, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX-msgW/2, centerY+config.LoadingBarOffsetY+config.LoadingTextOffsetY)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 180, G: 182, B: 196, A: 255})
	text.Draw(screen, message, s.textFont, op)
}
