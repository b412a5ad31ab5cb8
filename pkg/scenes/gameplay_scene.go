package scenes

import (
	"image/color"
	"log"

	"github.com/gonewx/riftborne/pkg/config"
	"github.com/gonewx/riftborne/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameplayScene is the handoff target of the pre-game flow. It receives the
// chosen class and owns everything that happens after selection; for now it
// only confirms the arrival.
type GameplayScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	class           *config.ClassInfo

	bodyFont *text.GoTextFace

	width  int
	height int
}

// NewGameplayScene creates the gameplay scene for the chosen class.
func NewGameplayScene(rm *game.ResourceManager, sm *game.SceneManager, class *config.ClassInfo) *GameplayScene {
	scene := &GameplayScene{
		resourceManager: rm,
		sceneManager:    sm,
		class:           class,
		width:           config.GameWindowWidth,
		height:          config.GameWindowHeight,
	}

	var err error
	scene.bodyFont, err = rm.LoadFontByID("FONT_TITLE", config.SelectNameFontSize)
	if err != nil {
		log.Printf("[GameplayScene] Failed to load font: %v", err)
	}

	log.Printf("[GameplayScene] Entering as %s", class.ID)
	return scene
}

// Update updates the gameplay scene logic.
func (s *GameplayScene) Update(deltaTime float64) {}

// OnResize recenters the layout.
func (s *GameplayScene) OnResize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
}

// Class returns the class this scene was entered with.
func (s *GameplayScene) Class() *config.ClassInfo {
	return s.class
}

// Draw renders the arrival message.
func (s *GameplayScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 20, A: 255})

	if s.bodyFont == nil {
		return
	}
	message := "You enter the rift as " + s.class.Name
	msgW, _ := text.Measure(message, s.bodyFont, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(s.width)/2-msgW/2, float64(s.height)/2)
	op.ColorScale.ScaleWithColor(s.class.AccentColor())
	text.Draw(screen, message, s.bodyFont, op)
}
