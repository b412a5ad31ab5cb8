package scenes

import (
	"image/color"
	"log"

	"github.com/gonewx/riftborne/pkg/components"
	"github.com/gonewx/riftborne/pkg/config"
	"github.com/gonewx/riftborne/pkg/game"
	"github.com/gonewx/riftborne/pkg/modules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ClassSelectScene lets the player pick a character class before entering
// the game. It translates raw pointer input into per-card enter/leave/down
// events for the ClassSelectModule, drives the starfield backdrop, and hands
// the chosen class id to the gameplay scene.
type ClassSelectScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	settings        *game.SettingsManager
	roster          *config.ClassConfig

	module    *modules.ClassSelectModule
	starfield *modules.StarfieldModule

	// Viewport; origin is the design-space origin in screen pixels.
	width   int
	height  int
	originX float64
	originY float64

	// Input edge tracking
	pointerOver string // card id the pointer was over last tick ("" for none)

	// Fonts (nil-tolerated)
	titleFont *text.GoTextFace
	nameFont  *text.GoTextFace
	bodyFont  *text.GoTextFace

	lastClassName string // name of the previously played class, "" for none
}

// NewClassSelectScene creates the class selection screen for the given
// roster. The texture cache is shared across screen instances so the
// starfield textures are generated once per process.
func NewClassSelectScene(rm *game.ResourceManager, sm *game.SceneManager, settings *game.SettingsManager, cache *modules.TextureCache, roster *config.ClassConfig) *ClassSelectScene {
	scene := &ClassSelectScene{
		resourceManager: rm,
		sceneManager:    sm,
		settings:        settings,
		roster:          roster,
		width:           config.GameWindowWidth,
		height:          config.GameWindowHeight,
	}
	scene.originX = float64(scene.width) / 2
	scene.originY = float64(scene.height) / 2

	scene.module = modules.NewClassSelectModule(roster, scene.onClassChosen)
	scene.starfield = modules.NewStarfieldModule(cache, float64(scene.width), float64(scene.height))

	scene.loadFonts()
	scene.loadCardIcons()

	if settings != nil && settings.LastClass() != "" {
		if last := roster.ByID(settings.LastClass()); last != nil {
			scene.lastClassName = last.Name
			if card := scene.module.Card(last.ID); card != nil {
				card.LastPlayed = true
			}
		}
	}

	return scene
}

// loadFonts loads the screen fonts by manifest ID.
func (s *ClassSelectScene) loadFonts() {
	var err error
	s.titleFont, err = s.resourceManager.LoadFontByID("FONT_TITLE", config.SelectTitleFontSize)
	if err != nil {
		log.Printf("[ClassSelectScene] Failed to load title font: %v", err)
	}
	s.nameFont, err = s.resourceManager.LoadFontByID("FONT_TITLE", config.SelectNameFontSize)
	if err != nil {
		log.Printf("[ClassSelectScene] Failed to load name font: %v", err)
	}
	s.bodyFont, err = s.resourceManager.LoadFontByID("FONT_BODY", config.SelectBodyFontSize)
	if err != nil {
		log.Printf("[ClassSelectScene] Failed to load body font: %v", err)
	}
}

// loadCardIcons attaches the preloaded class icons to their cards.
// Missing icons leave the card on its generated fallback block.
func (s *ClassSelectScene) loadCardIcons() {
	for _, card := range s.module.Cards() {
		if card.Class.Icon == "" {
			continue
		}
		icon := s.resourceManager.GetImageByID(card.Class.Icon)
		if icon == nil {
			log.Printf("[ClassSelectScene] Icon %s not loaded, using fallback", card.Class.Icon)
			continue
		}
		card.Icon = icon
	}
}

// onClassChosen is the module's commit callback: persist the choice and
// switch to gameplay. Switching disposes this scene, which cancels every
// remaining timer and animation.
func (s *ClassSelectScene) onClassChosen(classID string) {
	class := s.roster.ByID(classID)
	if class == nil {
		panic("class select scene: chosen callback with unknown class " + classID)
	}

	if s.settings != nil {
		s.settings.SetLastClass(classID)
		if err := s.settings.Save(); err != nil {
			log.Printf("[ClassSelectScene] Warning: failed to save settings: %v", err)
		}
	}

	s.sceneManager.SwitchTo(NewGameplayScene(s.resourceManager, s.sceneManager, class))
}

// Update drives the backdrop, translates pointer input into module events
// and advances the module's timers and fades.
func (s *ClassSelectScene) Update(deltaTime float64) {
	s.starfield.Update(deltaTime)

	s.dispatchPointerEvents()

	s.module.Update(deltaTime)
}

// dispatchPointerEvents converts the cursor position and click edges into
// per-card enter/leave/down events and confirm button activation.
func (s *ClassSelectScene) dispatchPointerEvents() {
	mouseX, mouseY := ebiten.CursorPosition()
	px := float64(mouseX) - s.originX
	py := float64(mouseY) - s.originY

	// At most one card contains the pointer; cards do not overlap.
	over := ""
	for _, card := range s.module.Cards() {
		if card.Contains(px, py) {
			over = card.Class.ID
			break
		}
	}

	if over != s.pointerOver {
		if s.pointerOver != "" {
			s.module.OnPointerLeave(s.pointerOver)
		}
		if over != "" {
			s.module.OnPointerEnter(over)
		}
		s.pointerOver = over
	}

	confirm := s.module.Confirm()
	overConfirm := confirm.State != components.UIDisabled && confirm.Contains(px, py)
	if confirm.State != components.UIDisabled {
		if overConfirm {
			confirm.State = components.UIHovered
		} else {
			confirm.State = components.UINormal
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case over != "":
			s.module.OnPointerDown(over)
		case overConfirm && confirm.OnClick != nil:
			confirm.OnClick()
		}
	}

	// Pointer cursor over anything interactive.
	if over != "" || overConfirm {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// OnResize recenters the design-space origin and resizes the backdrop to
// the new viewport. Selection state is unaffected. Degenerate sizes are
// clamped and applied, never refused.
func (s *ClassSelectScene) OnResize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.originX = float64(s.width) / 2
	s.originY = float64(s.height) / 2
	s.starfield.Resize(float64(s.width), float64(s.height))
}

// Dispose tears the screen down: every pending debounce/commit timer and
// panel fade is cancelled so nothing fires against a destroyed scene.
func (s *ClassSelectScene) Dispose() {
	s.module.Dispose()
	log.Printf("[ClassSelectScene] Disposed")
}

// Origin returns the screen position of the design-space origin.
func (s *ClassSelectScene) Origin() (float64, float64) {
	return s.originX, s.originY
}

// Module returns the selection module.
func (s *ClassSelectScene) Module() *modules.ClassSelectModule {
	return s.module
}

// Starfield returns the backdrop module.
func (s *ClassSelectScene) Starfield() *modules.StarfieldModule {
	return s.starfield
}

// Draw renders the backdrop, the screen title and the selection module.
func (s *ClassSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 11, B: 18, A: 255})
	s.starfield.Draw(screen)

	if s.titleFont != nil {
		title := "Choose Your Class"
		titleW, _ := text.Measure(title, s.titleFont, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(s.originX-titleW/2, s.originY+config.SelectTitleY)
		op.ColorScale.ScaleWithColor(color.RGBA{R: 214, G: 199, B: 148, A: 255})
		text.Draw(screen, title, s.titleFont, op)
	}

	if s.lastClassName != "" && s.bodyFont != nil {
		hint := "Last played: " + s.lastClassName
		hintW, _ := text.Measure(hint, s.bodyFont, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(s.originX-hintW/2, s.originY+config.SelectTitleY+config.SelectTitleFontSize+10)
		op.ColorScale.ScaleWithColor(color.RGBA{R: 140, G: 144, B: 160, A: 255})
		text.Draw(screen, hint, s.bodyFont, op)
	}

	s.module.Draw(screen, s.originX, s.originY, s.nameFont, s.bodyFont)
}
