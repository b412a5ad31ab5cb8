package components

import (
	"image/color"

	"github.com/gonewx/riftborne/pkg/config"
	"github.com/gonewx/riftborne/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CardState represents the visual state of a class card.
type CardState int

const (
	// CardNormal is the default resting treatment.
	CardNormal CardState = iota
	// CardHovered shows the accent border while the pointer rests on the card.
	CardHovered
	// CardCommitted shows the accent glow after the card has been clicked.
	// At most one card on a screen may be in this state.
	CardCommitted
)

// ClassCard is one selectable class tile. Position is in design space
// (origin at screen center); the scene supplies the root offset at draw time.
// Icon may be nil, in which case a flat accent block is drawn instead.
type ClassCard struct {
	Class  *config.ClassInfo
	X, Y   float64
	Width  float64
	Height float64
	State  CardState
	Icon   *ebiten.Image

	// LastPlayed tints the resting border with the class accent. Purely
	// visual; it never seeds hover or commit state.
	LastPlayed bool
}

// NewClassCard creates a card for the given class at a design-space position.
func NewClassCard(class *config.ClassInfo, x, y float64) *ClassCard {
	return &ClassCard{
		Class:  class,
		X:      x,
		Y:      y,
		Width:  config.SelectCardWidth,
		Height: config.SelectCardHeight,
		State:  CardNormal,
	}
}

// Contains reports whether a design-space point lies on the card.
func (c *ClassCard) Contains(px, py float64) bool {
	return utils.PointInRect(px, py, c.X, c.Y, c.Width, c.Height)
}

// Draw renders the card. originX/originY is the screen position of the
// design-space origin. nameFont may be nil (the name is skipped).
func (c *ClassCard) Draw(screen *ebiten.Image, originX, originY float64, nameFont *text.GoTextFace) {
	x := float32(originX + c.X)
	y := float32(originY + c.Y)
	w := float32(c.Width)
	h := float32(c.Height)

	// Card body.
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{R: 24, G: 26, B: 38, A: 235}, true)

	// Icon area: the icon image when loaded, a flat accent block otherwise.
	accent := c.Class.AccentColor()
	iconSize := float32(config.SelectCardIconSize)
	iconX := x + (w-iconSize)/2
	iconY := y + h*0.12
	if c.Icon != nil {
		op := &ebiten.DrawImageOptions{}
		bounds := c.Icon.Bounds()
		op.GeoM.Scale(float64(iconSize)/float64(bounds.Dx()), float64(iconSize)/float64(bounds.Dy()))
		op.GeoM.Translate(float64(iconX), float64(iconY))
		screen.DrawImage(c.Icon, op)
	} else {
		dim := color.RGBA{R: accent.R / 2, G: accent.G / 2, B: accent.B / 2, A: 255}
		vector.DrawFilledRect(screen, iconX, iconY, iconSize, iconSize, dim, true)
	}

	// Border treatment per state.
	switch c.State {
	case CardHovered:
		vector.StrokeRect(screen, x, y, w, h, 2, accent, true)
	case CardCommitted:
		// Outer translucent glow behind a heavy accent border.
		glow := color.RGBA{R: accent.R, G: accent.G, B: accent.B, A: 90}
		vector.StrokeRect(screen, x-3, y-3, w+6, h+6, 6, glow, true)
		vector.StrokeRect(screen, x, y, w, h, 4, accent, true)
	default:
		restColor := color.RGBA{R: 90, G: 94, B: 110, A: 255}
		if c.LastPlayed {
			restColor = color.RGBA{R: accent.R, G: accent.G, B: accent.B, A: 160}
		}
		vector.StrokeRect(screen, x, y, w, h, 1, restColor, true)
	}

	// Class name centered under the icon.
	if nameFont != nil {
		op := &text.DrawOptions{}
		nameW, _ := text.Measure(c.Class.Name, nameFont, 0)
		op.GeoM.Translate(float64(x)+(c.Width-nameW)/2, float64(iconY+iconSize)+18)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, c.Class.Name, nameFont, op)
	}
}
