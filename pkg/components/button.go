package components

import (
	"image/color"

	"github.com/gonewx/riftborne/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UIState represents the current interaction state of a UI element.
type UIState int

const (
	// UINormal indicates the element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the pointer is over the element.
	UIHovered
	// UIDisabled indicates the element cannot be interacted with.
	UIDisabled
)

// Button is a rectangular clickable affordance drawn from generated
// primitives. Position is in design space. While disabled it ignores input
// and renders dimmed.
type Button struct {
	X, Y    float64
	Width   float64
	Height  float64
	Label   string
	Accent  color.RGBA
	State   UIState
	OnClick func()
}

// Contains reports whether a design-space point lies on the button.
func (b *Button) Contains(px, py float64) bool {
	return utils.PointInRect(px, py, b.X, b.Y, b.Width, b.Height)
}

// Draw renders the button. font may be nil (the label is skipped).
func (b *Button) Draw(screen *ebiten.Image, originX, originY float64, font *text.GoTextFace) {
	x := float32(originX + b.X)
	y := float32(originY + b.Y)
	w := float32(b.Width)
	h := float32(b.Height)

	fill := color.RGBA{R: 30, G: 34, B: 48, A: 255}
	border := b.Accent
	labelColor := color.RGBA{R: 235, G: 235, B: 240, A: 255}

	switch b.State {
	case UIDisabled:
		border = color.RGBA{R: 80, G: 84, B: 96, A: 255}
		labelColor = color.RGBA{R: 120, G: 124, B: 136, A: 255}
	case UIHovered:
		fill = color.RGBA{R: 44, G: 50, B: 68, A: 255}
	}

	vector.DrawFilledRect(screen, x, y, w, h, fill, true)
	vector.StrokeRect(screen, x, y, w, h, 2, border, true)

	if font != nil && b.Label != "" {
		labelW, labelH := text.Measure(b.Label, font, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)+(b.Width-labelW)/2, float64(y)+(b.Height-labelH)/2)
		op.ColorScale.ScaleWithColor(labelColor)
		text.Draw(screen, b.Label, font, op)
	}
}
