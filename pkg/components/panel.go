package components

import (
	"fmt"
	"image/color"

	"github.com/gonewx/riftborne/pkg/config"
	"github.com/gonewx/riftborne/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PanelContent is the transient content of the details panel, rebuilt from
// scratch for every option it shows. The background chrome is not part of
// the content; only content is destroyed on close.
type PanelContent struct {
	Title       string
	Description []string // word-wrapped description lines
	Strengths   string
	Weaknesses  string
	Accent      color.RGBA
}

// DetailsPanel shows the hovered or committed class's details with an
// opacity fade on open and close.
//
// At most one fade runs at any instant. While a fade is in flight, Open
// requests are dropped (the running animation owns the content); Close stops
// the running fade through its completion path before starting the close
// fade. The content therefore always belongs to exactly one option.
type DetailsPanel struct {
	X, Y   float64 // design-space top-left
	Width  float64
	Height float64

	content *PanelContent
	opacity float64
	fading  bool
	closing bool // the in-flight fade, if any, is a close
	fade    *Tween
}

// NewDetailsPanel creates an empty, fully transparent panel.
func NewDetailsPanel(x, y, width, height float64) *DetailsPanel {
	return &DetailsPanel{X: x, Y: y, Width: width, Height: height}
}

// Open replaces the panel content with the given class's details and fades
// the panel in from fully transparent.
//
// Returns false if an open or close fade is already running; the request is
// dropped entirely in that case and neither content nor animation change.
func (p *DetailsPanel) Open(class *config.ClassInfo) bool {
	if p.fading {
		return false
	}
	if p.fade != nil {
		p.fade.Stop()
	}

	p.content = &PanelContent{
		Title:       class.Name,
		Description: utils.WrapText(class.Description, config.SelectPanelWrapColumns),
		Strengths:   fmt.Sprintf("Strengths: %s", class.Strengths),
		Weaknesses:  fmt.Sprintf("Weaknesses: %s", class.Weaknesses),
		Accent:      class.AccentColor(),
	}
	p.opacity = 0
	p.fading = true
	p.closing = false
	p.fade = NewTween(0, 1, config.SelectPanelFadeDuration, utils.EaseOutQuad,
		func(v float64) { p.opacity = v },
		func() { p.fading = false },
	)
	return true
}

// Close fades the panel out and destroys the content when the fade lands.
// A running open fade is stopped first; closing an already empty or already
// closing panel is a no-op.
func (p *DetailsPanel) Close() {
	if p.content == nil {
		return
	}
	if p.fading && p.closing {
		return
	}
	if p.fade != nil {
		p.fade.Stop()
	}

	p.fading = true
	p.closing = true
	p.fade = NewTween(p.opacity, 0, config.SelectPanelFadeDuration, utils.EaseOutQuad,
		func(v float64) { p.opacity = v },
		func() {
			p.content = nil
			p.fading = false
		},
	)
}

// Update advances the running fade, if any.
func (p *DetailsPanel) Update(deltaTime float64) {
	if p.fade != nil && !p.fade.Done() {
		p.fade.Update(deltaTime)
	}
}

// Dispose stops any running fade so its completion callback cannot fire
// after the owning screen is gone.
func (p *DetailsPanel) Dispose() {
	if p.fade != nil {
		p.fade.Stop()
		p.fade = nil
	}
}

// Content returns the current content, or nil when the panel is empty.
func (p *DetailsPanel) Content() *PanelContent {
	return p.content
}

// Visible reports whether the panel currently has content to show.
func (p *DetailsPanel) Visible() bool {
	return p.content != nil
}

// Fading reports whether an open or close fade is in flight.
func (p *DetailsPanel) Fading() bool {
	return p.fading
}

// Opacity returns the current panel opacity in [0, 1].
func (p *DetailsPanel) Opacity() float64 {
	return p.opacity
}

// Draw renders the panel background and content at the current opacity.
// Fonts may be nil; text lines without a font are skipped.
func (p *DetailsPanel) Draw(screen *ebiten.Image, originX, originY float64, titleFont, bodyFont *text.GoTextFace) {
	if p.content == nil || p.opacity <= 0 {
		return
	}

	alpha := utils.Clamp01(p.opacity)
	x := float32(originX + p.X)
	y := float32(originY + p.Y)

	scaled := func(c color.RGBA) color.RGBA {
		return color.RGBA{
			R: uint8(float64(c.R) * alpha),
			G: uint8(float64(c.G) * alpha),
			B: uint8(float64(c.B) * alpha),
			A: uint8(float64(c.A) * alpha),
		}
	}

	// Background chrome: kept across opens, only its opacity follows the fade.
	vector.DrawFilledRect(screen, x, y, float32(p.Width), float32(p.Height),
		scaled(color.RGBA{R: 16, G: 18, B: 28, A: 245}), true)
	vector.StrokeRect(screen, x, y, float32(p.Width), float32(p.Height), 2,
		scaled(p.content.Accent), true)

	pad := config.SelectPanelPadding
	textX := float64(x) + pad
	textY := float64(y) + pad

	drawLine := func(line string, font *text.GoTextFace, clr color.RGBA, advance float64) {
		if font != nil && line != "" {
			op := &text.DrawOptions{}
			op.GeoM.Translate(textX, textY)
			op.ColorScale.ScaleWithColor(clr)
			op.ColorScale.ScaleAlpha(float32(alpha))
			text.Draw(screen, line, font, op)
		}
		textY += advance
	}

	drawLine(p.content.Title, titleFont, p.content.Accent, config.SelectNameFontSize+12)

	// Description lines are center-aligned within the panel.
	for _, line := range p.content.Description {
		if bodyFont != nil && line != "" {
			lineW, _ := text.Measure(line, bodyFont, 0)
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(x)+(p.Width-lineW)/2, textY)
			op.ColorScale.ScaleWithColor(color.RGBA{R: 220, G: 220, B: 228, A: 255})
			op.ColorScale.ScaleAlpha(float32(alpha))
			text.Draw(screen, line, bodyFont, op)
		}
		textY += config.SelectBodyFontSize + 6
	}
	textY += 6
	drawLine(p.content.Strengths, bodyFont, color.RGBA{R: 150, G: 220, B: 150, A: 255}, config.SelectBodyFontSize+6)
	drawLine(p.content.Weaknesses, bodyFont, color.RGBA{R: 230, G: 150, B: 150, A: 255}, config.SelectBodyFontSize+6)
}
