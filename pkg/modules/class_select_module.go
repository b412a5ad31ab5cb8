// Package modules contains the self-contained screen modules of the pre-game
// flow. Each module owns its state, its deferred actions and its drawables,
// exposes plain event-handler methods for the scene to call, and tears all of
// it down in Dispose. Modules never read input devices themselves; scenes
// translate raw input into per-option events.
package modules

import (
	"fmt"
	"log"

	"github.com/gonewx/riftborne/pkg/components"
	"github.com/gonewx/riftborne/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ClassSelectModule drives the class selection state machine: which card is
// hovered, which is committed, what the details panel shows, and when the
// chosen callback fires.
//
// State rules:
//   - Hover is debounced: the pointer must rest on a card for
//     config.SelectHoverDebounce before the hover treatment and panel appear.
//     Any enter or leave in the meantime cancels and supersedes the pending
//     debounce, so fast sweeps across cards never flicker the panel.
//   - Commit is immediate and sticky: clicking a card applies the committed
//     treatment, opens the panel without debounce, enables the confirm button
//     and schedules the chosen callback after config.SelectCommitDelay.
//     Clicking another card first reverts the previous one; the pending
//     callback is replaced, never stacked, so only the last committed class
//     is ever delivered.
//   - While a class is committed, hover events are ignored.
//
// The chosen callback fires exactly once per module lifetime. Events naming
// a class outside the roster are programming errors and panic.
type ClassSelectModule struct {
	classes map[string]*config.ClassInfo
	cards   []*components.ClassCard
	cardsBy map[string]*components.ClassCard
	panel   *components.DetailsPanel
	confirm *components.Button

	scheduler *components.Scheduler
	onChosen  func(classID string)

	hoveredID      string
	committedID    string
	debounceID     string
	debounceHandle *components.Handle
	commitHandle   *components.Handle
	chosenFired    bool
}

// NewClassSelectModule creates the module for the given roster. Cards are
// laid out in roster order, centered around the design-space origin.
// onChosen receives the committed class id; it is required.
func NewClassSelectModule(roster *config.ClassConfig, onChosen func(classID string)) *ClassSelectModule {
	m := &ClassSelectModule{
		classes:   make(map[string]*config.ClassInfo, len(roster.Classes)),
		cardsBy:   make(map[string]*components.ClassCard, len(roster.Classes)),
		scheduler: components.NewScheduler(),
		onChosen:  onChosen,
	}

	n := len(roster.Classes)
	rowWidth := float64(n)*config.SelectCardWidth + float64(n-1)*config.SelectCardSpacing
	startX := -rowWidth / 2
	for i := range roster.Classes {
		class := &roster.Classes[i]
		x := startX + float64(i)*(config.SelectCardWidth+config.SelectCardSpacing)
		card := components.NewClassCard(class, x, config.SelectCardRowY)
		m.classes[class.ID] = class
		m.cards = append(m.cards, card)
		m.cardsBy[class.ID] = card
	}

	m.panel = components.NewDetailsPanel(
		-config.SelectPanelWidth/2, config.SelectPanelY,
		config.SelectPanelWidth, config.SelectPanelHeight)

	m.confirm = &components.Button{
		X:       -config.SelectConfirmWidth / 2,
		Y:       config.SelectConfirmY,
		Width:   config.SelectConfirmWidth,
		Height:  config.SelectConfirmHeight,
		Label:   "Begin",
		State:   components.UIDisabled,
		OnClick: m.onConfirmActivated,
	}

	log.Printf("[ClassSelectModule] Initialized with %d classes", n)
	return m
}

// mustClass returns the roster entry for id.
// The option set is closed; an unknown id is a precondition violation.
func (m *ClassSelectModule) mustClass(id string) *config.ClassInfo {
	class, ok := m.classes[id]
	if !ok {
		panic(fmt.Sprintf("class select: event for unknown class %q", id))
	}
	return class
}

// OnPointerEnter handles the pointer entering a card.
// Ignored while any class is committed or a commit delay is in flight.
func (m *ClassSelectModule) OnPointerEnter(id string) {
	m.mustClass(id)

	if m.committedID != "" {
		return
	}

	// A new enter supersedes any pending debounce.
	m.debounceHandle.Cancel()
	m.debounceID = id
	m.debounceHandle = m.scheduler.After(config.SelectHoverDebounce, func() {
		m.applyHover(id)
	})
}

// OnPointerLeave handles the pointer leaving a card. A pending debounce for
// that card is cancelled; an established hover is reverted unless the card
// is the committed one.
func (m *ClassSelectModule) OnPointerLeave(id string) {
	m.mustClass(id)

	if m.debounceID == id {
		m.debounceHandle.Cancel()
		m.debounceID = ""
	}

	if m.hoveredID == id && m.committedID != id {
		m.cardsBy[id].State = components.CardNormal
		m.hoveredID = ""
		m.panel.Close()
	}
}

// OnPointerDown commits a class: committed visuals, immediate panel open,
// confirm button enabled, chosen callback scheduled. A later OnPointerDown
// on another card replaces all of it.
func (m *ClassSelectModule) OnPointerDown(id string) {
	class := m.mustClass(id)

	// Commit supersedes hover entirely.
	m.debounceHandle.Cancel()
	m.debounceID = ""
	if m.hoveredID != "" && m.hoveredID != id {
		m.cardsBy[m.hoveredID].State = components.CardNormal
	}
	m.hoveredID = ""

	// Exactly one committed card at any instant.
	if m.committedID != "" && m.committedID != id {
		m.cardsBy[m.committedID].State = components.CardNormal
	}
	m.cardsBy[id].State = components.CardCommitted
	m.committedID = id

	m.panel.Open(class)

	m.confirm.State = components.UINormal
	m.confirm.Accent = class.AccentColor()

	// Replace, never stack: only the last committed class is delivered.
	m.commitHandle.Cancel()
	m.commitHandle = m.scheduler.After(config.SelectCommitDelay, func() {
		m.fireChosen(id)
	})
}

// onConfirmActivated delivers the committed class immediately, without
// waiting out the commit delay.
func (m *ClassSelectModule) onConfirmActivated() {
	if m.committedID == "" {
		return
	}
	m.fireChosen(m.committedID)
}

// fireChosen is the single delivery path for the chosen callback.
func (m *ClassSelectModule) fireChosen(id string) {
	if m.chosenFired {
		panic("class select: chosen callback fired twice")
	}
	m.chosenFired = true
	m.commitHandle.Cancel()

	log.Printf("[ClassSelectModule] Class chosen: %s", id)
	if m.onChosen != nil {
		m.onChosen(id)
	}
}

// applyHover establishes the hover state once the debounce lands.
func (m *ClassSelectModule) applyHover(id string) {
	m.debounceID = ""
	if m.hoveredID != "" && m.hoveredID != id {
		m.cardsBy[m.hoveredID].State = components.CardNormal
	}
	m.hoveredID = id
	m.cardsBy[id].State = components.CardHovered
	m.panel.Open(m.classes[id])
}

// Update advances the debounce/commit timers and the panel fade.
func (m *ClassSelectModule) Update(deltaTime float64) {
	m.scheduler.Update(deltaTime)
	m.panel.Update(deltaTime)
}

// Draw renders cards, panel and confirm button relative to the design-space
// origin at (originX, originY).
func (m *ClassSelectModule) Draw(screen *ebiten.Image, originX, originY float64, nameFont, bodyFont *text.GoTextFace) {
	for _, card := range m.cards {
		card.Draw(screen, originX, originY, nameFont)
	}
	m.panel.Draw(screen, originX, originY, nameFont, bodyFont)
	m.confirm.Draw(screen, originX, originY, nameFont)
}

// Dispose cancels every pending timer and stops the panel fade so no
// deferred callback can run against a torn-down screen.
func (m *ClassSelectModule) Dispose() {
	m.scheduler.CancelAll()
	m.debounceHandle = nil
	m.commitHandle = nil
	m.panel.Dispose()
}

// Cards returns the cards in roster order.
func (m *ClassSelectModule) Cards() []*components.ClassCard {
	return m.cards
}

// Card returns the card for a roster class id.
func (m *ClassSelectModule) Card(id string) *components.ClassCard {
	return m.cardsBy[id]
}

// Panel returns the details panel.
func (m *ClassSelectModule) Panel() *components.DetailsPanel {
	return m.panel
}

// Confirm returns the confirm button.
func (m *ClassSelectModule) Confirm() *components.Button {
	return m.confirm
}

// HoveredID returns the currently hovered class id, or "".
func (m *ClassSelectModule) HoveredID() string {
	return m.hoveredID
}

// CommittedID returns the currently committed class id, or "".
func (m *ClassSelectModule) CommittedID() string {
	return m.committedID
}
