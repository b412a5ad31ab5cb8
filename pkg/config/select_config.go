package config

// Class Select Scene configuration constants.
//
// All positions are in design space: an abstract coordinate system whose
// origin sits at the center of the screen. The scene recenters its root
// offset on every resize, so design coordinates never change with the
// window size.

const (
	// SelectHoverDebounce is how long the pointer must rest on a card before
	// the hover treatment and details panel appear (seconds). Fast sweeps
	// across adjacent cards stay below this and never open the panel.
	SelectHoverDebounce float64 = 0.06

	// SelectCommitDelay is the pause between clicking a card and the chosen
	// callback firing, leaving time for the committed visuals to land (seconds).
	SelectCommitDelay float64 = 0.35

	// SelectPanelFadeDuration is the details panel opacity fade time (seconds).
	SelectPanelFadeDuration float64 = 0.18
)

const (
	// SelectCardWidth is the width of one class card.
	SelectCardWidth float64 = 220

	// SelectCardHeight is the height of one class card.
	SelectCardHeight float64 = 300

	// SelectCardSpacing is the horizontal gap between adjacent cards.
	SelectCardSpacing float64 = 36

	// SelectCardRowY is the Y of the card row's top edge in design space.
	SelectCardRowY float64 = -210

	// SelectCardIconSize is the square icon edge inside a card.
	SelectCardIconSize float64 = 128
)

const (
	// SelectPanelWidth is the details panel width.
	SelectPanelWidth float64 = 380

	// SelectPanelHeight is the details panel height.
	SelectPanelHeight float64 = 190

	// SelectPanelY is the Y of the panel's top edge in design space.
	SelectPanelY float64 = 130

	// SelectPanelWrapColumns is the character budget per wrapped
	// description line.
	SelectPanelWrapColumns int = 52

	// SelectPanelPadding is the inner padding between the panel edge and
	// its text content.
	SelectPanelPadding float64 = 14
)

const (
	// SelectConfirmWidth is the confirm button width.
	SelectConfirmWidth float64 = 200

	// SelectConfirmHeight is the confirm button height.
	SelectConfirmHeight float64 = 48

	// SelectConfirmY is the Y of the confirm button's top edge in design space.
	SelectConfirmY float64 = 250
)

const (
	// SelectTitleY is the Y of the screen title in design space.
	SelectTitleY float64 = -290

	// SelectTitleFontSize is the screen title font size.
	SelectTitleFontSize float64 = 34

	// SelectBodyFontSize is the panel/card body font size.
	SelectBodyFontSize float64 = 16

	// SelectNameFontSize is the class name font size on cards and panel.
	SelectNameFontSize float64 = 22
)
