package config

// Loading Scene configuration constants.

const (
	// GameWindowWidth is the default window width at startup.
	GameWindowWidth = 1280

	// GameWindowHeight is the default window height at startup.
	GameWindowHeight = 720

	// LoadingBarWidth is the progress bar width in pixels.
	LoadingBarWidth float64 = 420

	// LoadingBarHeight is the progress bar height in pixels.
	LoadingBarHeight float64 = 16

	// LoadingBarOffsetY is the progress bar offset below screen center.
	LoadingBarOffsetY float64 = 180

	// LoadingLogoTargetY is the logo's final Y offset above screen center
	// (drop animation target).
	LoadingLogoTargetY float64 = -140

	// LoadingLogoAnimDuration is the logo drop animation length (seconds).
	LoadingLogoAnimDuration float64 = 1.2

	// LoadingTextOffsetY is the status text offset below the progress bar.
	LoadingTextOffsetY float64 = 28

	// LoadingTextFontSize is the loading status text font size.
	LoadingTextFontSize float64 = 18

	// LoadingHandoffDelay is how long the full bar stays on screen before
	// the scene switches to class selection (seconds).
	LoadingHandoffDelay float64 = 0.4
)
