package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines all colors for the TUI
type Theme struct {
	Name string

	// Primary colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Text colors
	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	TextInverse lipgloss.Color

	// Background colors
	Background          lipgloss.Color
	BackgroundSecondary lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Border colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	BorderMuted lipgloss.Color
}

// Current is the active theme
var Current = DefaultTheme()

// Set makes the named theme current. Unknown names select the default.
func Set(name string) {
	switch name {
	case "synthwave":
		Current = Synthwave()
	default:
		Current = DefaultTheme()
	}
}

// DefaultTheme returns the portfolio's slate and indigo palette
func DefaultTheme() Theme {
	return Theme{
		Name: "default",

		Primary:   lipgloss.Color("#818CF8"), // Indigo
		Secondary: lipgloss.Color("#475569"), // Slate
		Accent:    lipgloss.Color("#38BDF8"), // Sky

		Text:        lipgloss.Color("#E2E8F0"),
		TextMuted:   lipgloss.Color("#94A3B8"),
		TextInverse: lipgloss.Color("#0F172A"),

		Background:          lipgloss.Color("#0F172A"),
		BackgroundSecondary: lipgloss.Color("#1E293B"),

		Success: lipgloss.Color("#10B981"),
		Warning: lipgloss.Color("#F59E0B"),
		Error:   lipgloss.Color("#EF4444"),
		Info:    lipgloss.Color("#64748B"),

		Border:      lipgloss.Color("#334155"),
		BorderFocus: lipgloss.Color("#818CF8"),
		BorderMuted: lipgloss.Color("#1E293B"),
	}
}

// Synthwave returns the neon palette the chat assistant can switch on
func Synthwave() Theme {
	return Theme{
		Name:                "synthwave",
		Primary:             lipgloss.Color("#FF2E97"), // Hot pink
		Secondary:           lipgloss.Color("#7B2CBF"),
		Accent:              lipgloss.Color("#00F0FF"), // Cyan
		Text:                lipgloss.Color("#F8F0FF"),
		TextMuted:           lipgloss.Color("#B79CED"),
		TextInverse:         lipgloss.Color("#14041F"),
		Background:          lipgloss.Color("#14041F"),
		BackgroundSecondary: lipgloss.Color("#2A0A3D"),
		Success:             lipgloss.Color("#72F1B8"),
		Warning:             lipgloss.Color("#FEDE5D"),
		Error:               lipgloss.Color("#FE4450"),
		Info:                lipgloss.Color("#00F0FF"),
		Border:              lipgloss.Color("#7B2CBF"),
		BorderFocus:         lipgloss.Color("#FF2E97"),
		BorderMuted:         lipgloss.Color("#2A0A3D"),
	}
}
