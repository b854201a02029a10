package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/stroke/config"
	"github.com/muesli/termenv"
)

// Palette names. Auto resolves to dark or light from the terminal background.
const (
	NameAuto     = "auto"
	NameDark     = config.ThemeDark
	NameLight    = config.ThemeLight
	NameTerminal = config.ThemeTerminal
)

// --- Dark palette ---
const (
	darkGreen      = "#98BB6C"
	darkYellow     = "#FF9E3B"
	darkRed        = "#FF5D62"
	darkOrange     = "#FFA066"
	darkCyan       = "#7E9CD8"
	darkViolet     = "#957FB8"
	darkLightText  = "#DCD7BA"
	darkMutedText  = "#727169"
	darkBorder     = "#54546D"
	darkKeyFace    = "#2A2A37"
	darkActiveFace = "#223249"
)

// --- Light palette ---
const (
	lightGreen      = "#4E7C5A"
	lightYellow     = "#A68A64"
	lightRed        = "#C34043"
	lightOrange     = "#CC6B4E"
	lightCyan       = "#4F7CAC"
	lightViolet     = "#674D7A"
	lightLightText  = "#2B2F42"
	lightMutedText  = "#6C7086"
	lightBorder     = "#B5BDC5"
	lightKeyFace    = "#F2F2F7"
	lightActiveFace = "#E2E6F3"
)

// --- Terminal (ANSI-friendly) palette ---
const (
	terminalGreen      = "2"
	terminalYellow     = "3"
	terminalRed        = "1"
	terminalOrange     = "208"
	terminalCyan       = "6"
	terminalViolet     = "5"
	terminalLightText  = "7"
	terminalMutedText  = "8"
	terminalBorder     = "8"
	terminalKeyFace    = "0"
	terminalActiveFace = "8"
)

// Colors encapsulates the palette used by a theme.
type Colors struct {
	Green      lipgloss.TerminalColor
	Yellow     lipgloss.TerminalColor
	Red        lipgloss.TerminalColor
	Orange     lipgloss.TerminalColor
	Cyan       lipgloss.TerminalColor
	Violet     lipgloss.TerminalColor
	LightText  lipgloss.TerminalColor
	MutedText  lipgloss.TerminalColor
	Border     lipgloss.TerminalColor
	KeyFace    lipgloss.TerminalColor
	ActiveFace lipgloss.TerminalColor
}

// Theme holds the pre-configured styles for stroke's terminal output.
type Theme struct {
	Name   string
	Colors Colors

	// Headers and titles
	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles
	Bold   lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style

	Box  lipgloss.Style
	Code lipgloss.Style

	Highlight lipgloss.Style
	Accent    lipgloss.Style

	// Keyboard styles
	Key         lipgloss.Style // one 3x3 key face
	KeyActive   lipgloss.Style // key face while a stroke is being entered
	ZoneLabel   lipgloss.Style // label in an inner zone cell
	ZoneEmpty   lipgloss.Style // placeholder for an unpopulated cell
	ZoneStart   lipgloss.Style // the pending start zone
	OuterLabel  lipgloss.Style // labels outside the key face
	ShiftOn     lipgloss.Style
	ShiftLock   lipgloss.Style
	LayoutBadge lipgloss.Style
	Output      lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	NameDark:     newDarkColors,
	NameLight:    newLightColors,
	NameTerminal: newTerminalColors,
}

var themeAliases = map[string]string{
	"default": NameAuto,
	"":        NameAuto,
	"ansi":    NameTerminal,
}

// DefaultTheme is the theme selected by STROKE_THEME or tui.theme.
var DefaultTheme = NewTheme()

// NewTheme creates a theme based on the configured theme selection.
func NewTheme() *Theme {
	return NewThemeWithName(getThemeName())
}

// NewThemeWithName constructs a theme from a palette name. Unknown names and
// "auto" pick dark or light from the terminal background.
func NewThemeWithName(name string) *Theme {
	resolved := Resolve(name)
	return newThemeFromColors(themeRegistry[resolved](), resolved)
}

// Resolve maps a configured theme name to a registered palette name.
func Resolve(name string) string {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	if _, ok := themeRegistry[key]; ok {
		return key
	}
	if termenv.HasDarkBackground() {
		return NameDark
	}
	return NameLight
}

// RenderHeader renders a header with the default styling.
func RenderHeader(title string) string {
	return DefaultTheme.Header.Render(title)
}

// RenderStatus renders text with the appropriate status style.
func RenderStatus(status, text string) string {
	switch status {
	case "success":
		return DefaultTheme.Success.Render(text)
	case "error":
		return DefaultTheme.Error.Render(text)
	case "warning":
		return DefaultTheme.Warning.Render(text)
	case "info":
		return DefaultTheme.Info.Render(text)
	default:
		return text
	}
}

func newThemeFromColors(colors Colors, name string) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Underline(true),

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Normal: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Foreground(colors.MutedText),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),

		Code: lipgloss.NewStyle().
			Foreground(colors.LightText).
			Padding(0, 1),

		Highlight: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),

		Key: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Background(colors.KeyFace),

		KeyActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Orange).
			Background(colors.ActiveFace),

		ZoneLabel: lipgloss.NewStyle().
			Foreground(colors.LightText).
			Width(3).
			Align(lipgloss.Center),

		ZoneEmpty: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Width(3).
			Align(lipgloss.Center),

		ZoneStart: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true).
			Width(3).
			Align(lipgloss.Center),

		OuterLabel: lipgloss.NewStyle().
			Foreground(colors.Cyan),

		ShiftOn: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		ShiftLock: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true).
			Underline(true),

		LayoutBadge: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true).
			Padding(0, 1),

		Output: lipgloss.NewStyle().
			Foreground(colors.LightText).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colors.Border),
	}
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func getThemeName() string {
	if theme := normalizeThemeName(os.Getenv("STROKE_THEME")); theme != "" {
		return theme
	}

	cfg, err := config.LoadDefault()
	if err != nil || cfg == nil || cfg.TUI == nil {
		return NameAuto
	}
	if theme := normalizeThemeName(cfg.TUI.Theme); theme != "" {
		return theme
	}
	return NameAuto
}

func newDarkColors() Colors {
	return Colors{
		Green:      lipgloss.Color(darkGreen),
		Yellow:     lipgloss.Color(darkYellow),
		Red:        lipgloss.Color(darkRed),
		Orange:     lipgloss.Color(darkOrange),
		Cyan:       lipgloss.Color(darkCyan),
		Violet:     lipgloss.Color(darkViolet),
		LightText:  lipgloss.Color(darkLightText),
		MutedText:  lipgloss.Color(darkMutedText),
		Border:     lipgloss.Color(darkBorder),
		KeyFace:    lipgloss.Color(darkKeyFace),
		ActiveFace: lipgloss.Color(darkActiveFace),
	}
}

func newLightColors() Colors {
	return Colors{
		Green:      lipgloss.Color(lightGreen),
		Yellow:     lipgloss.Color(lightYellow),
		Red:        lipgloss.Color(lightRed),
		Orange:     lipgloss.Color(lightOrange),
		Cyan:       lipgloss.Color(lightCyan),
		Violet:     lipgloss.Color(lightViolet),
		LightText:  lipgloss.Color(lightLightText),
		MutedText:  lipgloss.Color(lightMutedText),
		Border:     lipgloss.Color(lightBorder),
		KeyFace:    lipgloss.Color(lightKeyFace),
		ActiveFace: lipgloss.Color(lightActiveFace),
	}
}

func newTerminalColors() Colors {
	return Colors{
		Green:      lipgloss.Color(terminalGreen),
		Yellow:     lipgloss.Color(terminalYellow),
		Red:        lipgloss.Color(terminalRed),
		Orange:     lipgloss.Color(terminalOrange),
		Cyan:       lipgloss.Color(terminalCyan),
		Violet:     lipgloss.Color(terminalViolet),
		LightText:  lipgloss.Color(terminalLightText),
		MutedText:  lipgloss.Color(terminalMutedText),
		Border:     lipgloss.Color(terminalBorder),
		KeyFace:    lipgloss.Color(terminalKeyFace),
		ActiveFace: lipgloss.Color(terminalActiveFace),
	}
}
