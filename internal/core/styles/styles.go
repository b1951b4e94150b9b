// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// Section view styles.
	SectionNumberStyle     lipgloss.Style
	SectionTitleStyle      lipgloss.Style
	SectionSelectedStyle   lipgloss.Style
	SectionBodyStyle       lipgloss.Style
	SectionIndicatorStyle  lipgloss.Style
	SelectedBorderStyle    lipgloss.Style
	PlaceholderStyle       lipgloss.Style
	PlaceholderAccentStyle lipgloss.Style

	// Status bar styles.
	StatusModeStyle     lipgloss.Style
	StatusModeAltStyle  lipgloss.Style
	StatusInfoStyle     lipgloss.Style
	StatusBarFillStyle  lipgloss.Style
	StatusHistoryStyle  lipgloss.Style
	StatusDisabledStyle lipgloss.Style

	// Toast styles.
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// Collapse indicators for section headers.
const (
	IconExpanded  = "▾"
	IconCollapsed = "▸"
)

// Toast icons.
const (
	IconNotifyInfo    = "✓"
	IconNotifyWarning = "!"
	IconNotifyError   = "✗"
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	SectionNumberStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	SectionTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	SectionSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	SectionBodyStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	SectionIndicatorStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SelectedBorderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)

	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Padding(2, 4)
	PlaceholderAccentStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	StatusModeStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface).
		Bold(true).
		Padding(0, 1)
	StatusModeAltStyle = StatusModeStyle.Background(ColorPrimary).Foreground(ColorBackground)
	StatusInfoStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Background(ColorBackground).
		Padding(0, 1)
	StatusBarFillStyle = lipgloss.NewStyle().
		Background(ColorBackground)
	StatusHistoryStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Background(ColorBackground).
		Padding(0, 1)
	StatusDisabledStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Background(ColorBackground).
		Padding(0, 1)

	ToastInfoStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess).
		Foreground(ColorForeground).
		Padding(0, 1)
	ToastWarningStyle = ToastInfoStyle.BorderForeground(ColorWarning)
	ToastErrorStyle = ToastInfoStyle.BorderForeground(ColorError)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
// Used by the typeset renderer so rendered math and prose match the TUI.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)
	surface := colorHexPtr(ColorSurface)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Emph.Color = secondary
	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}
