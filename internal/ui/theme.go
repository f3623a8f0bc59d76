package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/calens/casewatch/internal/redhat"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header/footer bars
	Border     string // Table borders

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Severity colors keyed by the API's severity spelling.
	SeverityColors map[string]string

	// Status colors keyed by case status. Only the two waiting states
	// appear in practice; anything else falls back to Text.
	StatusColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		TableBorder: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Border)),

		TableTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		severityColors: t.SeverityColors,
		statusColors:   t.StatusColors,
		text:           t.Text,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header      lipgloss.Style
	Footer      lipgloss.Style
	Logo        lipgloss.Style
	TableBorder lipgloss.Style
	TableTitle  lipgloss.Style

	severityColors map[string]string
	statusColors   map[string]string
	text           string
}

// SeverityStyle returns the style for a case severity. Unknown
// severities render in the default text color.
func (s Styles) SeverityStyle(severity string) lipgloss.Style {
	color := s.severityColors[severity]
	if color == "" {
		color = s.text
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	if severity == redhat.SeverityUrgent {
		style = style.Bold(true)
	}
	return style
}

// StatusStyle returns the style for a case status: danger when the
// ball is in Red Hat's court, warning otherwise.
func (s Styles) StatusStyle(status string) lipgloss.Style {
	color := s.statusColors[status]
	if color == "" {
		color = s.text
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	if status == redhat.StatusWaitingOnRedHat {
		style = style.Bold(true)
	}
	return style
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		Border:     "#39506d", // bg4

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan

		SeverityColors: map[string]string{
			redhat.SeverityUrgent: "#c94f6d", // red
			redhat.SeverityHigh:   "#f4a261", // orange
			redhat.SeverityNormal: "#dbc074", // yellow
			redhat.SeverityLow:    "#81b29a", // green
		},
		StatusColors: map[string]string{
			redhat.StatusWaitingOnRedHat:   "#c94f6d", // red
			redhat.StatusWaitingOnCustomer: "#dbc074", // yellow
		},
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		Border:     "#54546D", // sumiInk6

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue

		SeverityColors: map[string]string{
			redhat.SeverityUrgent: "#E46876", // waveRed
			redhat.SeverityHigh:   "#FFA066", // surimiOrange
			redhat.SeverityNormal: "#E6C384", // carpYellow
			redhat.SeverityLow:    "#98BB6C", // springGreen
		},
		StatusColors: map[string]string{
			redhat.StatusWaitingOnRedHat:   "#E46876", // waveRed
			redhat.StatusWaitingOnCustomer: "#E6C384", // carpYellow
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		Border:     "#334155", // slate-700

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		SeverityColors: map[string]string{
			redhat.SeverityUrgent: "#dc2626", // red-600
			redhat.SeverityHigh:   "#f97316", // orange-500
			redhat.SeverityNormal: "#f59e0b", // amber-500
			redhat.SeverityLow:    "#22c55e", // green-500
		},
		StatusColors: map[string]string{
			redhat.StatusWaitingOnRedHat:   "#dc2626", // red-600
			redhat.StatusWaitingOnCustomer: "#f59e0b", // amber-500
		},
	}
}
