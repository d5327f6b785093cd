package report

import "github.com/charmbracelet/lipgloss"

var (
	// Zone kind colors — emerald for zoned, blue for global, red for delete.
	colorZoned  = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
	colorGlobal = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	colorDelete = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}

	// UI colors.
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
)

var (
	styleZonedBadge  = lipgloss.NewStyle().Foreground(colorZoned).Bold(true)
	styleGlobalBadge = lipgloss.NewStyle().Foreground(colorGlobal).Bold(true)
	styleDeleteBadge = lipgloss.NewStyle().Foreground(colorDelete).Bold(true)

	styleTitle = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleMeta  = lipgloss.NewStyle().Foreground(colorDim)
	styleWarn  = lipgloss.NewStyle().Foreground(colorWarn)
)
