package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vaultpass/passboard/internal/password"
)

const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorError     = lipgloss.Color("196")
	colorSuccess   = lipgloss.Color("40")
	colorWarning   = lipgloss.Color("220")
)

var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(colorSubtle)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	statusStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 2).
			MarginRight(1)
	cardValueStyle = lipgloss.NewStyle().Bold(true)

	headerCellStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorSubtle)
	selectedRowStyle   = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	activeBadgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(colorHighlight).Padding(0, 1)
	inactiveBadgeStyle = lipgloss.NewStyle().Foreground(colorSubtle).Padding(0, 1)

	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	labelStyle        = lipgloss.NewStyle()

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorError).
			Padding(1, 2).
			Width(72)
)

func newStrengthBars(width int) map[password.Tier]progress.Model {
	tiers := []password.Tier{password.TierWeak, password.TierMedium, password.TierStrong}
	bars := make(map[password.Tier]progress.Model, len(tiers))
	for _, tier := range tiers {
		bars[tier] = progress.New(
			progress.WithSolidFill(tier.Color()),
			progress.WithoutPercentage(),
			progress.WithWidth(width),
		)
	}
	return bars
}

func strengthBar(bars map[password.Tier]progress.Model, score int) string {
	return bars[password.TierFor(score)].ViewAs(float64(score) / 100)
}
