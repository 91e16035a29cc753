package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vaultmigrate/internal/domain"
)

var (
	primary   = lipgloss.Color("#7C3AED") // Purple
	secondary = lipgloss.Color("#10B981") // Green
	muted     = lipgloss.Color("#6B7280") // Gray
	warning   = lipgloss.Color("#F59E0B") // Amber
	danger    = lipgloss.Color("#EF4444") // Red

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	labelStyle = lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(muted)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	warningStyle = lipgloss.NewStyle().
			Foreground(warning)

	errorStyle = lipgloss.NewStyle().
			Foreground(danger).
			Bold(true)
)

// field renders an aligned "label  value" line
func field(label string, value any) string {
	return fmt.Sprintf("%s %v", labelStyle.Render(fmt.Sprintf("%-14s", label)), value)
}

// statsLine renders per-source counters, highlighting problems
func statsLine(name string, s domain.MigrationStats) string {
	parts := []string{
		fmt.Sprintf("%d migrated", s.Migrated),
		mutedStyle.Render(fmt.Sprintf("%d skipped", s.Skipped)),
	}
	if s.Unreadable > 0 {
		parts = append(parts, warningStyle.Render(fmt.Sprintf("%d unreadable", s.Unreadable)))
	}
	if s.Collisions > 0 {
		parts = append(parts, errorStyle.Render(fmt.Sprintf("%d collisions", s.Collisions)))
	}
	return field(name, strings.Join(parts, ", "))
}
