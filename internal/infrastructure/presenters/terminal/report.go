// Package terminal renders the status record for the check command.
package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
)

const labelWidth = 22

var (
	answerYesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	answerNoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	labelStyle     = lipgloss.NewStyle().Width(labelWidth).Bold(true)
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	bannerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
	boxStyle       = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#999999")).
			Padding(0, 1)
)

// Render returns a boxed report of data, one labelled row per field.
func Render(settings *entities.Settings, data entities.LoaderData) string {
	headline := answerNoStyle.Render(fmt.Sprintf("NO, still on Next.js %s", data.Version))
	if data.IsTargetVersionYet {
		headline = answerYesStyle.Render(fmt.Sprintf("YES, now on Next.js %s", data.Version))
	}

	rows := []string{
		headline,
		"",
		row("Current version", data.Version),
		row("Major version", fmt.Sprintf("%d", data.VersionNumber)),
		row("Target version", fmt.Sprintf("%d", settings.TargetVersion)),
		row("Days since created", fmt.Sprintf("%d", data.DaysSinceCreation)),
		row("Days since updated", days(data.DaysSinceUpdate)),
		row("Issue", issueStatus(data)),
	}
	if data.HasError() {
		rows = append(rows, "", bannerStyle.Render("Showing fallback data: "+data.Error))
	}

	title := lipgloss.NewStyle().Bold(true).Render(settings.SiteName)
	return lipgloss.JoinVertical(lipgloss.Left, title, boxStyle.Render(strings.Join(rows, "\n")))
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label+":"), valueStyle.Render(value))
}

func days(value *int) string {
	if value == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d", *value)
}

func issueStatus(data entities.LoaderData) string {
	switch {
	case !data.IsClosed:
		return "open"
	case data.DaysSinceClose == nil:
		return "closed"
	default:
		return fmt.Sprintf("closed %d days ago", *data.DaysSinceClose)
	}
}
