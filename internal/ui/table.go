package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/calens/casewatch/internal/state"
)

// renderAccountTable renders one account's cases. Zero cases produce a
// single placeholder row so the account is never invisible.
func (m Model) renderAccountTable(acc state.Account) string {
	title := m.styles.TableTitle.Render(accountTitle(acc))

	headers := []string{"CASE #", "SUMMARY", "SEVERITY", "STATUS", "PRODUCT", "MODIFIED"}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(m.styles.TableBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return m.styles.AccentText.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	if m.width > 0 {
		t = t.Width(m.width)
	}

	if len(acc.Cases) == 0 {
		t = t.Row("", m.styles.FaintText.Render("No active cases"), "", "", "", "")
	} else {
		for _, c := range acc.Cases {
			t = t.Row(
				hyperlink(c.URL(), m.styles.InfoText.Render(c.Number)),
				m.styles.Text.Render(c.Summary),
				m.styles.SeverityStyle(c.Severity).Render(c.Severity),
				m.styles.StatusStyle(c.Status).Render(c.Status),
				m.styles.Text.Render(c.Product),
				m.styles.MutedText.Render(c.LastModified),
			)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render())
}

// accountTitle labels a table with the account's display name and id.
// Either field may be empty in a sparse accounts file.
func accountTitle(acc state.Account) string {
	switch {
	case acc.Name == "" && acc.ID == "":
		return "(unnamed account)"
	case acc.Name == "":
		return fmt.Sprintf("(%s)", acc.ID)
	case acc.ID == "":
		return acc.Name
	default:
		return fmt.Sprintf("%s (%s)", acc.Name, acc.ID)
	}
}
