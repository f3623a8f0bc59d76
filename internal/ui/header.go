package ui

import (
	"fmt"
	"strings"
	"time"
)

// renderHeader renders the top status bar: logo, last-update time,
// countdown to the next refresh, and the current error if any.
func (m Model) renderHeader() string {
	sep := "  "
	parts := []string{m.styles.Logo.Render("casewatch")}

	if m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, m.styles.WarningText.Bold(true).Render("Connecting to the customer portal..."))
	} else {
		parts = append(parts,
			m.styles.MutedText.Render("Updated:")+" "+m.styles.Text.Render(m.formatLastUpdate()),
			m.styles.MutedText.Render("Next refresh in:")+" "+m.styles.Text.Render(m.formatCountdown()),
		)
	}

	if m.snapshot.Refreshing {
		parts = append(parts, m.spinner.View()+" "+m.styles.AccentText.Render("refreshing"))
	}

	if m.snapshot.LastError != "" {
		maxErr := 80
		if m.width > 0 && m.width < 100 {
			maxErr = 40
		}
		parts = append(parts,
			m.styles.DangerText.Render("ERROR")+" "+
				m.styles.DangerText.Render(truncate(m.snapshot.LastError, maxErr)))
	}

	return m.styles.Header.Width(m.contentWidth()).Render(strings.Join(parts, sep))
}

// renderSummary renders the case-count bar. Waiting-on-customer is the
// remainder: the fetch filter only admits the two waiting states.
func (m Model) renderSummary() string {
	total := m.snapshot.TotalCases()
	waitingRH := m.snapshot.WaitingOnRedHat()
	waitingCustomer := total - waitingRH

	sep := m.styles.FaintText.Render("  •  ")
	parts := []string{
		m.styles.MutedText.Render("Total:") + " " + m.styles.Text.Render(fmt.Sprintf("%d", total)),
		m.styles.MutedText.Render("Waiting on Red Hat:") + " " + m.styles.DangerText.Render(fmt.Sprintf("%d", waitingRH)),
		m.styles.MutedText.Render("Waiting on Customer:") + " " + m.styles.WarningText.Render(fmt.Sprintf("%d", waitingCustomer)),
	}

	return m.styles.Header.Width(m.contentWidth()).Render(strings.Join(parts, sep))
}

// renderFooter renders the key hints bar.
func (m Model) renderFooter() string {
	type hint struct{ key, desc string }
	hints := []hint{
		{"q", "quit"},
		{"r", "refresh now"},
		{"t", "theme: " + m.theme.Name},
	}

	segments := make([]string, 0, len(hints))
	for _, h := range hints {
		segments = append(segments,
			m.styles.AccentText.Render(h.key)+m.styles.FaintText.Render(":")+m.styles.MutedText.Render(h.desc))
	}

	return m.styles.Footer.Width(m.contentWidth()).Render(strings.Join(segments, "  "))
}

// formatLastUpdate shows the last pass completion with a relative
// suffix once it gets stale.
func (m Model) formatLastUpdate() string {
	at := m.snapshot.LastUpdated
	timeStr := at.Format("15:04:05")

	since := m.now.Sub(at)
	switch {
	case since < time.Minute:
		// fresh enough, no suffix
	case since < time.Hour:
		timeStr += fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	case since < 24*time.Hour:
		timeStr += fmt.Sprintf(" (%dh ago)", int(since.Hours()))
	default:
		timeStr = at.Format("2006-01-02 15:04:05")
	}
	return timeStr
}

// formatCountdown shows time remaining until the next scheduled pass.
func (m Model) formatCountdown() string {
	next := m.snapshot.LastUpdated.Add(m.options.RefreshEvery)
	remaining := next.Sub(m.now)
	if remaining < 0 {
		remaining = 0
	}
	remaining = remaining.Truncate(time.Second)

	if remaining >= time.Minute {
		return fmt.Sprintf("%dm%02ds", int(remaining.Minutes()), int(remaining.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(remaining.Seconds()))
}

func (m Model) contentWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 120
}
