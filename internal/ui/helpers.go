package ui

import "fmt"

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// hyperlink wraps text in an OSC 8 terminal hyperlink. Terminals
// without OSC 8 support show the plain text; the escape itself has no
// visible width, so table layout is unaffected.
func hyperlink(url, text string) string {
	if url == "" {
		return text
	}
	return fmt.Sprintf("\x1b]8;;%s\x07%s\x1b]8;;\x07", url, text)
}
