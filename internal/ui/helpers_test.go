package ui

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short passthrough", "abc", 10, "abc"},
		{"exact passthrough", "abcde", 5, "abcde"},
		{"long gets ellipsis", "abcdefghij", 8, "abcde..."},
		{"tiny max hard cut", "abcdefghij", 2, "ab"},
		{"zero max", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.max); got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestHyperlink(t *testing.T) {
	link := hyperlink("https://example.com/case/1", "04001234")
	if !strings.Contains(link, "https://example.com/case/1") {
		t.Fatalf("link %q missing URL", link)
	}
	if !strings.Contains(link, "04001234") {
		t.Fatalf("link %q missing text", link)
	}
	if !strings.HasPrefix(link, "\x1b]8;;") {
		t.Fatalf("link %q missing OSC 8 opener", link)
	}
}

func TestHyperlink_EmptyURLIsPlainText(t *testing.T) {
	if got := hyperlink("", "text"); got != "text" {
		t.Fatalf("hyperlink with empty URL = %q, want plain text", got)
	}
}
