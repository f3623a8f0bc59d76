// Package logging provides the file-backed diagnostic logger.
//
// The TUI owns the terminal, so diagnostics can never go to stdout or
// stderr without corrupting the display. Instead everything is written
// to a size-capped log file under the user's state directory, where it
// can be tailed from another terminal while the dashboard runs.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/phuslu/log"
)

const defaultLogPath = "~/.local/share/casewatch/casewatch.log"

// Open returns a logger writing to the casewatch log file. An empty
// path uses the default location. Logging is best-effort: if the file
// cannot be used, a silent logger is returned rather than an error.
func Open(path string) log.Logger {
	resolved, err := expandPath(path)
	if err != nil {
		return silent()
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return silent()
	}

	return log.Logger{
		Level:      log.InfoLevel,
		TimeFormat: "2006-01-02 15:04:05",
		Writer: &log.FileWriter{
			Filename:   resolved,
			MaxSize:    10 << 20,
			MaxBackups: 2,
			LocalTime:  true,
		},
	}
}

func silent() log.Logger {
	return log.Logger{Writer: log.IOWriter{Writer: io.Discard}}
}

func expandPath(path string) (string, error) {
	if path == "" {
		path = defaultLogPath
	}
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}
