package latex

import (
	"os"
	"path/filepath"
	"strings"
)

// Known error substrings emitted by the engine, checked in order. The table
// is version-sensitive (TeX Live wording) and has to be re-checked after a
// toolchain upgrade.
var logPatterns = []struct {
	substr  string
	message string
}{
	{"Undefined control sequence", "undefined control sequence: a command is misspelled or its package is not loaded"},
	{"Package pgfplots Error", "pgfplots error: check axis and plot options"},
	{"Package pgf Error", "pgf error: check TikZ path and node syntax"},
	{"Package tikz Error", "tikz error: check TikZ path and node syntax"},
	{"Missing $ inserted", "math content outside math mode: wrap it in $...$"},
	{"Missing \\endcsname inserted", "malformed command name"},
	{"Runaway argument", "unbalanced braces: an argument was never closed"},
	{"Paragraph ended before", "unbalanced braces: a command argument was interrupted"},
	{"File ended while scanning", "unbalanced braces or an environment left open"},
	{"Extra }, or forgotten", "extra } or unbalanced grouping"},
	{"Emergency stop", "the engine aborted before producing output"},
	{"LaTeX Error", "general LaTeX error, see the log excerpt"},
}

// Classify maps raw engine output to a friendlier message, or "" when
// nothing recognizable matched.
func Classify(logText string) string {
	for _, p := range logPatterns {
		if strings.Contains(logText, p.substr) {
			return p.message
		}
	}
	return ""
}

// errorLines extracts the engine's own error lines (prefixed with "!")
// so the raw cause survives even when Classify finds nothing.
func errorLines(logText string) string {
	var picked []string
	for _, line := range strings.Split(logText, "\n") {
		if strings.HasPrefix(line, "!") {
			picked = append(picked, strings.TrimSpace(line))
		}
		if len(picked) >= 3 {
			break
		}
	}
	return strings.Join(picked, "; ")
}

// readEngineLog returns the content of tikz.log if the engine got far
// enough to write one.
func readEngineLog(workDir string) string {
	data, err := os.ReadFile(filepath.Join(workDir, DocumentName+".log"))
	if err != nil {
		return ""
	}
	return string(data)
}
