package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		logText string
		want    string
	}{
		{
			name:    "undefined control sequence",
			logText: "! Undefined control sequence.\nl.12 \\drw\n           (0,0) -- (1,1);",
			want:    "undefined control sequence: a command is misspelled or its package is not loaded",
		},
		{
			name:    "unmatched brace",
			logText: "Runaway argument?\n{(0,0) -- (1,1); \\end {tikzpicture} \\end {document}\n! File ended while scanning use of \\tikz@collectnormalsemicolon.",
			want:    "unbalanced braces: an argument was never closed",
		},
		{
			name:    "file ended while scanning",
			logText: "! File ended while scanning use of \\pgfutil@ifnextchar.",
			want:    "unbalanced braces or an environment left open",
		},
		{
			name:    "pgf package error",
			logText: "! Package pgf Error: No shape named `a' is known.",
			want:    "pgf error: check TikZ path and node syntax",
		},
		{
			name:    "pgfplots package error",
			logText: "! Package pgfplots Error: Could not read table file.",
			want:    "pgfplots error: check axis and plot options",
		},
		{
			name:    "tikz package error",
			logText: "! Package tikz Error: Giving up on this path.",
			want:    "tikz error: check TikZ path and node syntax",
		},
		{
			name:    "missing math delimiters",
			logText: "! Missing $ inserted.\n<inserted text>\n                $",
			want:    "math content outside math mode: wrap it in $...$",
		},
		{
			name:    "generic latex error",
			logText: "! LaTeX Error: Environment axis undefined.",
			want:    "general LaTeX error, see the log excerpt",
		},
		{
			name:    "nothing recognizable",
			logText: "This is pdfTeX, Version 3.141592653\nOutput written on tikz.pdf (1 page).",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.logText))
		})
	}
}

func TestErrorLines(t *testing.T) {
	logText := "This is pdfTeX\n! Undefined control sequence.\nl.12 \\drw\n! Emergency stop.\n"

	got := errorLines(logText)
	assert.Contains(t, got, "! Undefined control sequence.")
	assert.Contains(t, got, "! Emergency stop.")
}

func TestErrorLinesEmpty(t *testing.T) {
	assert.Equal(t, "", errorLines("clean run, nothing to report"))
}
