package latex

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// DocumentName is the base name of every generated artifact inside a
// workspace: tikz.tex, tikz.pdf, tikz.log, tikz.png.
const DocumentName = "tikz"

// documentTemplate wraps a user TikZ fragment into a standalone document
// cropped to content bounds. The package and library set is fixed.
const documentTemplate = `\documentclass[border=2pt]{standalone}
\usepackage{tikz}
\usepackage{amsmath}
\usepackage{amsfonts}
\usepackage{amssymb}
\usetikzlibrary{arrows,decorations.pathmorphing,backgrounds,positioning,fit,petri,calc,patterns,shapes,plotmarks}

\begin{document}
\begin{tikzpicture}
{{.Source}}
\end{tikzpicture}
\end{document}
`

var docTemplate = template.Must(template.New("document").Parse(documentTemplate))

// RenderDocument embeds the TikZ fragment into the document skeleton.
func RenderDocument(source string) (string, error) {
	var sb strings.Builder
	err := docTemplate.Execute(&sb, struct{ Source string }{Source: source})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteDocument renders the document and writes it as tikz.tex into workDir,
// returning the full path of the written file.
func WriteDocument(workDir, source string) (string, error) {
	doc, err := RenderDocument(source)
	if err != nil {
		return "", err
	}

	texFile := filepath.Join(workDir, DocumentName+".tex")
	if err := os.WriteFile(texFile, []byte(doc), 0644); err != nil {
		return "", err
	}

	return texFile, nil
}
