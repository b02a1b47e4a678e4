package latex

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/nvquang/tikz-compiler/internal/entity"
	"github.com/sirupsen/logrus"
)

type Compiler interface {
	Compile(ctx context.Context, workDir string) (string, error)
	Version(ctx context.Context) error
	FindPackage(ctx context.Context, name string) error
}

// Engine drives an external LaTeX engine (pdflatex) as a subprocess.
type Engine struct {
	binary    string
	kpsewhich string
	timeout   time.Duration
}

func NewEngine(binary, kpsewhich string, timeout time.Duration) *Engine {
	return &Engine{
		binary:    binary,
		kpsewhich: kpsewhich,
		timeout:   timeout,
	}
}

// Compile runs the engine against tikz.tex inside workDir and returns the
// path of the produced PDF. Non-zero exit, timeout and missing output are
// all compilation failures.
func (e *Engine) Compile(ctx context.Context, workDir string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	texFile := filepath.Join(workDir, DocumentName+".tex")
	cmd := exec.CommandContext(ctx, e.binary,
		"-interaction=nonstopmode",
		"-output-directory", workDir,
		texFile,
	)
	cmd.Dir = workDir

	output, err := cmd.CombinedOutput()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", entity.ErrCompileTimeout
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s", entity.ErrCompileFailed, e.describeFailure(workDir, output))
	}

	pdfFile := filepath.Join(workDir, DocumentName+".pdf")
	if _, err := os.Stat(pdfFile); err != nil {
		return "", fmt.Errorf("%w: %s", entity.ErrNoArtifact, DocumentName+".pdf")
	}

	return pdfFile, nil
}

// describeFailure scans the engine log (falling back to captured output)
// for recognizable error substrings.
func (e *Engine) describeFailure(workDir string, output []byte) string {
	logText := readEngineLog(workDir)
	if logText == "" {
		logText = string(output)
	}

	msg := Classify(logText)
	if raw := errorLines(logText); raw != "" {
		if msg != "" {
			return msg + " (" + raw + ")"
		}
		return raw
	}
	if msg != "" {
		return msg
	}

	logrus.Warn("latex failure with no recognizable log pattern")
	return "the engine exited with an error, no recognizable log pattern"
}

// Version probes the engine binary, used by the health check.
func (e *Engine) Version(ctx context.Context) error {
	return exec.CommandContext(ctx, e.binary, "--version").Run()
}

// FindPackage checks that a macro package (e.g. tikz.sty) is installed.
func (e *Engine) FindPackage(ctx context.Context, name string) error {
	return exec.CommandContext(ctx, e.kpsewhich, name).Run()
}
