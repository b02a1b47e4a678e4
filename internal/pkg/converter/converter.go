package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nvquang/tikz-compiler/internal/entity"
)

type Options struct {
	DPI        int
	Background string
}

type Converter interface {
	Convert(ctx context.Context, pdfFile, pngFile string, opts Options) error
	Verify(pngFile string) (int, int, error)
	Version(ctx context.Context) error
}

// ImageMagick rasterizes a PDF into a PNG via the external convert binary.
type ImageMagick struct {
	binary  string
	timeout time.Duration
}

func NewImageMagick(binary string, timeout time.Duration) *ImageMagick {
	return &ImageMagick{
		binary:  binary,
		timeout: timeout,
	}
}

func (m *ImageMagick) buildArgs(pdfFile, pngFile string, opts Options) []string {
	args := []string{
		"-density", strconv.Itoa(opts.DPI),
		"-quality", "100",
		"-background", opts.Background,
	}

	// A transparent background needs the alpha channel kept, any other
	// background needs it flattened away.
	if opts.Background == entity.BackgroundTransparent {
		args = append(args, "-alpha", "on")
	} else {
		args = append(args, "-alpha", "remove")
	}

	return append(args, pdfFile, pngFile)
}

func (m *ImageMagick) Convert(ctx context.Context, pdfFile, pngFile string, opts Options) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, m.binary, m.buildArgs(pdfFile, pngFile, opts)...)

	output, err := cmd.CombinedOutput()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return entity.ErrConvertTimeout
	}
	if err != nil {
		return fmt.Errorf("%w: %s", entity.ErrConvertFailed, strings.TrimSpace(string(output)))
	}

	if _, err := os.Stat(pngFile); err != nil {
		return fmt.Errorf("%w: %s", entity.ErrNoArtifact, pngFile)
	}

	return nil
}

// Verify decodes the produced PNG and returns its pixel dimensions,
// guarding against a zero-exit convert that still wrote garbage.
func (m *ImageMagick) Verify(pngFile string) (int, int, error) {
	img, err := imaging.Open(pngFile)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", entity.ErrConvertFailed, err)
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

// Version probes the convert binary, used by the health check.
func (m *ImageMagick) Version(ctx context.Context) error {
	return exec.CommandContext(ctx, m.binary, "--version").Run()
}
