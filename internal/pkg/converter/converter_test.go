package converter

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvquang/tikz-compiler/internal/entity"
)

// writeScript creates an executable stub standing in for the convert binary.
func writeScript(t *testing.T, content string) string {
	t.Helper()
	script := filepath.Join(t.TempDir(), "convert-stub.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"+content), 0755))
	return script
}

func TestBuildArgs(t *testing.T) {
	m := NewImageMagick("convert", time.Second)

	tests := []struct {
		name       string
		background string
		wantAlpha  string
	}{
		{
			name:       "white background flattens alpha",
			background: entity.BackgroundWhite,
			wantAlpha:  "remove",
		},
		{
			name:       "transparent background keeps alpha",
			background: entity.BackgroundTransparent,
			wantAlpha:  "on",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := m.buildArgs("in.pdf", "out.png", Options{DPI: 300, Background: tt.background})

			assert.Equal(t, []string{
				"-density", "300",
				"-quality", "100",
				"-background", tt.background,
				"-alpha", tt.wantAlpha,
				"in.pdf", "out.png",
			}, args)
		})
	}
}

func TestConvertSuccess(t *testing.T) {
	workDir := t.TempDir()
	pngFile := filepath.Join(workDir, "tikz.png")

	// The stub touches its last argument, like convert writing the output
	binary := writeScript(t, `for a in "$@"; do last=$a; done; : > "$last"`)

	m := NewImageMagick(binary, 5*time.Second)
	err := m.Convert(context.Background(), filepath.Join(workDir, "tikz.pdf"), pngFile,
		Options{DPI: 300, Background: entity.BackgroundWhite})

	require.NoError(t, err)
	assert.FileExists(t, pngFile)
}

func TestConvertNonZeroExit(t *testing.T) {
	workDir := t.TempDir()
	binary := writeScript(t, `echo 'convert: no images defined' >&2; exit 1`)

	m := NewImageMagick(binary, 5*time.Second)
	err := m.Convert(context.Background(), "in.pdf", filepath.Join(workDir, "tikz.png"),
		Options{DPI: 300, Background: entity.BackgroundWhite})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrConvertFailed)
	assert.Contains(t, err.Error(), "no images defined")
}

func TestConvertMissingOutput(t *testing.T) {
	workDir := t.TempDir()
	binary := writeScript(t, `exit 0`)

	m := NewImageMagick(binary, 5*time.Second)
	err := m.Convert(context.Background(), "in.pdf", filepath.Join(workDir, "tikz.png"),
		Options{DPI: 300, Background: entity.BackgroundWhite})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrNoArtifact)
}

func TestConvertTimeout(t *testing.T) {
	workDir := t.TempDir()
	binary := writeScript(t, `sleep 5`)

	m := NewImageMagick(binary, 100*time.Millisecond)
	err := m.Convert(context.Background(), "in.pdf", filepath.Join(workDir, "tikz.png"),
		Options{DPI: 300, Background: entity.BackgroundWhite})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrConvertTimeout)
}

func TestVerify(t *testing.T) {
	pngFile := filepath.Join(t.TempDir(), "tikz.png")

	out, err := os.Create(pngFile)
	require.NoError(t, err)
	require.NoError(t, png.Encode(out, image.NewRGBA(image.Rect(0, 0, 40, 25))))
	require.NoError(t, out.Close())

	m := NewImageMagick("convert", time.Second)
	width, height, err := m.Verify(pngFile)

	require.NoError(t, err)
	assert.Equal(t, 40, width)
	assert.Equal(t, 25, height)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	pngFile := filepath.Join(t.TempDir(), "tikz.png")
	require.NoError(t, os.WriteFile(pngFile, []byte("not a png"), 0644))

	m := NewImageMagick("convert", time.Second)
	_, _, err := m.Verify(pngFile)

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrConvertFailed)
}
