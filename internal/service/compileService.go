package service

import (
	"context"
	"encoding/base64"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nvquang/tikz-compiler/internal/entity"
	"github.com/nvquang/tikz-compiler/internal/pkg/cache"
	"github.com/nvquang/tikz-compiler/internal/pkg/converter"
	"github.com/nvquang/tikz-compiler/internal/pkg/latex"
	"github.com/nvquang/tikz-compiler/internal/pkg/workspace"
)

// Compile runs the full pipeline for one already-validated request:
// cache lookup, template render, external compilation, optional
// rasterization, base64 encoding. The workspace is removed on every path.
func (s *compileService) Compile(ctx context.Context, req entity.CompileRequest) (*entity.CompileResponse, error) {
	fileID := uuid.New().String()

	key := cache.Key(req)
	if s.artifacts != nil {
		if cached, found := s.artifacts.Get(key); found {
			logrus.WithField("file_id", fileID).Info("serving compilation from cache")
			return successResponse(fileID, cached), nil
		}
	}

	ws, err := workspace.New()
	if err != nil {
		return nil, err
	}
	defer ws.Cleanup()

	if _, err := latex.WriteDocument(ws.Dir(), req.TikzCode); err != nil {
		return nil, err
	}

	pdfFile, err := s.compiler.Compile(ctx, ws.Dir())
	if err != nil {
		return nil, err
	}

	artifacts := &entity.Artifacts{}

	if req.WantsPDF() {
		data, err := ws.ReadFile(latex.DocumentName + ".pdf")
		if err != nil {
			return nil, err
		}
		artifacts.PDFBase64 = base64.StdEncoding.EncodeToString(data)
	}

	if req.WantsPNG() {
		pngFile := ws.Path(latex.DocumentName + ".png")
		opts := converter.Options{DPI: req.DPI, Background: req.Background}

		if err := s.converter.Convert(ctx, pdfFile, pngFile, opts); err != nil {
			return nil, err
		}

		width, height, err := s.converter.Verify(pngFile)
		if err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{
			"file_id": fileID,
			"width":   width,
			"height":  height,
			"dpi":     req.DPI,
		}).Info("rasterized pdf to png")

		data, err := ws.ReadFile(latex.DocumentName + ".png")
		if err != nil {
			return nil, err
		}
		artifacts.PNGBase64 = base64.StdEncoding.EncodeToString(data)
	}

	if s.artifacts != nil {
		s.artifacts.Set(key, artifacts)
	}

	return successResponse(fileID, artifacts), nil
}

func successResponse(fileID string, artifacts *entity.Artifacts) *entity.CompileResponse {
	return &entity.CompileResponse{
		Success:   true,
		Message:   "compilation successful",
		PDFBase64: artifacts.PDFBase64,
		PNGBase64: artifacts.PNGBase64,
		FileID:    fileID,
	}
}
