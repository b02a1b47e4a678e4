package service

import (
	"context"

	"github.com/nvquang/tikz-compiler/internal/entity"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	toolAvailable    = "available"
	toolNotAvailable = "not available"
)

// Check probes every external collaborator: the engine binary, the tikz
// macro package and the rasterizer binary.
func (s *healthService) Check(ctx context.Context) entity.HealthResponse {
	resp := entity.HealthResponse{
		Status:      statusHealthy,
		PDFLatex:    toolAvailable,
		TikZ:        toolAvailable,
		ImageMagick: toolAvailable,
	}

	if err := s.compiler.Version(ctx); err != nil {
		resp.PDFLatex = toolNotAvailable
		resp.Status = statusUnhealthy
	}
	if err := s.compiler.FindPackage(ctx, "tikz.sty"); err != nil {
		resp.TikZ = toolNotAvailable
		resp.Status = statusUnhealthy
	}
	if err := s.converter.Version(ctx); err != nil {
		resp.ImageMagick = toolNotAvailable
		resp.Status = statusUnhealthy
	}

	return resp
}
