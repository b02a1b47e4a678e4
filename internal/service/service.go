package service

import (
	"context"

	"github.com/nvquang/tikz-compiler/internal/entity"
	"github.com/nvquang/tikz-compiler/internal/pkg/cache"
	"github.com/nvquang/tikz-compiler/internal/pkg/converter"
	"github.com/nvquang/tikz-compiler/internal/pkg/latex"
)

type CompileService interface {
	Compile(ctx context.Context, req entity.CompileRequest) (*entity.CompileResponse, error)
}

type HealthService interface {
	Check(ctx context.Context) entity.HealthResponse
}

type compileService struct {
	compiler  latex.Compiler
	converter converter.Converter
	artifacts cache.ArtifactCache
}

// NewCompileService wires the pipeline; artifacts may be nil to disable
// caching.
func NewCompileService(compiler latex.Compiler, conv converter.Converter, artifacts cache.ArtifactCache) CompileService {
	return &compileService{
		compiler:  compiler,
		converter: conv,
		artifacts: artifacts,
	}
}

type healthService struct {
	compiler  latex.Compiler
	converter converter.Converter
}

func NewHealthService(compiler latex.Compiler, conv converter.Converter) HealthService {
	return &healthService{
		compiler:  compiler,
		converter: conv,
	}
}
