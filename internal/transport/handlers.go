package transport

import (
	"github.com/nvquang/tikz-compiler/internal/service"
)

type CompileHandler struct {
	service service.CompileService
	health  service.HealthService
	version string
}

func NewCompileHandler(compile service.CompileService, health service.HealthService, version string) *CompileHandler {
	return &CompileHandler{
		service: compile,
		health:  health,
		version: version,
	}
}
