// launching the server and wiring the compilation pipeline
package appServer

import (
	"context"
	"crypto/tls"
	"log"

	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nvquang/tikz-compiler/config"
	"github.com/nvquang/tikz-compiler/internal/pkg/cache"
	"github.com/nvquang/tikz-compiler/internal/pkg/converter"
	"github.com/nvquang/tikz-compiler/internal/pkg/latex"
	"github.com/nvquang/tikz-compiler/internal/service"
	"github.com/nvquang/tikz-compiler/internal/transport"

	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},           // ban on outdate TLS certificate
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags), // os.Stderr can be replaced with ElsasticSearch in the feature
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(new(logrus.JSONFormatter))

	engine := latex.NewEngine(
		config.GetEnv("LATEX_BIN", cfg.Latex.Binary),
		config.GetEnv("KPSEWHICH_BIN", cfg.Latex.Kpsewhich),
		cfg.Latex.Timeout,
	)
	rasterizer := converter.NewImageMagick(
		config.GetEnv("CONVERT_BIN", cfg.Convert.Binary),
		cfg.Convert.Timeout,
	)

	var artifacts cache.ArtifactCache
	if cfg.Cache.Enabled {
		artifacts = cache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	compileService := service.NewCompileService(engine, rasterizer, artifacts)
	healthService := service.NewHealthService(engine, rasterizer)
	handler := transport.NewCompileHandler(compileService, healthService, cfg.Server.AppVersion)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(handler, cfg.Server.RequestTimeout)); err != nil {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}

}
