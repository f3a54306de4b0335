// Package server exposes dependency status over HTTP so an orchestrator can
// gate a PDF conversion service on it.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pdfdoctor/internal/config"
	"pdfdoctor/internal/system"
)

type Server struct {
	Addr   string
	Config config.Config
}

// Handler builds the gin engine with all routes mounted.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	mountAPI(r, s.Config)
	return r
}

// Start serves until ctx is cancelled. It returns http.ErrServerClosed after
// a clean shutdown.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()
	system.Logger.Info("health server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}
