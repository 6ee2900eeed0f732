// Package server exposes the capture sessions over a local HTTP API so the
// term command can fetch the last N bytes of a named target remotely.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"termtap/internal/capture"
	"termtap/internal/system"
	appver "termtap/internal/version"
)

// registry holds the server's named sessions. Package-level so the plain
// http handlers below can reach it without plumbing.
var registry = capture.NewRegistry()

type Server struct {
	Addr string
}

func (s *Server) Start(ctx context.Context) error {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	mountAPIGin(r)

	srv := &http.Server{Addr: s.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("capture server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

func mountAPIGin(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", gin.WrapF(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}))
	api.GET("/version", gin.WrapF(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"version": appver.AppVersion})
	}))

	// Sessions
	api.Any("/sessions", gin.WrapF(sessionsRootHandler))
	// Catch-all below /api/sessions/* to the http handler
	r.Any("/api/sessions/*any", gin.WrapF(sessionItemHandler))
}
