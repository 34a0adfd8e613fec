package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wy/pgsweep/types"
)

// StatusServer exposes the progress of a running sweep over HTTP. It only
// reads the status, the sweep never waits on it.
type StatusServer struct {
	Addr   string
	ctx    context.Context
	server *http.Server
	status *types.Status
}

func NewStatusServer(ctx context.Context, addr string, status *types.Status) *StatusServer {
	s := &StatusServer{
		Addr:   addr,
		ctx:    ctx,
		status: status,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/status", s.handleStatus)
	r.GET("/health", healthHandler)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return s
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (s *StatusServer) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.status.Snapshot())
}

func (s *StatusServer) Start() {
	go func() { // starts the server to listen for requests
		s.server.ListenAndServe()
	}()

	go func() { // wait for cancel signal and shutdown the server
		<-s.ctx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		s.server.Shutdown(ctx)
	}()
}
