// Package server exposes the admin trigger surface: run a fetch now,
// inspect scheduler state, read recent fetch logs. The newsstand read API
// lives in a separate service.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pressekiosk/internal/domain"
	"pressekiosk/internal/scheduler"
)

// FetchLogLister reads recent fetch-log rows for the admin surface.
type FetchLogLister interface {
	ListRecent(ctx context.Context, limit int, status domain.FetchStatus) ([]domain.FetchLog, error)
}

type Server struct {
	scheduler *scheduler.Scheduler
	fetchLogs FetchLogLister
	logger    *slog.Logger
	engine    *gin.Engine
}

func New(sched *scheduler.Scheduler, fetchLogs FetchLogLister, logger *slog.Logger) *Server {
	s := &Server{
		scheduler: sched,
		fetchLogs: fetchLogs,
		logger:    logger.With("component", "server"),
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/health", s.handleHealth)
	admin := engine.Group("/admin")
	admin.POST("/fetch-now", s.handleFetchNow)
	admin.GET("/scheduler", s.handleSchedulerStatus)
	admin.GET("/fetch-logs", s.handleFetchLogs)

	s.engine = engine
	return s
}

func (s *Server) Run(addr string) error {
	s.logger.Info("admin server listening", "addr", addr)
	return s.engine.Run(addr)
}

// Handler exposes the routes for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleFetchNow starts a manual cycle. A cycle already in progress is a
// 409 so the operator sees it; an accepted cycle answers 202 while the
// fetch continues in the background.
func (s *Server) handleFetchNow(c *gin.Context) {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.scheduler.RunNow(context.Background())
	}()

	select {
	case err := <-errCh:
		switch {
		case errors.Is(err, scheduler.ErrFetchInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "fetch completed"})
		}
	case <-time.After(100 * time.Millisecond):
		go func() {
			if err := <-errCh; err != nil {
				s.logger.Error("manual fetch failed", "error", err)
			}
		}()
		c.JSON(http.StatusAccepted, gin.H{"message": "fetch started", "status": "processing"})
	}
}

func (s *Server) handleSchedulerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.scheduler.Status())
}

func (s *Server) handleFetchLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	status := domain.FetchStatus(c.Query("status"))

	logs, err := s.fetchLogs.ListRecent(c.Request.Context(), limit, status)
	if err != nil {
		s.logger.Error("list fetch logs failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list fetch logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": logs, "meta": gin.H{"total": len(logs)}})
}
