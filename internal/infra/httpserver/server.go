package httpserver

import (
	"context"
	"errors"
	"net/http"

	"birthday_notifier/internal/app"
	"birthday_notifier/internal/domain/event"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Server exposes the manual HTTP triggers for ad hoc testing of the two
// notification runs. Failures surface as a 500 response carrying the
// system_event_id so the caller can correlate with the audit table.
type Server struct {
	runner app.Runner
	logger *logrus.Logger
	http   *http.Server
}

func NewServer(addr string, runner app.Runner, logger *logrus.Logger, environment string) *Server {
	if environment == "production" || environment == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{runner: runner, logger: logger}

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/test-monthly-summary", s.handleMonthlySummary)
	router.POST("/test-monthly-summary", s.handleMonthlySummary)
	router.GET("/test-daily-summary", s.handleDailySummary)
	router.POST("/test-daily-summary", s.handleDailySummary)

	s.http = &http.Server{Addr: addr, Handler: router}
	return s
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Infof("HTTP server listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleMonthlySummary(c *gin.Context) {
	eventID, err := s.runner.RunMonthly(c.Request.Context(), event.TriggerHTTP)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":          "error",
			"message":         app.FunctionMonthlySummary + " failed",
			"system_event_id": eventID.String(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"message":         app.FunctionMonthlySummary + " completed",
		"system_event_id": eventID.String(),
	})
}

func (s *Server) handleDailySummary(c *gin.Context) {
	eventID, err := s.runner.RunDaily(c.Request.Context(), event.TriggerHTTP)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":          "error",
			"message":         app.FunctionDailySummary + " failed",
			"system_event_id": eventID.String(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"message":         app.FunctionDailySummary + " completed",
		"system_event_id": eventID.String(),
	})
}
