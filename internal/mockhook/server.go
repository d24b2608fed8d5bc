// Package mockhook serves a stand-in for the contract analysis webhook so the
// analyzer can be exercised without a deployed workflow.
package mockhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Veraticus/the-fine-print/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DefaultPath is the route the stub answers on, matching the workflow's
// sample URL.
const DefaultPath = "/webhook/analyze-contract"

// Config controls the stub server.
type Config struct {
	Path  string
	Rules []Rule
	Delay time.Duration
}

// NewRouter builds the gin engine serving the stub webhook.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}
	if cfg.Rules == nil {
		cfg.Rules = DefaultRules()
	}

	router := gin.New()
	router.Use(requestID(), requestLogger(), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST(cfg.Path, analyzeHandler(cfg))

	return router
}

func analyzeHandler(cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.AnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if strings.TrimSpace(req.ContractText) == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "contractText is required"})
			return
		}

		if cfg.Delay > 0 {
			select {
			case <-time.After(cfg.Delay):
			case <-c.Request.Context().Done():
				c.AbortWithStatus(http.StatusServiceUnavailable)
				return
			}
		}

		resp := Assess(req.ContractText, cfg.Rules)
		slog.Info("Mock analysis complete",
			"user_id", req.UserID,
			"analysis_type", req.AnalysisType,
			"risks", len(*resp.DetectedRisks),
			"overall", resp.OverallRisk,
		)

		c.JSON(http.StatusOK, resp)
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Header("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Debug("Mock webhook request",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// Start serves the stub on addr and returns a shutdown function and the full
// webhook URL.
func Start(addr string, cfg Config) (func(context.Context) error, string, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, "", fmt.Errorf("listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Mock webhook server stopped", "error", err)
		}
	}()

	return srv.Shutdown, "http://" + ln.Addr().String() + cfg.Path, nil
}
