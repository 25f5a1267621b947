package report

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/workseed/workseed/pkg/config"
	"github.com/workseed/workseed/pkg/store"
	"github.com/workseed/workseed/pkg/validate"
)

// Server serves read-only reporting endpoints over a generated dataset.
type Server struct {
	router *gin.Engine
	reader store.Reader
	cfg    *config.Config
	logger *zap.Logger
}

func NewServer(reader store.Reader, cfg *config.Config, logger *zap.Logger) *Server {
	s := &Server{
		reader: reader,
		cfg:    cfg,
		logger: logger,
	}
	s.setupRouter()
	return s
}

func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(Logger(s.logger))
	r.Use(RequestID())
	r.Use(CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.GET("/summary", s.getSummary)
		api.GET("/tasks/stats", s.getTaskStats)
		api.GET("/validation", s.getValidation)
	}

	s.router = r
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) getSummary(c *gin.Context) {
	counts, err := s.reader.Counts(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to count records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read dataset"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}

func (s *Server) getTaskStats(c *gin.Context) {
	snap, err := s.reader.Snapshot(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to load snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read dataset"})
		return
	}
	c.JSON(http.StatusOK, validate.ComputeStats(snap))
}

func (s *Server) getValidation(c *gin.Context) {
	snap, err := s.reader.Snapshot(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to load snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read dataset"})
		return
	}
	report := validate.Run(snap)
	status := http.StatusOK
	if !report.OK() {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, report)
}
