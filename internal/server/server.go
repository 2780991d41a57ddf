package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/agenthands/shortlist/internal/config"
	"github.com/agenthands/shortlist/internal/core"
	"github.com/agenthands/shortlist/internal/core/model"
	"github.com/agenthands/shortlist/internal/core/recommend"
	"github.com/agenthands/shortlist/internal/logging"
)

type Server struct {
	Advisor *core.Advisor
	Config  config.ServerConfig
	Logger  *log.Logger
}

func NewServer(advisor *core.Advisor, cfg config.ServerConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{Advisor: advisor, Config: cfg, Logger: logger}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(s.Logger), Recovery(s.Logger))

	r.GET("/healthz", s.Health)

	api := r.Group("/api")
	api.POST("/validate", s.Validate)
	api.POST("/agent1", s.Recommend)
	api.POST("/revisit", s.Revisit)
	api.POST("/flow", s.Flow)
	api.POST("/extract", s.Extract)
	api.POST("/delta", s.Delta)
	api.GET("/customers", s.Customers)
	api.GET("/history", s.History)

	if s.Config.StaticDir != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(s.Config.StaticDir))))
	}

	return r
}

type QuestionRequest struct {
	Question string `json:"question"`
}

type RevisitRequest struct {
	Question string   `json:"question"`
	Summary  string   `json:"summary"`
	Bullets  []string `json:"bullets"`
}

type ExtractRequest struct {
	Passage string   `json:"passage"`
	Names   []string `json:"names"`
}

type DeltaRequest struct {
	Initial string   `json:"initial"`
	Revised string   `json:"revised"`
	Names   []string `json:"names"`
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) Validate(c *gin.Context) {
	var req QuestionRequest
	if !s.bind(c, &req) {
		return
	}

	verdict, err := s.Advisor.Validate(c.Request.Context(), req.Question)
	if err != nil {
		s.fail(c, err, "Failed to validate question.")
		return
	}
	c.JSON(http.StatusOK, verdict)
}

func (s *Server) Recommend(c *gin.Context) {
	var req QuestionRequest
	if !s.bind(c, &req) {
		return
	}

	rec, err := s.Advisor.Recommend(c.Request.Context(), req.Question)
	if err != nil {
		s.fail(c, err, "Failed to generate recommendation.")
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) Revisit(c *gin.Context) {
	var req RevisitRequest
	if !s.bind(c, &req) {
		return
	}

	initial := model.Recommendation{Summary: req.Summary, Bullets: req.Bullets}
	rec, err := s.Advisor.Revisit(c.Request.Context(), req.Question, initial)
	if err != nil {
		s.fail(c, err, "Failed to revisit recommendation.")
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) Flow(c *gin.Context) {
	var req QuestionRequest
	if !s.bind(c, &req) {
		return
	}

	run, err := s.Advisor.Run(c.Request.Context(), req.Question)
	if err != nil {
		var rejected *model.RejectedError
		if errors.As(err, &rejected) {
			c.JSON(http.StatusUnprocessableEntity, model.Verdict{Message: rejected.Message})
			return
		}
		s.fail(c, err, "An error occurred while running the flow.")
		return
	}
	c.JSON(http.StatusOK, run)
}

func (s *Server) Extract(c *gin.Context) {
	var req ExtractRequest
	if !s.bind(c, &req) {
		return
	}

	customers, err := s.Advisor.Extract(req.Passage, req.Names)
	if err != nil {
		s.fail(c, err, "Failed to load customer names.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (s *Server) Delta(c *gin.Context) {
	var req DeltaRequest
	if !s.bind(c, &req) {
		return
	}

	cmp, err := s.Advisor.Compare(req.Initial, req.Revised, req.Names)
	if err != nil {
		s.fail(c, err, "Failed to load customer names.")
		return
	}
	c.JSON(http.StatusOK, cmp)
}

func (s *Server) Customers(c *gin.Context) {
	names, err := s.Advisor.CustomerNames()
	if err != nil {
		s.fail(c, err, "Failed to load customer names.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": names})
}

func (s *Server) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "limit must be a non-negative integer."})
			return
		}
		limit = n
	}

	runs, err := s.Advisor.RecentRuns(c.Request.Context(), limit)
	if err != nil {
		s.fail(c, err, "Failed to load history.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (s *Server) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request."})
		return false
	}
	return true
}

// fail maps known errors to a status and message; anything else is logged
// and reported with fallback.
func (s *Server) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, model.ErrEmptyQuestion):
		c.JSON(http.StatusBadRequest, gin.H{"message": recommend.EmptyQuestionMessage})
	case errors.Is(err, model.ErrHistoryDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Run history is not configured."})
	case errors.Is(err, model.ErrNoCandidates):
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "No customer names are available."})
	case errors.Is(err, model.ErrNoRecommendation):
		c.JSON(http.StatusBadGateway, gin.H{"message": "The recommender returned no content."})
	default:
		requestID, _ := c.Get("request_id")
		s.Logger.Error(fallback, "err", err, "path", c.Request.URL.Path, "request_id", requestID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}
