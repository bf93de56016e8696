package ui

import (
	"net/http"
	"strconv"

	"effectsize/app"
	"effectsize/domain/core"
	"effectsize/domain/effect"
	"effectsize/domain/report"
	"effectsize/internal/config"
	"effectsize/ports"

	"github.com/gin-gonic/gin"
)

// Server exposes the analysis service over HTTP
type Server struct {
	router   *gin.Engine
	service  *app.AnalysisService
	reports  ports.ReportRepository // nil disables the fetch endpoints
	defaults config.AnalysisConfig
}

// NewServer creates the HTTP server and registers its routes
func NewServer(service *app.AnalysisService, reports ports.ReportRepository, defaults config.AnalysisConfig) *Server {
	s := &Server{
		router:   gin.Default(),
		service:  service,
		reports:  reports,
		defaults: defaults,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")
	api.POST("/analyses", s.handleCreateAnalysis)
	api.GET("/analyses", s.handleListAnalyses)
	api.GET("/analyses/:id", s.handleGetAnalysis)

	s.router.GET("/analyses/:id/report", s.handleRenderReport)
}

// Run starts the server on the given address
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// analysisRequest is the JSON body for POST /api/analyses
type analysisRequest struct {
	XS        []float64 `json:"xs" binding:"required"`
	YS        []float64 `json:"ys" binding:"required"`
	Source    string    `json:"source"`
	Measures  []string  `json:"measures"`
	Method    string    `json:"method"`
	Coverage  *float64  `json:"coverage"`
	Resamples int       `json:"resamples"`
	Seed      *int64    `json:"seed"`
}

func (s *Server) handleCreateAnalysis(c *gin.Context) {
	var body analysisRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := app.AnalysisRequest{
		XS:        body.XS,
		YS:        body.YS,
		Source:    body.Source,
		Method:    report.MethodBootstrap,
		Coverage:  s.defaults.Coverage,
		Resamples: s.defaults.Resamples,
		Seed:      s.defaults.Seed,
	}
	if body.Method != "" {
		method, ok := report.ParseMethod(body.Method)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "method must be \"normal\" or \"bootstrap\""})
			return
		}
		req.Method = method
	}
	if body.Coverage != nil {
		req.Coverage = *body.Coverage
	}
	if body.Resamples != 0 {
		req.Resamples = body.Resamples
	}
	if body.Seed != nil {
		req.Seed = *body.Seed
	}
	for _, m := range body.Measures {
		measure, err := effect.ParseMeasure(m)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.Measures = append(req.Measures, measure)
	}

	rep, err := s.service.Run(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsValidationError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rep.ToPayload())
}

func (s *Server) handleGetAnalysis(c *gin.Context) {
	rep, ok := s.fetchReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rep.ToPayload())
}

func (s *Server) handleListAnalyses(c *gin.Context) {
	if s.reports == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "persistence is not configured"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	reports, err := s.reports.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	payloads := make([]report.Payload, 0, len(reports))
	for _, rep := range reports {
		payloads = append(payloads, rep.ToPayload())
	}
	c.JSON(http.StatusOK, gin.H{"reports": payloads})
}

func (s *Server) handleRenderReport(c *gin.Context) {
	rep, ok := s.fetchReport(c)
	if !ok {
		return
	}

	precision, err := strconv.Atoi(c.DefaultQuery("precision", "4"))
	if err != nil || precision < 0 || precision > 17 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "precision must be an integer in [0, 17]"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", RenderHTML(rep, precision))
}

func (s *Server) fetchReport(c *gin.Context) (*report.Report, bool) {
	if s.reports == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "persistence is not configured"})
		return nil, false
	}

	id, err := core.ParseReportID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	rep, err := s.reports.GetByID(c.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsNotFoundError(err) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return nil, false
	}
	return rep, true
}
