package analysis

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agrisight-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the orchestration service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group. extra
// middleware (rate limiting) applies to the engine-spawning route only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, extra ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, extra...), h.runAnalysis)
	rg.POST("/analysis/run", handlers...)
}

func (h *Handler) runAnalysis(c *gin.Context) {
	result, err := h.Svc.Run(c.Request.Context())
	if err != nil {
		var engineErr *EngineError
		switch {
		case errors.As(err, &engineErr):
			respond.Error(c, http.StatusBadGateway, ErrorCodeEngineFailed, "analysis engine execution failed", engineErr.Details)
		case errors.Is(err, ErrEngineUnavailable):
			respond.Error(c, http.StatusBadGateway, ErrorCodeEngineFailed, "analysis engine unavailable", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeStorage, "failed to produce analysis results", nil)
		}
		return
	}

	c.Set("runId", result.RunID)
	c.Set("analysisMode", string(result.Mode))

	urls := make([]string, 0, len(result.ImageRefs))
	for _, name := range result.ImageRefs {
		urls = append(urls, "/results/"+name)
	}

	respond.OK(c, gin.H{
		"runId":      result.RunID,
		"reportText": result.ReportText,
		"images":     urls,
		"mode":       result.Mode,
	})
}
