package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agrisight-backend/internal/shared/metrics"
	"agrisight-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the assistant.
type Handler struct {
	Assistant *Assistant
}

// NewHandler constructs a Handler.
func NewHandler(assistant *Assistant) *Handler {
	return &Handler{Assistant: assistant}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat)
}

type chatRequest struct {
	Message         string `json:"message"`
	AnalysisContext string `json:"analysisContext"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid chat request body", nil)
		return
	}

	metrics.IncChatQuery()
	reply := h.Assistant.Answer(req.Message, req.AnalysisContext)

	respond.OK(c, gin.H{"reply": reply})
}
