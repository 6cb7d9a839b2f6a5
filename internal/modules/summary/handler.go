package summary

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Rohit273848/travel-notes-app/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/notes/ai-summary", h.summarize)
}

type summaryRequest struct {
	Place string `json:"place"`
}

func (h *Handler) summarize(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Place == "" {
		response.BadRequest(c, "place name required")
		return
	}

	out, err := h.svc.Summarize(c.Request.Context(), req.Place)
	if err != nil {
		if errors.Is(err, ErrSummaryUnavailable) {
			response.BadGateway(c, response.KindSummaryUnavailable, "summary is unavailable right now")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"summary": out})
}
