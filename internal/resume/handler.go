package resume

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/resume")
	g.POST("/generate", h.generate)
	g.GET("/health", h.health)
	g.GET("/history", h.history)
}

func (h *Handler) generate(c *gin.Context) {
	var req Resume
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "Resume data is required", nil)
		return
	}

	res, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrEmailRequired):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeGeneration, "Error generating resume: "+causeMessage(err), nil)
		}
		return
	}

	c.Set(middleware.GeneratorKey, res.Generator)
	c.Header("X-Generation-Id", res.ID)
	respond.Text(c, http.StatusOK, res.Content)
}

func (h *Handler) health(c *gin.Context) {
	respond.Text(c, http.StatusOK, HealthMessage)
}

func (h *Handler) history(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	items, err := h.Svc.HistoryPage(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to list generations", nil)
		return
	}

	resp := make([]gin.H, 0, len(items))
	for _, g := range items {
		resp = append(resp, gin.H{
			"generationId": g.ID,
			"fullName":     g.FullName,
			"generator":    g.Generator,
			"summary":      g.Summary,
			"createdAt":    g.CreatedAt,
		})
	}
	respond.OK(c, resp)
}

func causeMessage(err error) string {
	if cause := errors.Unwrap(err); cause != nil {
		return cause.Error()
	}
	return err.Error()
}
