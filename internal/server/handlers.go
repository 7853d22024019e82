// internal/server/handlers.go
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lenamwu/bite-search-api/internal/common/config"
	svcerrors "github.com/lenamwu/bite-search-api/internal/common/errors"
	"github.com/lenamwu/bite-search-api/internal/search"
)

// SearchService is the search pipeline behind GET /search.
type SearchService interface {
	Execute(ctx context.Context, in *search.Input) (*search.Response, error)
}

type handlers struct {
	config *config.Config
	search SearchService
	errors *svcerrors.ErrorHandler
}

func (h *handlers) handleSearch(c *gin.Context) {
	var in search.Input
	if err := c.ShouldBindQuery(&in); err != nil {
		h.errors.Respond(c, svcerrors.NewInvalidRequestError(err.Error()))
		return
	}

	resp, err := h.search.Execute(c.Request.Context(), &in)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handlers) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.config.App.Name,
	})
}

func (h *handlers) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     h.config.App.Name,
		"description": "Google Custom Search API for recipes with image validation",
		"endpoints": gin.H{
			"search":  "/search?q={query}&key={api_key}&cx={search_engine_id}&num={results}",
			"health":  "/health",
			"metrics": "/metrics",
		},
		"example": "/search?q=chocolate%20chip%20cookies&key=YOUR_API_KEY&cx=YOUR_CX&num=10",
	})
}
