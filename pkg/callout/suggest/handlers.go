package suggest

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles copy-suggestion requests
type Handler struct {
	suggester Suggester
}

// NewHandler creates a new suggestions handler
func NewHandler(suggester Suggester) *Handler {
	return &Handler{suggester: suggester}
}

// SuggestionsRequest represents a request for copy suggestions
type SuggestionsRequest struct {
	TargetURL string `json:"targetUrl" binding:"required"`
	ButtonURL string `json:"buttonUrl"`
}

// SuggestionsResponse carries zero or more suggestions. An empty list
// means none are available right now; it is not an error.
type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// Suggestions returns copy suggestions for the editor
// @Summary Suggest CTA copy
// @Description Ask the suggestion collaborator for message/button-text ideas. Failures yield an empty list, never an error.
// @Tags suggestions
// @Accept json
// @Produce json
// @Param request body SuggestionsRequest true "Page being promoted"
// @Success 200 {object} SuggestionsResponse
// @Router /suggestions [post]
func (h *Handler) Suggestions(c *gin.Context) {
	var req SuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.suggester.Suggest(c.Request.Context(), req.TargetURL, req.ButtonURL)
	if err != nil {
		// Recoverable: editing continues, the UI shows "none available"
		log.Printf("suggestions unavailable: %v", err)
		items = nil
	}
	if items == nil {
		items = []Suggestion{}
	}

	c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: items})
}

// RegisterRoutes registers suggestion routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/suggestions", h.Suggestions)
}
