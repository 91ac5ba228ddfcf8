package links

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/callouthq/callout/pkg/callout/models"
	"github.com/callouthq/callout/pkg/callout/payload"
	"github.com/callouthq/callout/pkg/callout/render"
	"github.com/callouthq/callout/pkg/callout/sessions"
	"github.com/callouthq/callout/pkg/callout/variant"
)

// Handler handles link generation and viewer-side decoding
type Handler struct {
	baseURL  string
	selector *variant.Selector
}

// NewHandler creates a new links handler
func NewHandler(baseURL string, selector *variant.Selector) *Handler {
	return &Handler{baseURL: baseURL, selector: selector}
}

// GenerateLinkRequest represents the request to generate a share link.
// Exactly one of Data (single CTA) or Variants (A/B pair) must be set.
type GenerateLinkRequest struct {
	TargetURL string           `json:"targetUrl"`
	Data      *models.CtaData  `json:"data,omitempty"`
	Variants  []models.CtaData `json:"variants,omitempty"`
}

// GenerateLinkResponse carries the encoded fragment and full share URL
type GenerateLinkResponse struct {
	Fragment string `json:"fragment"`
	URL      string `json:"url"`
}

// DecodeLinkRequest represents the viewer's decode request
type DecodeLinkRequest struct {
	Fragment string `json:"fragment" binding:"required"`
}

// DecodeLinkResponse is the viewer's fully resolved view: one concrete
// CTA (the A/B pick already made, stable for this session) plus its
// visual attributes and the frame sandbox to apply.
type DecodeLinkResponse struct {
	Type         payload.Kind   `json:"type"`
	TargetURL    string         `json:"targetUrl"`
	Cta          models.CtaData `json:"cta"`
	Visual       render.Visual  `json:"visual"`
	FrameSandbox string         `json:"frameSandbox"`
}

// Generate validates a configuration and freezes it into a share link
// @Summary Generate a share link
// @Description Encode a CTA configuration (or A/B pair) into a self-contained share link
// @Tags links
// @Accept json
// @Produce json
// @Param request body GenerateLinkRequest true "Configuration to encode"
// @Success 201 {object} GenerateLinkResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /links [post]
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var p payload.LinkPayload
	switch {
	case req.Data != nil && req.Variants == nil:
		if err := models.ValidateForGenerate(req.TargetURL, *req.Data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p = payload.NewSingle(req.TargetURL, *req.Data)
	case req.Data == nil && len(req.Variants) == 2:
		if err := models.ValidateForGenerate(req.TargetURL, req.Variants...); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p = payload.NewAB(req.TargetURL, req.Variants[0], req.Variants[1])
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide either data or exactly two variants"})
		return
	}

	fragment, err := payload.Encode(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode link"})
		return
	}

	c.JSON(http.StatusCreated, GenerateLinkResponse{
		Fragment: fragment,
		URL:      payload.BuildLink(h.baseURL, fragment),
	})
}

// Decode resolves a link fragment for the viewer
// @Summary Decode a share link
// @Description Decode a link fragment and resolve it to one concrete CTA for this viewer session
// @Tags links
// @Accept json
// @Produce json
// @Param request body DecodeLinkRequest true "Fragment to decode"
// @Success 200 {object} DecodeLinkResponse
// @Failure 422 {object} map[string]string "Corrupt link"
// @Router /links/decode [post]
func (h *Handler) Decode(c *gin.Context) {
	var req DecodeLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := payload.Decode(req.Fragment)
	if err != nil {
		var corrupt *payload.CorruptLinkError
		if errors.As(err, &corrupt) {
			// Terminal for the viewer: no partial or best-effort render
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "corrupt link"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode link"})
		return
	}

	var cta models.CtaData
	switch p.Kind {
	case payload.KindSingle:
		cta = *p.Data
	case payload.KindAB:
		cta = h.selector.Choose(sessions.ID(c), [2]models.CtaData{p.Variants[0], p.Variants[1]})
	}

	c.JSON(http.StatusOK, DecodeLinkResponse{
		Type:         p.Kind,
		TargetURL:    p.TargetURL,
		Cta:          cta,
		Visual:       render.Render(cta, false),
		FrameSandbox: render.ViewerSandbox,
	})
}

// RegisterRoutes registers link routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/links", h.Generate)
	rg.POST("/links/decode", h.Decode)
}
