package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/builder_site/internal/domain"
	"github.com/mishasvintus/builder_site/internal/render"
)

// PageHandler renders CMS pages for arbitrary paths.
type PageHandler struct {
	contentService ContentServiceInterface
	renderer       PageRenderer
}

// NewPageHandler creates a new page handler.
func NewPageHandler(contentService ContentServiceInterface, renderer PageRenderer) *PageHandler {
	return &PageHandler{contentService: contentService, renderer: renderer}
}

// Page handles GET /* for every path without a dedicated route.
//
// Metadata is resolved best-effort; a failure to load the page body fails
// the request.
func (h *PageHandler) Page(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		NotFound(c)
		return
	}

	if !h.contentService.Configured() {
		writeView(c, h.renderer.MissingKey())
		return
	}

	ctx := c.Request.Context()
	segments := pathSegments(c.Request.URL.Path)

	meta := h.contentService.ResolveMetadata(ctx, segments)

	content, err := h.contentService.ResolveContent(ctx, segments)
	if err != nil {
		Fail(c, err)
		return
	}

	writeView(c, h.renderer.Page(content, domain.PageModel, meta))
}

func writeView(c *gin.Context, v render.View) {
	c.HTML(v.Status, v.Template, v.Data)
}
