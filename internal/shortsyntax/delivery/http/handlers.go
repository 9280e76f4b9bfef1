package http

import (
	"github.com/gin-gonic/gin"

	"task-short-syntax/pkg/response"
)

// Parse godoc
// @Summary     Parse short syntax
// @Description Extracts +project, #tag, @date and trailing time annotations from a task title and returns the field changes to apply. Tags and projects left out of the body are taken from the catalog.
// @Tags        ShortSyntax
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Task and reference data"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     503  {object} response.Resp "Catalog unavailable"
// @Router      /api/v1/short-syntax/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParseWithCatalog(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseWithCatalog: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Patterns godoc
// @Summary     Directive patterns
// @Description Returns the regular expressions that match each directive, for title highlighting.
// @Tags        ShortSyntax
// @Produce     json
// @Success     200 {object} patternsResp
// @Router      /api/v1/short-syntax/patterns [GET]
func (h *handler) Patterns(c *gin.Context) {
	response.OK(c, h.newPatternsResp(h.uc.Patterns()))
}
