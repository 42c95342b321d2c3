package handler

import (
	"github.com/gin-gonic/gin"

	"supercut/internal/dto"
	"supercut/internal/response"
	"supercut/pkg/errors"
)

// CreateSubClip extracts a frame-precise clip synchronously. Sub-clip cuts
// are short enough that callers wait for the result.
func (h *Handler) CreateSubClip(c *gin.Context) {
	var req dto.SubClipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, errors.Wrap(errors.CodeInvalidParams, "Invalid parameters", err))
		return
	}

	res, err := h.Service.ExtractSubClip(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, err)
		return
	}
	response.Success(c, res)
}
