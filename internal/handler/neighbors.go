package handler

import (
	"github.com/gin-gonic/gin"

	"supercut/internal/dto"
	"supercut/internal/response"
	"supercut/pkg/errors"
)

// GetNeighbors returns precomputed visually-similar screenshots for one
// screenshot, nearest first.
func (h *Handler) GetNeighbors(c *gin.Context) {
	var req dto.NeighborsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorResponse(c, errors.Wrap(errors.CodeInvalidParams, "Invalid parameters", err))
		return
	}

	neighbors, err := h.Neighbors.Lookup(req.Screenshot)
	if err != nil {
		response.ErrorResponse(c, errors.Wrap(errors.CodeNeighborsError, "neighbor lookup failed", err))
		return
	}
	response.Success(c, neighbors)
}
