package handler

import (
	"github.com/gin-gonic/gin"

	"supercut/internal/dto"
	"supercut/internal/response"
	"supercut/pkg/errors"
)

func (h *Handler) GetMovies(c *gin.Context) {
	response.Success(c, h.Catalog.Movies())
}

// ReplaceMovieTags replaces the full tag set of one movie. Tags are trimmed,
// deduplicated and sorted before persisting.
func (h *Handler) ReplaceMovieTags(c *gin.Context) {
	videoID := c.Param("videoId")
	if videoID == "" {
		response.ErrorResponse(c, errors.New(errors.CodeInvalidParams, "videoId is required"))
		return
	}

	var req dto.ReplaceTagsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, errors.Wrap(errors.CodeInvalidParams, "Invalid parameters", err))
		return
	}

	if err := h.Catalog.ReplaceTags(videoID, req.Tags); err != nil {
		response.ErrorResponse(c, errors.Wrap(errors.CodeCatalogError, "failed to persist tags", err))
		return
	}

	tags, _ := h.Catalog.Tags(videoID)
	response.Success(c, dto.MovieEntry{VideoId: videoID, Tags: tags})
}
