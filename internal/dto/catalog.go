package dto

// MovieEntry is one movie in the catalog with its tags.
type MovieEntry struct {
	VideoId string   `json:"video_id"`
	Tags    []string `json:"tags"`
}

// ReplaceTagsReq replaces the full tag set of one movie.
type ReplaceTagsReq struct {
	Tags []string `json:"tags" binding:"required"`
}

// NeighborsReq looks up the precomputed nearest neighbors of a screenshot.
type NeighborsReq struct {
	Screenshot string `form:"screenshot" binding:"required"`
}
