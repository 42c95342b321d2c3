package dto

// SubClipReq asks for an interactive frame-precise extraction around a single
// screenshot. StartFrame and EndFrame are 30fps sub-frame indices within the
// source video, a numbering space separate from capture frame indices.
type SubClipReq struct {
	Screenshot string `json:"screenshot" binding:"required"`
	StartFrame int    `json:"start_frame"`
	EndFrame   int    `json:"end_frame" binding:"required"`
}

type SubClipResData struct {
	SourceVideoId string  `json:"source_video_id"`
	StartSeconds  float64 `json:"start_seconds"`
	EndSeconds    float64 `json:"end_seconds"`
	OutputPath    string  `json:"output_path"`
}
