package dto

type GenerateVideoRequest struct {
	Theme string `json:"theme" binding:"required"`
	Voice string `json:"voice" binding:"required"`
	Font  string `json:"font" binding:"required"`
}

type GenerateVideoResponse struct {
	RunID     string `json:"run_id"`
	VideoPath string `json:"video_path"`
	RemoteURL string `json:"remote_url,omitempty"`
}
