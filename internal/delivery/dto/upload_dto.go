package dto

type UploadResponse struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}
