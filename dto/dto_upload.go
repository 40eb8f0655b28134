package dto

// UploadData is the relay's response to the admin dashboard: hosted
// URLs plus host metadata.
type UploadData struct {
	URL        string `json:"url"`
	DisplayURL string `json:"displayUrl"`
	ThumbURL   string `json:"thumbUrl,omitempty"`
	MediumURL  string `json:"mediumUrl,omitempty"`
	DeleteURL  string `json:"deleteUrl,omitempty"`
	Title      string `json:"title,omitempty"`
	Size       int64  `json:"size,omitempty"`
	Time       int64  `json:"time,omitempty"`
}

type UploadResponse struct {
	Success bool        `json:"success"`
	Data    *UploadData `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// DeleteImageRequest asks the relay to remove a hosted image and blank
// the imageUrl field on the referencing document. TeamID is the entity
// identifier for either collection, the name is historical.
type DeleteImageRequest struct {
	ImageURL string `json:"imageUrl"`
	TeamID   string `json:"teamId"`
	Type     string `json:"type,omitempty"` // "team" (default) or "research"
}

type DeleteImageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
