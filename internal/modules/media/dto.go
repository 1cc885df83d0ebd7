package media

type CreateMediaRequest struct {
	URL  string `json:"url" binding:"required,url"`
	Type string `json:"type" binding:"required"`
}
