package recipe

type CreateRecipeRequest struct {
	Title      string `json:"title" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
	PrepTime   int    `json:"prep_time" binding:"required,gt=0"`
	State      string `json:"state,omitempty"`
}

type UpdateRecipeRequest struct {
	Title      *string `json:"title,omitempty"`
	Difficulty *string `json:"difficulty,omitempty"`
	PrepTime   *int    `json:"prep_time,omitempty"`
	State      *string `json:"state,omitempty"`
}

// SearchQuery mirrors the query-string filters of GET /recipes/.
type SearchQuery struct {
	Title      string `form:"title"`
	Difficulty string `form:"difficulty"`
	PrepTime   int    `form:"prep_time"`
	State      string `form:"state"`
}
