package step

type StepInput struct {
	Order       int    `json:"order" binding:"required,gt=0"`
	Description string `json:"description" binding:"required"`
}

// CreateStepsRequest carries every step of a recipe in one request so
// they are persisted atomically.
type CreateStepsRequest struct {
	Steps []StepInput `json:"steps" binding:"required,min=1,dive"`
}
