package ingredient

type CreateIngredientRequest struct {
	Name        string  `json:"name" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	MeasureUnit string  `json:"measure_unit" binding:"required"`
}
