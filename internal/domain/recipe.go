package domain

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "FACIL"
	DifficultyMedium Difficulty = "MEDIO"
	DifficultyHard   Difficulty = "DIFICIL"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Recipe struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	AuthorID   int64      `json:"author_id" gorm:"not null;index"`
	Title      string     `json:"title" gorm:"not null"`
	Difficulty Difficulty `json:"difficulty" gorm:"size:7;not null"`
	PrepTime   int        `json:"prep_time" gorm:"not null"` // minutes
	State      string     `json:"state,omitempty" gorm:"size:2"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Author      *User             `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Ingredients []Ingredient      `json:"ingredients,omitempty" gorm:"foreignKey:RecipeID"`
	Steps       []PreparationStep `json:"steps,omitempty" gorm:"foreignKey:RecipeID"`
	Media       []Media           `json:"media,omitempty" gorm:"foreignKey:RecipeID"`
}

func (Recipe) TableName() string { return "recipes" }

type Ingredient struct {
	ID          int64   `json:"id" gorm:"primaryKey"`
	RecipeID    int64   `json:"recipe_id" gorm:"not null;index"`
	Name        string  `json:"name" gorm:"not null"`
	Quantity    float64 `json:"quantity" gorm:"type:decimal(6,2)"`
	MeasureUnit string  `json:"measure_unit,omitempty"`
}

func (Ingredient) TableName() string { return "ingredients" }

type PreparationStep struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	RecipeID    int64  `json:"recipe_id" gorm:"not null;index"`
	Order       int    `json:"order" gorm:"column:step_order;not null"`
	Description string `json:"description" gorm:"not null"`
}

func (PreparationStep) TableName() string { return "preparation_steps" }

type MediaType string

const (
	MediaImage MediaType = "IMAGEM"
	MediaVideo MediaType = "VIDEO"
)

func (t MediaType) Valid() bool {
	return t == MediaImage || t == MediaVideo
}

type Media struct {
	ID       int64     `json:"id" gorm:"primaryKey"`
	RecipeID int64     `json:"recipe_id" gorm:"not null;index"`
	URL      string    `json:"url" gorm:"not null"`
	Type     MediaType `json:"type" gorm:"size:6;not null"`
}

func (Media) TableName() string { return "media" }
