package repository

import (
	"context"
	"strings"

	"sabor/internal/domain"

	"gorm.io/gorm"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// RecipeFilter carries the optional search predicates; zero values mean
// "not filtered".
type RecipeFilter struct {
	Title       string
	Difficulty  domain.Difficulty
	MaxPrepTime int
	State       string
}

func (r *RecipeRepository) Create(ctx context.Context, rec *domain.Recipe) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *RecipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	var rec domain.Recipe
	tx := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order ASC")
		}).
		Preload("Media").
		First(&rec, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &rec, nil
}

func (r *RecipeRepository) Search(ctx context.Context, f RecipeFilter) ([]domain.Recipe, error) {
	q := r.db.WithContext(ctx).Model(&domain.Recipe{})

	if f.Title != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Title)+"%")
	}
	if f.Difficulty != "" {
		q = q.Where("difficulty = ?", f.Difficulty)
	}
	if f.MaxPrepTime > 0 {
		q = q.Where("prep_time <= ?", f.MaxPrepTime)
	}
	if f.State != "" {
		q = q.Where("UPPER(state) = ?", strings.ToUpper(f.State))
	}

	var recipes []domain.Recipe
	err := q.Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}

// Random picks one recipe uniformly. RANDOM() is understood by both
// postgres and sqlite.
func (r *RecipeRepository) Random(ctx context.Context) (*domain.Recipe, error) {
	var rec domain.Recipe
	tx := r.db.WithContext(ctx).Order("RANDOM()").First(&rec)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &rec, nil
}

func (r *RecipeRepository) Update(ctx context.Context, rec *domain.Recipe) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// Delete removes the recipe and everything hanging off it in one
// transaction. Children first to keep foreign keys happy.
func (r *RecipeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		children := []any{
			&domain.Ingredient{},
			&domain.PreparationStep{},
			&domain.Comment{},
			&domain.Rating{},
			&domain.Favorite{},
			&domain.Media{},
		}
		for _, model := range children {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&domain.Recipe{}, id).Error
	})
}

func (r *RecipeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Recipe{}).Count(&count).Error
	return count, err
}
