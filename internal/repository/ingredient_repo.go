package repository

import (
	"context"

	"sabor/internal/domain"

	"gorm.io/gorm"
)

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) Create(ctx context.Context, ing *domain.Ingredient) error {
	return r.db.WithContext(ctx).Create(ing).Error
}

func (r *IngredientRepository) GetByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	tx := r.db.WithContext(ctx).First(&ing, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &ing, nil
}

func (r *IngredientRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Ingredient, error) {
	var items []domain.Ingredient
	err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *IngredientRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Ingredient{}, id).Error
}
