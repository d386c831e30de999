package foodrecipe

import (
	"Food-Recipe-Service/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	FoodRecipeRepository interface {
		Save(ctx context.Context, recipe *entities.FoodRecipe) error
		Update(ctx context.Context, recipe *entities.FoodRecipe) error
		FindByID(ctx context.Context, id string) (*entities.FoodRecipe, error)
		FindAll(ctx context.Context) ([]*entities.FoodRecipe, error)
		DeleteByID(ctx context.Context, id string) error
	}

	foodRecipeRepository struct {
		db *gorm.DB
	}
)

func NewFoodRecipeRepository(db *gorm.DB) FoodRecipeRepository {
	return &foodRecipeRepository{db: db}
}

func (r *foodRecipeRepository) Save(ctx context.Context, recipe *entities.FoodRecipe) error {
	// Ingredient references are persisted by the mapper before the recipe
	// is saved, so only the recipe and its ingredient rows are created here.
	return r.db.WithContext(ctx).
		Omit("Ingredients.Reference").
		Create(recipe).Error
}

func (r *foodRecipeRepository) Update(ctx context.Context, recipe *entities.FoodRecipe) error {
	// The previous ingredient rows are discarded entirely, never patched.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_recipe_id = ?", recipe.ID).
			Delete(&entities.Ingredient{}).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(recipe).Error; err != nil {
			return err
		}
		if len(recipe.Ingredients) == 0 {
			return nil
		}
		return tx.Omit("Reference").Create(&recipe.Ingredients).Error
	})
}

func (r *foodRecipeRepository) FindByID(ctx context.Context, id string) (*entities.FoodRecipe, error) {
	var recipe entities.FoodRecipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredients.position asc")
		}).
		Preload("Ingredients.Reference").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *foodRecipeRepository) FindAll(ctx context.Context) ([]*entities.FoodRecipe, error) {
	var recipes []*entities.FoodRecipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredients.position asc")
		}).
		Preload("Ingredients.Reference").
		Order("created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *foodRecipeRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.FoodRecipe{}).Error
}
