package ingredient

import (
	"Food-Recipe-Service/entities"
	"context"

	"gorm.io/gorm"
)

type (
	IngredientReferenceRepository interface {
		FindByNameIgnoreCase(ctx context.Context, name string) (*entities.IngredientReference, error)
		Save(ctx context.Context, reference *entities.IngredientReference) error
		FindAll(ctx context.Context) ([]*entities.IngredientReference, error)
	}

	ingredientReferenceRepository struct {
		db *gorm.DB
	}
)

func NewIngredientReferenceRepository(db *gorm.DB) IngredientReferenceRepository {
	return &ingredientReferenceRepository{db: db}
}

func (r *ingredientReferenceRepository) FindByNameIgnoreCase(ctx context.Context, name string) (*entities.IngredientReference, error) {
	var reference entities.IngredientReference
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&reference).Error; err != nil {
		return nil, err
	}
	return &reference, nil
}

func (r *ingredientReferenceRepository) Save(ctx context.Context, reference *entities.IngredientReference) error {
	return r.db.WithContext(ctx).Create(reference).Error
}

func (r *ingredientReferenceRepository) FindAll(ctx context.Context) ([]*entities.IngredientReference, error) {
	var references []*entities.IngredientReference
	if err := r.db.WithContext(ctx).
		Order("created_at asc").
		Find(&references).Error; err != nil {
		return nil, err
	}
	return references, nil
}
