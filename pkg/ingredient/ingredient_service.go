package ingredient

import (
	"context"
)

type (
	IngredientReferenceService interface {
		GetAllIngredientNames(ctx context.Context) ([]string, error)
	}

	ingredientReferenceService struct {
		referenceRepository IngredientReferenceRepository
	}
)

func NewIngredientReferenceService(referenceRepository IngredientReferenceRepository) IngredientReferenceService {
	return &ingredientReferenceService{referenceRepository: referenceRepository}
}

// GetAllIngredientNames lists every known ingredient name in catalog order,
// for showing in search options.
func (s *ingredientReferenceService) GetAllIngredientNames(ctx context.Context) ([]string, error) {
	references, err := s.referenceRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(references))
	for _, reference := range references {
		names = append(names, reference.Name)
	}
	return names, nil
}
