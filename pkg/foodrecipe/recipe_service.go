package foodrecipe

import (
	"Food-Recipe-Service/domain"
	"Food-Recipe-Service/entities"
	"Food-Recipe-Service/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodRecipeService interface {
		SaveFoodRecipe(ctx context.Context, req domain.SaveFoodRecipeRequest) (domain.FoodRecipeResponse, error)
		UpdateFoodRecipe(ctx context.Context, req domain.SaveFoodRecipeRequest, id string) (domain.FoodRecipeResponse, error)
		GetFoodRecipe(ctx context.Context, id string) (domain.FoodRecipeResponse, error)
		RemoveFoodRecipe(ctx context.Context, id string) error
		GetAllFoodRecipes(ctx context.Context, req domain.GetAllFoodRecipesRequest) ([]domain.FoodRecipeResponse, error)
		UploadRecipeImage(ctx context.Context, id string, image *multipart.FileHeader) (domain.FoodRecipeResponse, error)
	}

	foodRecipeService struct {
		recipeRepository FoodRecipeRepository
		mapper           *FoodRecipeMapper
		s3               storage.AwsS3
	}
)

func NewFoodRecipeService(recipeRepository FoodRecipeRepository, mapper *FoodRecipeMapper, s3 storage.AwsS3) FoodRecipeService {
	return &foodRecipeService{
		recipeRepository: recipeRepository,
		mapper:           mapper,
		s3:               s3,
	}
}

func (s *foodRecipeService) SaveFoodRecipe(ctx context.Context, req domain.SaveFoodRecipeRequest) (domain.FoodRecipeResponse, error) {
	entity := &entities.FoodRecipe{ID: uuid.New()}
	if err := s.mapper.FormRecipeEntity(ctx, req, entity); err != nil {
		return domain.FoodRecipeResponse{}, err
	}

	if err := s.recipeRepository.Save(ctx, entity); err != nil {
		return domain.FoodRecipeResponse{}, err
	}

	return s.mapper.FormRecipeModel(entity, true), nil
}

func (s *foodRecipeService) UpdateFoodRecipe(ctx context.Context, req domain.SaveFoodRecipeRequest, id string) (domain.FoodRecipeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.FoodRecipeResponse{}, domain.ErrParseUUID
	}

	entity, err := s.recipeRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodRecipeResponse{}, domain.IdNotFoundError{ID: id}
		}
		return domain.FoodRecipeResponse{}, err
	}

	if err := s.mapper.FormRecipeEntity(ctx, req, entity); err != nil {
		return domain.FoodRecipeResponse{}, err
	}

	if err := s.recipeRepository.Update(ctx, entity); err != nil {
		return domain.FoodRecipeResponse{}, err
	}

	return s.mapper.FormRecipeModel(entity, true), nil
}

func (s *foodRecipeService) GetFoodRecipe(ctx context.Context, id string) (domain.FoodRecipeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.FoodRecipeResponse{}, domain.ErrParseUUID
	}

	entity, err := s.recipeRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodRecipeResponse{}, domain.IdNotFoundError{ID: id}
		}
		return domain.FoodRecipeResponse{}, err
	}

	return s.mapper.FormRecipeModel(entity, true), nil
}

func (s *foodRecipeService) RemoveFoodRecipe(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}

	// Removal of a missing id stays a no-op. The lookup only serves the
	// image cleanup.
	entity, err := s.recipeRepository.FindByID(ctx, id)
	if err == nil && entity.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(entity.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.recipeRepository.DeleteByID(ctx, id)
}

// GetAllFoodRecipes fetches every stored recipe and keeps the ones matching
// all requested filters, projected without ingredient details and
// instructions.
func (s *foodRecipeService) GetAllFoodRecipes(ctx context.Context, req domain.GetAllFoodRecipesRequest) ([]domain.FoodRecipeResponse, error) {
	recipes, err := s.recipeRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodRecipeResponse, 0, len(recipes))
	for _, entity := range recipes {
		// Vegan counts as vegetarian, so the filter only rejects
		// NON_VEGETARIAN dishes.
		if req.IsVegetarian != nil && *req.IsVegetarian && entity.DishType == entities.DishTypeNonVegetarian {
			continue
		}
		if req.NumberOfServings != nil && *req.NumberOfServings != entity.Servings {
			continue
		}

		names := entity.IngredientNamesUpperCase()
		if !containsAllIngredients(names, req.IncludeIngredients) {
			continue
		}
		if containsAnyIngredient(names, req.ExcludeIngredients) {
			continue
		}
		if !containsAllKeywords(entity.Instructions, req.InstructionKeywords) {
			continue
		}

		response = append(response, s.mapper.FormRecipeModel(entity, false))
	}
	return response, nil
}

func (s *foodRecipeService) UploadRecipeImage(ctx context.Context, id string, image *multipart.FileHeader) (domain.FoodRecipeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.FoodRecipeResponse{}, domain.ErrParseUUID
	}

	entity, err := s.recipeRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodRecipeResponse{}, domain.IdNotFoundError{ID: id}
		}
		return domain.FoodRecipeResponse{}, err
	}

	fileName := fmt.Sprintf("food-recipe-%s", entity.ID.String())
	var objectKey string
	var uploadErr error

	if entity.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(entity.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, image, "recipe-images", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, image, "recipe-images", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.FoodRecipeResponse{}, uploadErr
	}

	entity.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.Update(ctx, entity); err != nil {
		return domain.FoodRecipeResponse{}, err
	}

	return s.mapper.FormRecipeModel(entity, true), nil
}

func containsAllIngredients(names map[string]bool, required []string) bool {
	for _, name := range required {
		if !names[name] {
			return false
		}
	}
	return true
}

func containsAnyIngredient(names map[string]bool, excluded []string) bool {
	for _, name := range excluded {
		if names[name] {
			return true
		}
	}
	return false
}

func containsAllKeywords(instructions string, keywords []string) bool {
	upperInstructions := strings.ToUpper(instructions)
	for _, keyword := range keywords {
		if !strings.Contains(upperInstructions, keyword) {
			return false
		}
	}
	return true
}
