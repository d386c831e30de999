package foodrecipe

import (
	"Food-Recipe-Service/domain"
	"Food-Recipe-Service/entities"
	"Food-Recipe-Service/pkg/ingredient"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodRecipeMapper translates between the recipe wire model and the persisted
// recipe, resolving ingredient names against the shared reference catalog.
type FoodRecipeMapper struct {
	referenceRepository ingredient.IngredientReferenceRepository
}

func NewFoodRecipeMapper(referenceRepository ingredient.IngredientReferenceRepository) *FoodRecipeMapper {
	return &FoodRecipeMapper{referenceRepository: referenceRepository}
}

// FormRecipeEntity copies the request onto the entity and rebuilds its
// ingredient list from scratch. Any ingredient rows previously attached to
// the entity are dropped, not merged.
func (m *FoodRecipeMapper) FormRecipeEntity(ctx context.Context, model domain.SaveFoodRecipeRequest, entity *entities.FoodRecipe) error {
	entity.DishType = entities.DishType(model.DishType)
	entity.Servings = model.Servings
	entity.Instructions = model.Instructions

	ingredients := make([]entities.Ingredient, 0, len(model.Ingredients))
	for position, payload := range model.Ingredients {
		reference, err := m.resolveReference(ctx, payload.Name)
		if err != nil {
			return err
		}
		ingredients = append(ingredients, entities.Ingredient{
			ID:           uuid.New(),
			FoodRecipeID: entity.ID,
			ReferenceID:  reference.ID,
			Reference:    reference,
			Quantity:     payload.Quantity,
			Unit:         payload.Unit,
			Position:     position,
		})
	}
	entity.Ingredients = ingredients
	return nil
}

// resolveReference reuses the catalog entry matching the name
// case-insensitively, creating one with the name as given on a miss.
func (m *FoodRecipeMapper) resolveReference(ctx context.Context, name string) (*entities.IngredientReference, error) {
	reference, err := m.referenceRepository.FindByNameIgnoreCase(ctx, name)
	if err == nil {
		return reference, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	reference = &entities.IngredientReference{
		ID:   uuid.New(),
		Name: name,
	}
	if err := m.referenceRepository.Save(ctx, reference); err != nil {
		return nil, err
	}
	return reference, nil
}

// FormRecipeModel projects the entity to the wire model. The structured
// ingredient list and instructions are only present when includeDetails is
// true; the combined ingredient strings and the self link always are.
func (m *FoodRecipeMapper) FormRecipeModel(entity *entities.FoodRecipe, includeDetails bool) domain.FoodRecipeResponse {
	ingredients := make([]domain.IngredientPayload, 0, len(entity.Ingredients))
	ingredientsWithQuantity := make([]string, 0, len(entity.Ingredients))

	for _, ingredientEntity := range entity.Ingredients {
		name := ""
		if ingredientEntity.Reference != nil {
			name = ingredientEntity.Reference.Name
		}
		ingredients = append(ingredients, domain.IngredientPayload{
			Name:     name,
			Quantity: ingredientEntity.Quantity,
			Unit:     ingredientEntity.Unit,
		})
		ingredientsWithQuantity = append(ingredientsWithQuantity, formIngredientWithQuantity(name, ingredientEntity))
	}

	response := domain.FoodRecipeResponse{
		ID:                      entity.ID.String(),
		DishType:                string(entity.DishType),
		Servings:                entity.Servings,
		IngredientsWithQuantity: ingredientsWithQuantity,
		ImageURL:                entity.ImageURL,
		Links: domain.RecipeLinks{
			Self: fmt.Sprintf(domain.RecipeSelfLinkFormat, entity.ID.String()),
		},
	}
	if includeDetails {
		response.Ingredients = ingredients
		response.Instructions = entity.Instructions
	}
	return response
}

// "onion 100gm" when a unit is present, "2 eggs" otherwise.
func formIngredientWithQuantity(name string, ingredientEntity entities.Ingredient) string {
	quantity := strconv.Itoa(ingredientEntity.Quantity)
	if ingredientEntity.Unit != "" {
		return name + " " + quantity + ingredientEntity.Unit
	}
	return quantity + " " + name
}
