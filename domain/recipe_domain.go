package domain

import (
	"fmt"
)

var (
	MessageSuccessSaveRecipe   = "recipe saved successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"

	MessageFailedSaveRecipe   = "failed to save recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedGetRecipes   = "failed to get recipes"
)

// RecipeSelfLinkFormat is the canonical location of a single recipe,
// attached as a self link to every recipe response.
const RecipeSelfLinkFormat = "/api/v1/kitchen/foodRecipe/%s"

// IdNotFoundError reports a recipe id that does not exist in the inventory.
type IdNotFoundError struct {
	ID string
}

func (e IdNotFoundError) Error() string {
	return fmt.Sprintf("Requested Id: %s is not found. Please Check", e.ID)
}

type (
	IngredientPayload struct {
		Name     string `json:"name" validate:"required"`
		Quantity int    `json:"quantity" validate:"required"`
		Unit     string `json:"unit,omitempty"`
	}

	SaveFoodRecipeRequest struct {
		DishType     string              `json:"dishType" validate:"required,oneof=VEGAN VEGETARIAN NON_VEGETARIAN"`
		Servings     int                 `json:"servings" validate:"required,gt=0"`
		Ingredients  []IngredientPayload `json:"ingredients" validate:"required,min=1,max=100,dive"`
		Instructions string              `json:"instructions" validate:"required,max=2000"`
	}

	// GetAllFoodRecipesRequest carries the list filters. Nil pointers and
	// empty slices mean the corresponding filter is not applied. Ingredient
	// names and instruction keywords are upper-cased at the handler boundary.
	GetAllFoodRecipesRequest struct {
		IsVegetarian        *bool
		NumberOfServings    *int
		IncludeIngredients  []string
		ExcludeIngredients  []string
		InstructionKeywords []string
	}

	RecipeLinks struct {
		Self string `json:"self"`
	}

	FoodRecipeResponse struct {
		ID                      string              `json:"id"`
		DishType                string              `json:"dishType"`
		Servings                int                 `json:"servings"`
		Ingredients             []IngredientPayload `json:"ingredients,omitempty"`
		IngredientsWithQuantity []string            `json:"ingredientsWithQuantity"`
		Instructions            string              `json:"instructions,omitempty"`
		ImageURL                string              `json:"imageUrl,omitempty"`
		Links                   RecipeLinks         `json:"_links"`
	}
)
