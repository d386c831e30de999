package entities

import (
	"strings"

	"github.com/google/uuid"
)

type DishType string

const (
	DishTypeVegan         DishType = "VEGAN"
	DishTypeVegetarian    DishType = "VEGETARIAN"
	DishTypeNonVegetarian DishType = "NON_VEGETARIAN"
)

type FoodRecipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DishType     DishType  `gorm:"type:varchar(20)" json:"dish_type"`
	Servings     int       `json:"servings"`
	Instructions string    `gorm:"type:text" json:"instructions"`
	ImageURL     string    `json:"image_url,omitempty"`

	Ingredients []Ingredient `gorm:"foreignKey:FoodRecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	Timestamp
}

type Ingredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodRecipeID uuid.UUID `json:"food_recipe_id"`
	ReferenceID  uuid.UUID `json:"reference_id"`
	Quantity     int       `json:"quantity"`
	Unit         string    `json:"unit,omitempty"`
	Position     int       `json:"position"`

	Reference *IngredientReference `gorm:"foreignKey:ReferenceID"`
	Timestamp
}

type IngredientReference struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`

	Timestamp
}

// IngredientNamesUpperCase collects the recipe's ingredient names,
// upper-cased, for case-insensitive filter matching.
func (r *FoodRecipe) IngredientNamesUpperCase() map[string]bool {
	names := make(map[string]bool, len(r.Ingredients))
	for _, ingredient := range r.Ingredients {
		if ingredient.Reference != nil {
			names[strings.ToUpper(ingredient.Reference.Name)] = true
		}
	}
	return names
}
