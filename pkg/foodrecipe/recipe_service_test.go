package foodrecipe

import (
	"Food-Recipe-Service/domain"
	"Food-Recipe-Service/entities"
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// mockRecipeRepository keeps recipes in insertion order, like the store's
// natural enumeration.
type mockRecipeRepository struct {
	recipes     []*entities.FoodRecipe
	updateCalls int
	deleted     []string
}

func (m *mockRecipeRepository) Save(_ context.Context, recipe *entities.FoodRecipe) error {
	m.recipes = append(m.recipes, recipe)
	return nil
}

func (m *mockRecipeRepository) Update(_ context.Context, recipe *entities.FoodRecipe) error {
	m.updateCalls++
	for i, stored := range m.recipes {
		if stored.ID == recipe.ID {
			m.recipes[i] = recipe
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockRecipeRepository) FindByID(_ context.Context, id string) (*entities.FoodRecipe, error) {
	for _, recipe := range m.recipes {
		if recipe.ID.String() == id {
			return recipe, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRecipeRepository) FindAll(_ context.Context) ([]*entities.FoodRecipe, error) {
	return m.recipes, nil
}

func (m *mockRecipeRepository) DeleteByID(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	for i, recipe := range m.recipes {
		if recipe.ID.String() == id {
			m.recipes = append(m.recipes[:i], m.recipes[i+1:]...)
			break
		}
	}
	return nil
}

type mockAwsS3 struct {
	uploads []string
	deletes []string
}

func (m *mockAwsS3) UploadFile(fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	objectKey := dir + "/" + fileName + ".jpg"
	m.uploads = append(m.uploads, objectKey)
	return objectKey, nil
}

func (m *mockAwsS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	m.uploads = append(m.uploads, objectKey)
	return objectKey, nil
}

func (m *mockAwsS3) DeleteFile(objectKey string) error {
	m.deletes = append(m.deletes, objectKey)
	return nil
}

func (m *mockAwsS3) GetPublicLinkKey(objectKey string) string {
	return "https://test-bucket.s3.eu-west-1.amazonaws.com/" + objectKey
}

func (m *mockAwsS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://test-bucket.s3.eu-west-1.amazonaws.com/")
}

func newTestService() (FoodRecipeService, *mockRecipeRepository, *mockAwsS3) {
	recipeRepository := &mockRecipeRepository{}
	s3 := &mockAwsS3{}
	mapper := NewFoodRecipeMapper(&mockReferenceRepository{})
	return NewFoodRecipeService(recipeRepository, mapper, s3), recipeRepository, s3
}

type testIngredient struct {
	name     string
	quantity int
	unit     string
}

func recipeRequest(dishType string, servings int, instructions string, ingredients ...testIngredient) domain.SaveFoodRecipeRequest {
	req := domain.SaveFoodRecipeRequest{
		DishType:     dishType,
		Servings:     servings,
		Instructions: instructions,
	}
	for _, ing := range ingredients {
		req.Ingredients = append(req.Ingredients, domain.IngredientPayload{
			Name:     ing.name,
			Quantity: ing.quantity,
			Unit:     ing.unit,
		})
	}
	return req
}

// seedRecipes stores the three stock recipes used by the filter tests:
// servings {4, 2, 3}, dish types {NON_VEGETARIAN, VEGETARIAN, VEGAN}.
func seedRecipes(t *testing.T, service FoodRecipeService) []domain.FoodRecipeResponse {
	t.Helper()
	ctx := context.Background()

	requests := []domain.SaveFoodRecipeRequest{
		recipeRequest("NON_VEGETARIAN", 4, "Cook the chicken on the stove",
			testIngredient{"eggs", 2, ""}, testIngredient{"milk", 500, "ml"}, testIngredient{"sugar", 100, "gm"}),
		recipeRequest("VEGETARIAN", 2, "Bake in the oven for 20 minutes",
			testIngredient{"eggs", 2, ""}, testIngredient{"milk", 500, "ml"}, testIngredient{"flour", 250, "gm"}),
		recipeRequest("VEGAN", 3, "Blend and chill",
			testIngredient{"banana", 2, ""}, testIngredient{"milk", 500, "ml"}, testIngredient{"oats", 100, "gm"}),
	}

	saved := make([]domain.FoodRecipeResponse, 0, len(requests))
	for _, req := range requests {
		res, err := service.SaveFoodRecipe(ctx, req)
		require.NoError(t, err)
		saved = append(saved, res)
	}
	return saved
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestSaveFoodRecipe(t *testing.T) {
	service, recipeRepository, _ := newTestService()

	res, err := service.SaveFoodRecipe(context.Background(), recipeRequest(
		"VEGAN", 4, "Cook me on Stove", testIngredient{"egg", 2, ""}))
	require.NoError(t, err)

	assert.Equal(t, "VEGAN", res.DishType)
	assert.Equal(t, 4, res.Servings)
	assert.Equal(t, "Cook me on Stove", res.Instructions)
	assert.Equal(t, []string{"2 egg"}, res.IngredientsWithQuantity)
	assert.Equal(t, "/api/v1/kitchen/foodRecipe/"+res.ID, res.Links.Self)
	assert.Len(t, recipeRepository.recipes, 1)
}

func TestSaveThenGetRoundTrip(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	saved, err := service.SaveFoodRecipe(ctx, recipeRequest(
		"VEGETARIAN", 2, "Bake in the oven",
		testIngredient{"milk", 500, "ml"}, testIngredient{"flour", 250, "gm"}))
	require.NoError(t, err)

	fetched, err := service.GetFoodRecipe(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, fetched)
}

func TestUpdateFoodRecipeNotFound(t *testing.T) {
	service, recipeRepository, _ := newTestService()
	missingID := uuid.New().String()

	_, err := service.UpdateFoodRecipe(context.Background(), recipeRequest(
		"VEGAN", 4, "Cook me on Stove", testIngredient{"egg", 2, ""}), missingID)

	var notFound domain.IdNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, missingID, notFound.ID)
	assert.Contains(t, err.Error(), missingID)
	assert.Zero(t, recipeRepository.updateCalls)
	assert.Empty(t, recipeRepository.recipes)
}

func TestUpdateFoodRecipeReplacesIngredients(t *testing.T) {
	service, recipeRepository, _ := newTestService()
	ctx := context.Background()

	saved, err := service.SaveFoodRecipe(ctx, recipeRequest(
		"VEGETARIAN", 2, "Bake in the oven",
		testIngredient{"milk", 500, "ml"}, testIngredient{"flour", 250, "gm"}))
	require.NoError(t, err)

	updated, err := service.UpdateFoodRecipe(ctx, recipeRequest(
		"VEGAN", 6, "Simmer gently", testIngredient{"oats", 100, "gm"}), saved.ID)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "VEGAN", updated.DishType)
	assert.Equal(t, 6, updated.Servings)
	assert.Equal(t, []string{"oats 100gm"}, updated.IngredientsWithQuantity)
	assert.Equal(t, 1, recipeRepository.updateCalls)

	fetched, err := service.GetFoodRecipe(ctx, saved.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Ingredients, 1)
	assert.Equal(t, "oats", fetched.Ingredients[0].Name)
}

func TestGetFoodRecipeInvalidID(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.GetFoodRecipe(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestRemoveFoodRecipe(t *testing.T) {
	service, recipeRepository, _ := newTestService()
	ctx := context.Background()

	saved, err := service.SaveFoodRecipe(ctx, recipeRequest(
		"VEGAN", 4, "Cook me on Stove", testIngredient{"egg", 2, ""}))
	require.NoError(t, err)

	require.NoError(t, service.RemoveFoodRecipe(ctx, saved.ID))
	assert.Equal(t, []string{saved.ID}, recipeRepository.deleted)

	// Removing an unknown id stays a no-op.
	require.NoError(t, service.RemoveFoodRecipe(ctx, uuid.New().String()))
}

func TestGetAllFoodRecipesNoFilters(t *testing.T) {
	service, _, _ := newTestService()
	seedRecipes(t, service)

	recipes, err := service.GetAllFoodRecipes(context.Background(), domain.GetAllFoodRecipesRequest{})
	require.NoError(t, err)

	require.Len(t, recipes, 3)
	assert.Equal(t, "NON_VEGETARIAN", recipes[0].DishType)
	assert.Equal(t, 4, recipes[0].Servings)
	assert.Equal(t, "milk 500ml", recipes[0].IngredientsWithQuantity[1])
	assert.Equal(t, "2 eggs", recipes[1].IngredientsWithQuantity[0])

	// List views carry no ingredient details and no instructions.
	for _, recipe := range recipes {
		assert.Nil(t, recipe.Ingredients)
		assert.Empty(t, recipe.Instructions)
		assert.NotEmpty(t, recipe.IngredientsWithQuantity)
	}
}

func TestGetAllFoodRecipesVegetarian(t *testing.T) {
	service, _, _ := newTestService()
	seedRecipes(t, service)

	recipes, err := service.GetAllFoodRecipes(context.Background(), domain.GetAllFoodRecipesRequest{
		IsVegetarian: boolPtr(true),
	})
	require.NoError(t, err)

	// Vegan passes the vegetarian filter, order is preserved.
	require.Len(t, recipes, 2)
	assert.Equal(t, "VEGETARIAN", recipes[0].DishType)
	assert.Equal(t, "VEGAN", recipes[1].DishType)
}

func TestGetAllFoodRecipesVegetarianFalsePassesAll(t *testing.T) {
	service, _, _ := newTestService()
	seedRecipes(t, service)

	recipes, err := service.GetAllFoodRecipes(context.Background(), domain.GetAllFoodRecipesRequest{
		IsVegetarian: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Len(t, recipes, 3)
}

func TestGetAllFoodRecipesByServings(t *testing.T) {
	service, _, _ := newTestService()
	seedRecipes(t, service)

	recipes, err := service.GetAllFoodRecipes(context.Background(), domain.GetAllFoodRecipesRequest{
		NumberOfServings: intPtr(3),
	})
	require.NoError(t, err)

	require.Len(t, recipes, 1)
	assert.Equal(t, "VEGAN", recipes[0].DishType)
}

func TestGetAllFoodRecipesIncludeIngredients(t *testing.T) {
	service, _, _ := newTestService()
	seedRecipes(t, service)
	ctx := context.Background()

	recipes, err := service.GetAllFoodRecipes(ctx, domain.GetAllFoodRecipesRequest{
		IncludeIngredients: []string{"MILK"},
	})
	require.NoError(t, err)
	assert.Len(t, recipes, 3)

	recipes, err = service.GetAllFoodRecipes(ctx, domain.GetAllFoodRecipesRequest{
		IncludeIngredients: []string{"MILK", "FLOUR"},
	})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "VEGETARIAN", recipes[0].DishType)
}

func TestGetAllFoodRecipesExcludeIngredients(t *testing.T) {
	service, _, _ := newTestService()
	seedRecipes(t, service)

	recipes, err := service.GetAllFoodRecipes(context.Background(), domain.GetAllFoodRecipesRequest{
		ExcludeIngredients: []string{"SUGAR"},
	})
	require.NoError(t, err)

	require.Len(t, recipes, 2)
	assert.Equal(t, "VEGETARIAN", recipes[0].DishType)
	assert.Equal(t, "VEGAN", recipes[1].DishType)
}

func TestGetAllFoodRecipesIncludeAndExcludeConjunction(t *testing.T) {
	service, _, _ := newTestService()
	seedRecipes(t, service)

	recipes, err := service.GetAllFoodRecipes(context.Background(), domain.GetAllFoodRecipesRequest{
		IsVegetarian:       boolPtr(true),
		IncludeIngredients: []string{"EGGS"},
		ExcludeIngredients: []string{"SUGAR"},
	})
	require.NoError(t, err)

	require.Len(t, recipes, 1)
	assert.Equal(t, "VEGETARIAN", recipes[0].DishType)
}

func TestGetAllFoodRecipesByInstructionKeywords(t *testing.T) {
	service, _, _ := newTestService()
	seedRecipes(t, service)
	ctx := context.Background()

	recipes, err := service.GetAllFoodRecipes(ctx, domain.GetAllFoodRecipesRequest{
		InstructionKeywords: []string{"OVEN"},
	})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "VEGETARIAN", recipes[0].DishType)

	// Every keyword must match, not just one.
	recipes, err = service.GetAllFoodRecipes(ctx, domain.GetAllFoodRecipesRequest{
		InstructionKeywords: []string{"OVEN", "CHILL"},
	})
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestGetAllFoodRecipesAfterDelete(t *testing.T) {
	service, _, _ := newTestService()
	saved := seedRecipes(t, service)
	ctx := context.Background()

	// Flour only appears in the vegetarian recipe.
	require.NoError(t, service.RemoveFoodRecipe(ctx, saved[1].ID))

	recipes, err := service.GetAllFoodRecipes(ctx, domain.GetAllFoodRecipesRequest{
		IncludeIngredients: []string{"FLOUR"},
	})
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestUploadRecipeImage(t *testing.T) {
	service, recipeRepository, s3 := newTestService()
	ctx := context.Background()

	saved, err := service.SaveFoodRecipe(ctx, recipeRequest(
		"VEGAN", 4, "Cook me on Stove", testIngredient{"egg", 2, ""}))
	require.NoError(t, err)

	image := &multipart.FileHeader{Filename: "dish.jpg"}
	res, err := service.UploadRecipeImage(ctx, saved.ID, image)
	require.NoError(t, err)

	assert.Equal(t, "https://test-bucket.s3.eu-west-1.amazonaws.com/recipe-images/food-recipe-"+saved.ID+".jpg", res.ImageURL)
	assert.Equal(t, []string{"recipe-images/food-recipe-" + saved.ID + ".jpg"}, s3.uploads)
	assert.Equal(t, 1, recipeRepository.updateCalls)
}

func TestUploadRecipeImageNotFound(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.UploadRecipeImage(context.Background(), uuid.New().String(), &multipart.FileHeader{Filename: "dish.jpg"})

	var notFound domain.IdNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRemoveFoodRecipeDeletesImage(t *testing.T) {
	service, _, s3 := newTestService()
	ctx := context.Background()

	saved, err := service.SaveFoodRecipe(ctx, recipeRequest(
		"VEGAN", 4, "Cook me on Stove", testIngredient{"egg", 2, ""}))
	require.NoError(t, err)

	_, err = service.UploadRecipeImage(ctx, saved.ID, &multipart.FileHeader{Filename: "dish.jpg"})
	require.NoError(t, err)

	require.NoError(t, service.RemoveFoodRecipe(ctx, saved.ID))
	assert.Equal(t, []string{"recipe-images/food-recipe-" + saved.ID + ".jpg"}, s3.deletes)
}
