package handlers

import (
	"Food-Recipe-Service/domain"
	"Food-Recipe-Service/internal/api/presenters"
	"Food-Recipe-Service/pkg/foodrecipe"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type (
	RecipeHandler interface {
		PostFoodRecipe(c *fiber.Ctx) error
		PutFoodRecipe(c *fiber.Ctx) error
		GetFoodRecipes(c *fiber.Ctx) error
		GetFoodRecipe(c *fiber.Ctx) error
		DeleteFoodRecipe(c *fiber.Ctx) error
		UploadRecipeImage(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService foodrecipe.FoodRecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService foodrecipe.FoodRecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) PostFoodRecipe(c *fiber.Ctx) error {
	req := new(domain.SaveFoodRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, validationMessage(err))
	}

	res, err := h.recipeService.SaveFoodRecipe(c.Context(), *req)
	if err != nil {
		return recipeErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *recipeHandler) PutFoodRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.SaveFoodRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, validationMessage(err))
	}

	res, err := h.recipeService.UpdateFoodRecipe(c.Context(), *req, recipeID)
	if err != nil {
		return recipeErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) GetFoodRecipes(c *fiber.Ctx) error {
	req := domain.GetAllFoodRecipesRequest{}

	if value := c.Query("isVegetarian"); value != "" {
		isVegetarian, err := strconv.ParseBool(value)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, "isVegetarian should be of type boolean")
		}
		req.IsVegetarian = &isVegetarian
	}

	if value := c.Query("numberOfServings"); value != "" {
		numberOfServings, err := strconv.Atoi(value)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, "numberOfServings should be of type integer")
		}
		req.NumberOfServings = &numberOfServings
	}

	req.IncludeIngredients = queryUpperCaseSet(c, "includeIngredients")
	req.ExcludeIngredients = queryUpperCaseSet(c, "excludeIngredients")
	req.InstructionKeywords = queryUpperCaseSet(c, "instructions")

	res, err := h.recipeService.GetAllFoodRecipes(c.Context(), req)
	if err != nil {
		return recipeErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) GetFoodRecipe(c *fiber.Ctx) error {
	res, err := h.recipeService.GetFoodRecipe(c.Context(), c.Params("id"))
	if err != nil {
		return recipeErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) DeleteFoodRecipe(c *fiber.Ctx) error {
	if err := h.recipeService.RemoveFoodRecipe(c.Context(), c.Params("id")); err != nil {
		return recipeErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent)
}

func (h *recipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "image file is missing")
	}

	res, err := h.recipeService.UploadRecipeImage(c.Context(), c.Params("id"), image)
	if err != nil {
		return recipeErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

// queryUpperCaseSet reads a repeatable query parameter, splits comma-joined
// values and upper-cases them, dropping duplicates and blanks.
func queryUpperCaseSet(c *fiber.Ctx, key string) []string {
	var values []string
	seen := make(map[string]bool)

	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, part := range strings.Split(string(raw), ",") {
			part = strings.ToUpper(strings.TrimSpace(part))
			if part == "" || seen[part] {
				continue
			}
			seen[part] = true
			values = append(values, part)
		}
	}
	return values
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fieldError := validationErrors[0]
		return fmt.Sprintf("%s failed on the '%s' rule", fieldError.Field(), fieldError.Tag())
	}
	return err.Error()
}

func recipeErrorResponse(c *fiber.Ctx, err error) error {
	var notFound domain.IdNotFoundError
	switch {
	case errors.As(err, &notFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, notFound.Error())
	case errors.Is(err, domain.ErrParseUUID):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "id should be of type uuid")
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	default:
		return presenters.TechnicalErrorResponse(c)
	}
}
