package handlers

import (
	"Food-Recipe-Service/internal/api/presenters"
	"Food-Recipe-Service/pkg/ingredient"

	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		GetAllReferenceIngredients(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientReferenceService
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientReferenceService) IngredientHandler {
	return &ingredientHandler{ingredientService: ingredientService}
}

func (h *ingredientHandler) GetAllReferenceIngredients(c *fiber.Ctx) error {
	names, err := h.ingredientService.GetAllIngredientNames(c.Context())
	if err != nil {
		return presenters.TechnicalErrorResponse(c)
	}

	return presenters.SuccessResponse(c, names, fiber.StatusOK)
}
