package routes

import (
	"Food-Recipe-Service/internal/api/handlers"
	"Food-Recipe-Service/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.FoodRecipe()
	c.IngredientReference()
	c.GuestRoute()
}

func (c *Config) FoodRecipe() {
	recipes := c.App.Group("/api/v1/kitchen/foodRecipe")
	{
		recipes.Post("/", c.RecipeHandler.PostFoodRecipe)
		recipes.Get("/", c.RecipeHandler.GetFoodRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetFoodRecipe)
		recipes.Put("/:id", c.RecipeHandler.PutFoodRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteFoodRecipe)
		recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
	}
}

func (c *Config) IngredientReference() {
	reference := c.App.Group("/api/v1/kitchen/reference")
	{
		reference.Get("/ingredients", c.IngredientHandler.GetAllReferenceIngredients)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
