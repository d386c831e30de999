package config

import (
	"Food-Recipe-Service/internal/api/handlers"
	"Food-Recipe-Service/internal/api/presenters"
	"Food-Recipe-Service/internal/api/routes"
	"Food-Recipe-Service/internal/middleware"
	"Food-Recipe-Service/internal/utils"
	"Food-Recipe-Service/internal/utils/storage"
	"Food-Recipe-Service/pkg/foodrecipe"
	"Food-Recipe-Service/pkg/ingredient"
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		ErrorHandler:      errorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	recipeRepository := foodrecipe.NewFoodRecipeRepository(db)
	referenceRepository := ingredient.NewIngredientReferenceRepository(db)

	// Service
	recipeMapper := foodrecipe.NewFoodRecipeMapper(referenceRepository)
	recipeService := foodrecipe.NewFoodRecipeService(recipeRepository, recipeMapper, s3)
	ingredientService := ingredient.NewIngredientReferenceService(referenceRepository)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RecipeHandler:     recipeHandler,
		IngredientHandler: ingredientHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

// errorHandler keeps the {code, message} error contract for failures raised
// by fiber itself, such as unknown routes or oversized bodies.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		return presenters.ErrorResponse(c, fiberErr.Code, fiberErr.Message)
	}
	return presenters.TechnicalErrorResponse(c)
}
