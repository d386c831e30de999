package migration

import (
	"Food-Recipe-Service/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.IngredientReference{}); err != nil {
		log.Fatalf("Error migrating ingredient reference database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodRecipe{}); err != nil {
		log.Fatalf("Error migrating food recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
