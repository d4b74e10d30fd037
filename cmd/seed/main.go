package main

import (
	"log"
	"os"

	"bundle-store-be/internal/model"
	"bundle-store-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding Providers...")
	SeedProviders(db)

	log.Println("Seeding Bundle Categories...")
	SeedCategories(db)

	log.Println("Seeding completed!")
}

// SeedProviders populates the telecom operators shown on the first selection
// screen. Colors are the operators' brand colors.
func SeedProviders(db *gorm.DB) {
	providers := []model.Provider{
		{Name: "Hormuud", Color: "#3578EF", Icon: "cellphone", Description: "Hormuud Telecom"},
		{Name: "Somtel", Color: "#27AE60", Icon: "cellphone", Description: "Somtel Network"},
		{Name: "Golis", Color: "#E4572E", Icon: "cellphone", Description: "Golis Telecom"},
		{Name: "Telesom", Color: "#F5A623", Icon: "cellphone", Description: "Telesom"},
	}

	for _, p := range providers {
		var existing model.Provider
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			log.Printf("Provider '%s' already exists, skipping...", p.Name)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating provider '%s': %v", p.Name, err)
		} else {
			log.Printf("Created provider: %s", p.Name)
		}
	}
}

func SeedCategories(db *gorm.DB) {
	categories := []model.BundleCategory{
		{Name: "Daily Bundles", Description: "For 24-hour access", Icon: "calendar-today"},
		{Name: "Weekly Bundles", Description: "For 7-day access", Icon: "calendar-week"},
		{Name: "Monthly Bundles", Description: "For 30-day access", Icon: "calendar-month"},
		{Name: "Social Bundles", Description: "For social media", Icon: "account-group"},
		{Name: "Special Offers", Description: "Exclusive deals", Icon: "star"},
		{Name: "Roaming", Description: "Stay connected", Icon: "earth"},
	}

	for _, c := range categories {
		var existing model.BundleCategory
		if err := db.Where("name = ?", c.Name).First(&existing).Error; err == nil {
			log.Printf("Category '%s' already exists, skipping...", c.Name)
			continue
		}

		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating category '%s': %v", c.Name, err)
		} else {
			log.Printf("Created category: %s", c.Name)
		}
	}
}
