package migration

import (
	"fmt"
	"log"
	"os"
	"streetbite-backend/entities"

	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// Setup PostgreSQL extensions for geographical calculations
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"earthdistance\" CASCADE;")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"cube\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PostalArea{}); err != nil {
		log.Fatalf("Error migrating postal area database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Vendor{}, &entities.VendorImage{}); err != nil {
		log.Fatalf("Error migrating vendor database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuItem{}); err != nil {
		log.Fatalf("Error migrating menu item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Rating{}); err != nil {
		log.Fatalf("Error migrating rating database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Follow{}); err != nil {
		log.Fatalf("Error migrating follow database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Comment{}, &entities.CommentLike{}); err != nil {
		log.Fatalf("Error migrating comment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PromotionOrder{}); err != nil {
		log.Fatalf("Error migrating promotion order database: %v", err)
		return err
	}

	if err := seedPostalAreas(db); err != nil {
		log.Printf("Error seeding postal areas: %v", err)
	}

	fmt.Println("Database migration complete")
	return nil
}

type postalAreaSeed struct {
	Pincode   string  `yaml:"pincode"`
	AreaName  string  `yaml:"area_name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// seedPostalAreas loads the postal area reference data once. Subsequent runs
// leave an already populated table untouched.
func seedPostalAreas(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.PostalArea{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	file, err := os.ReadFile("postal_areas.yaml")
	if err != nil {
		return err
	}

	var seeds []postalAreaSeed
	if err := yaml.Unmarshal(file, &seeds); err != nil {
		return err
	}

	areas := make([]entities.PostalArea, 0, len(seeds))
	for _, s := range seeds {
		areas = append(areas, entities.PostalArea{
			Pincode:   s.Pincode,
			AreaName:  s.AreaName,
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
		})
	}
	if len(areas) == 0 {
		return nil
	}

	return db.CreateInBatches(areas, 100).Error
}
