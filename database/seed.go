package database

import (
	"log"

	"foundation_backend/model"

	"gorm.io/gorm"
)

// SeedCards makes sure at least one batch exists so physically issued
// tickets and cards have something to reference in a fresh install.
func SeedCards(db *gorm.DB) {
	var count int64
	db.Model(&model.Batch{}).Count(&count)
	if count > 0 {
		return
	}
	if err := db.Create(&model.Batch{Code: "GENERAL", IsActive: true}).Error; err != nil {
		log.Printf("seed default batch: %v", err)
		return
	}
	log.Println("seeded default batch GENERAL")
}
