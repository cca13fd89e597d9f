package configs

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/haiki1233/food-delivery-backend/entity"
)

// SeedAdmin creates the bootstrap admin account once.
func SeedAdmin() error {
	var existing entity.User
	err := db.Where("role = ?", "admin").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "admin1234")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: "admin",
		Email:    getEnv("ADMIN_EMAIL", "admin@foodapp.com"),
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("seeded admin account", admin.Email)
	return nil
}
