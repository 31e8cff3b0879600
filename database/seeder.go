package database

import (
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/models"

	"gorm.io/gorm"
)

// SeedUsers fills the users table when it is empty. Users have no creation
// endpoint, so a fresh database needs these to exercise favorites.
func SeedUsers(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	users := []models.User{
		{Name: "Layla", Email: "layla@example.com"},
		{Name: "Facundo", Email: "facundo@example.com"},
	}
	if err := db.Create(&users).Error; err != nil {
		return 0, err
	}
	return len(users), nil
}
