package database

import (
	"fmt"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/migrations"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/models"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/utils"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema, including the composite unique
// indexes that back the one-favorite-per-pair rule.
func Migrate(db *gorm.DB) error {
	removed, err := migrations.DedupeFavorites(db)
	if err != nil {
		return fmt.Errorf("failed to dedupe favorites: %w", err)
	}
	if removed > 0 {
		utils.Log.WithField("rows", removed).Warn("removed duplicate favorites before indexing")
	}

	return db.AutoMigrate(
		&models.User{},
		&models.People{},
		&models.Planet{},
		&models.UserPeopleFavorite{},
		&models.UserPlanetFavorite{},
	)
}
