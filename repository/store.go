package repository

import (
	"context"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/models"
	"gorm.io/gorm"
)

// Store groups the repositories sharing one gorm handle. The handle is a
// connection pool; Transaction hands out a Store bound to a single tx.
type Store struct {
	db *gorm.DB

	Users           *Repository[models.User]
	People          *Repository[models.People]
	Planets         *Repository[models.Planet]
	PeopleFavorites *Repository[models.UserPeopleFavorite]
	PlanetFavorites *Repository[models.UserPlanetFavorite]
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:              db,
		Users:           NewRepository[models.User](db),
		People:          NewRepository[models.People](db),
		Planets:         NewRepository[models.Planet](db),
		PeopleFavorites: NewRepository[models.UserPeopleFavorite](db),
		PlanetFavorites: NewRepository[models.UserPlanetFavorite](db),
	}
}

// Transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// Ping checks the underlying connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
