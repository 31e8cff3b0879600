package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/metrics"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/models"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/repository"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/utils"
)

const (
	kindPeople = "people"
	kindPlanet = "planet"
)

// FavoriteService keeps at most one favorite row per (user, target) pair and
// only links existing users to existing targets.
type FavoriteService struct {
	store *repository.Store
}

func NewFavoriteService(store *repository.Store) *FavoriteService {
	return &FavoriteService{store: store}
}

// AddPeopleFavorite links a person to a user. The existence checks and the
// insert share a transaction; the unique index on (user_id, people_id)
// catches concurrent duplicates the check missed.
func (s *FavoriteService) AddPeopleFavorite(ctx context.Context, userID *uint, peopleID uint) (string, error) {
	if userID == nil {
		return "", validationError(msgUserIDRequired)
	}

	var msg string
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		user, err := findUser(ctx, tx, *userID)
		if err != nil {
			return err
		}
		person, err := tx.People.GetByID(ctx, peopleID)
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError(msgPersonNotFound)
		}
		if err != nil {
			return err
		}

		_, err = tx.PeopleFavorites.FindOne(ctx, map[string]interface{}{"user_id": user.ID, "people_id": person.ID})
		if err == nil {
			return conflictError(msgPersonDuplicate)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		fav := &models.UserPeopleFavorite{UserID: user.ID, PeopleID: person.ID}
		if err := tx.PeopleFavorites.Create(ctx, fav); err != nil {
			if repository.IsUniqueViolation(err) {
				return conflictError(msgPersonDuplicate)
			}
			return err
		}
		msg = fmt.Sprintf("Added %s to favorites for user %s", person.Name, user.Name)
		return nil
	})
	recordMutation(kindPeople, "add", err)
	return msg, err
}

func (s *FavoriteService) AddPlanetFavorite(ctx context.Context, userID *uint, planetID uint) (string, error) {
	if userID == nil {
		return "", validationError(msgUserIDRequired)
	}

	var msg string
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		user, err := findUser(ctx, tx, *userID)
		if err != nil {
			return err
		}
		planet, err := tx.Planets.GetByID(ctx, planetID)
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError(msgPlanetNotFound)
		}
		if err != nil {
			return err
		}

		_, err = tx.PlanetFavorites.FindOne(ctx, map[string]interface{}{"user_id": user.ID, "planet_id": planet.ID})
		if err == nil {
			return conflictError(msgPlanetDuplicate)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		fav := &models.UserPlanetFavorite{UserID: user.ID, PlanetID: planet.ID}
		if err := tx.PlanetFavorites.Create(ctx, fav); err != nil {
			if repository.IsUniqueViolation(err) {
				return conflictError(msgPlanetDuplicate)
			}
			return err
		}
		msg = fmt.Sprintf("Added %s to favorites for user %s", planet.Name, user.Name)
		return nil
	})
	recordMutation(kindPlanet, "add", err)
	return msg, err
}

// RemovePeopleFavorite deletes the (user, person) row. The row is looked up
// before the person, so a favorite whose person vanished can still be
// removed.
func (s *FavoriteService) RemovePeopleFavorite(ctx context.Context, userID *uint, peopleID uint) (string, error) {
	if userID == nil {
		return "", validationError(msgUserIDRequired)
	}

	var msg string
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		fav, err := tx.PeopleFavorites.FindOne(ctx, map[string]interface{}{"user_id": *userID, "people_id": peopleID})
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError(msgFavoriteNotFound)
		}
		if err != nil {
			return err
		}

		name := unknownName
		if person, err := tx.People.GetByID(ctx, peopleID); err == nil {
			name = person.Name
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		if err := tx.PeopleFavorites.Delete(ctx, fav); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFoundError(msgFavoriteNotFound)
			}
			return err
		}
		msg = fmt.Sprintf("Favorite person %s deleted successfully", name)
		return nil
	})
	recordMutation(kindPeople, "remove", err)
	return msg, err
}

func (s *FavoriteService) RemovePlanetFavorite(ctx context.Context, userID *uint, planetID uint) (string, error) {
	if userID == nil {
		return "", validationError(msgUserIDRequired)
	}

	var msg string
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		fav, err := tx.PlanetFavorites.FindOne(ctx, map[string]interface{}{"user_id": *userID, "planet_id": planetID})
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError(msgFavoriteNotFound)
		}
		if err != nil {
			return err
		}

		name := unknownName
		if planet, err := tx.Planets.GetByID(ctx, planetID); err == nil {
			name = planet.Name
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		if err := tx.PlanetFavorites.Delete(ctx, fav); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFoundError(msgFavoriteNotFound)
			}
			return err
		}
		msg = fmt.Sprintf("Favorite planet %s deleted successfully", name)
		return nil
	})
	recordMutation(kindPlanet, "remove", err)
	return msg, err
}

// ListFavoritesForUser returns the people and planets a user favorited, in
// the order they were favorited. Rows whose target is gone are skipped.
func (s *FavoriteService) ListFavoritesForUser(ctx context.Context, userID *uint) (*models.FavoritesView, error) {
	if userID == nil {
		return nil, validationError(msgUserIDRequired)
	}
	user, err := findUser(ctx, s.store, *userID)
	if err != nil {
		return nil, err
	}

	view := &models.FavoritesView{
		UserID:          user.ID,
		PeopleFavorites: []models.FavoriteItem{},
		PlanetFavorites: []models.FavoriteItem{},
	}

	peopleFavs, err := s.store.PeopleFavorites.FindAll(ctx, map[string]interface{}{"user_id": user.ID})
	if err != nil {
		return nil, err
	}
	if len(peopleFavs) > 0 {
		ids := make([]uint, 0, len(peopleFavs))
		for _, f := range peopleFavs {
			ids = append(ids, f.PeopleID)
		}
		people, err := s.store.People.FindAll(ctx, map[string]interface{}{"id": ids})
		if err != nil {
			return nil, err
		}
		byID := make(map[uint]models.People, len(people))
		for _, p := range people {
			byID[p.ID] = p
		}
		for _, f := range peopleFavs {
			p, ok := byID[f.PeopleID]
			if !ok {
				continue
			}
			view.PeopleFavorites = append(view.PeopleFavorites, models.FavoriteItem{Type: kindPeople, ID: p.ID, Name: p.Name})
		}
	}

	planetFavs, err := s.store.PlanetFavorites.FindAll(ctx, map[string]interface{}{"user_id": user.ID})
	if err != nil {
		return nil, err
	}
	if len(planetFavs) > 0 {
		ids := make([]uint, 0, len(planetFavs))
		for _, f := range planetFavs {
			ids = append(ids, f.PlanetID)
		}
		planets, err := s.store.Planets.FindAll(ctx, map[string]interface{}{"id": ids})
		if err != nil {
			return nil, err
		}
		byID := make(map[uint]models.Planet, len(planets))
		for _, p := range planets {
			byID[p.ID] = p
		}
		for _, f := range planetFavs {
			p, ok := byID[f.PlanetID]
			if !ok {
				continue
			}
			view.PlanetFavorites = append(view.PlanetFavorites, models.FavoriteItem{Type: kindPlanet, ID: p.ID, Name: p.Name})
		}
	}

	return view, nil
}

// ListAllPeopleFavorites returns every user's people favorites. No
// ownership filter.
func (s *FavoriteService) ListAllPeopleFavorites(ctx context.Context) ([]models.UserPeopleFavorite, error) {
	return s.store.PeopleFavorites.List(ctx)
}

func (s *FavoriteService) ListAllPlanetFavorites(ctx context.Context) ([]models.UserPlanetFavorite, error) {
	return s.store.PlanetFavorites.List(ctx)
}

func findUser(ctx context.Context, store *repository.Store, id uint) (*models.User, error) {
	user, err := store.Users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundError(msgUserNotFound)
	}
	return user, err
}

func recordMutation(kind, action string, err error) {
	outcome := "ok"
	var appErr *AppError
	switch {
	case err == nil:
	case errors.As(err, &appErr):
		outcome = appErr.Kind.String()
	default:
		outcome = "error"
		utils.Log.WithError(err).WithField("kind", kind).Errorf("favorite %s failed", action)
	}
	metrics.RecordFavoriteMutation(kind, action, outcome)
}
