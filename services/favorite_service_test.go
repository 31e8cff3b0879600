package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/models"
)

func TestAddPeopleFavorite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	msg, err := f.fav.AddPeopleFavorite(ctx, uintPtr(f.user.ID), f.luke.ID)
	require.NoError(t, err)
	assert.Equal(t, "Added Luke to favorites for user Layla", msg)

	view, err := f.fav.ListFavoritesForUser(ctx, uintPtr(f.user.ID))
	require.NoError(t, err)
	assert.Equal(t, []models.FavoriteItem{{Type: "people", ID: f.luke.ID, Name: "Luke"}}, view.PeopleFavorites)
	assert.Empty(t, view.PlanetFavorites)
}

func TestAddPeopleFavoriteTwiceConflicts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.fav.AddPeopleFavorite(ctx, uintPtr(f.user.ID), f.luke.ID)
	require.NoError(t, err)

	_, err = f.fav.AddPeopleFavorite(ctx, uintPtr(f.user.ID), f.luke.ID)
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "This person is already in favorites.", err.Error())

	rows, err := f.store.PeopleFavorites.FindAll(ctx, map[string]interface{}{"user_id": f.user.ID, "people_id": f.luke.ID})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestAddPeopleFavoriteUniqueIndexConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	insertBeforeCreate(t, f.db, "user_people_favorites",
		"INSERT INTO user_people_favorites (user_id, people_id, created_at) VALUES (?, ?, ?)",
		f.user.ID, f.luke.ID, time.Now())

	_, err := f.fav.AddPeopleFavorite(ctx, uintPtr(f.user.ID), f.luke.ID)
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "This person is already in favorites.", err.Error())

	// The failed transaction leaves nothing behind, so a retry succeeds.
	n, err := f.store.PeopleFavorites.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = f.fav.AddPeopleFavorite(ctx, uintPtr(f.user.ID), f.luke.ID)
	require.NoError(t, err)
}

func TestAddPlanetFavoriteUniqueIndexConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	insertBeforeCreate(t, f.db, "user_planet_favorites",
		"INSERT INTO user_planet_favorites (user_id, planet_id, created_at) VALUES (?, ?, ?)",
		f.user.ID, f.hoth.ID, time.Now())

	_, err := f.fav.AddPlanetFavorite(ctx, uintPtr(f.user.ID), f.hoth.ID)
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "This planet is already in favorites.", err.Error())

	n, err := f.store.PlanetFavorites.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAddRemoveAddCycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uid := uintPtr(f.user.ID)

	_, err := f.fav.AddPlanetFavorite(ctx, uid, f.hoth.ID)
	require.NoError(t, err)

	msg, err := f.fav.RemovePlanetFavorite(ctx, uid, f.hoth.ID)
	require.NoError(t, err)
	assert.Equal(t, "Favorite planet Hoth deleted successfully", msg)

	_, err = f.fav.RemovePlanetFavorite(ctx, uid, f.hoth.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.fav.AddPlanetFavorite(ctx, uid, f.hoth.ID)
	assert.NoError(t, err)
}

func TestAddFavoriteValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name    string
		call    func() error
		kind    error
		message string
	}{
		{
			name: "people without user id",
			call: func() error {
				_, err := f.fav.AddPeopleFavorite(ctx, nil, f.luke.ID)
				return err
			},
			kind:    ErrValidation,
			message: "User ID is required.",
		},
		{
			name: "people unknown user",
			call: func() error {
				_, err := f.fav.AddPeopleFavorite(ctx, uintPtr(404), f.luke.ID)
				return err
			},
			kind:    ErrNotFound,
			message: "User not found.",
		},
		{
			name: "people unknown person",
			call: func() error {
				_, err := f.fav.AddPeopleFavorite(ctx, uintPtr(f.user.ID), 404)
				return err
			},
			kind:    ErrNotFound,
			message: "Person not found.",
		},
		{
			name: "planet without user id",
			call: func() error {
				_, err := f.fav.AddPlanetFavorite(ctx, nil, f.hoth.ID)
				return err
			},
			kind:    ErrValidation,
			message: "User ID is required.",
		},
		{
			name: "planet unknown planet",
			call: func() error {
				_, err := f.fav.AddPlanetFavorite(ctx, uintPtr(f.user.ID), 404)
				return err
			},
			kind:    ErrNotFound,
			message: "Planet not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.message, err.Error())
		})
	}

	n, err := f.store.PeopleFavorites.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = f.store.PlanetFavorites.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAddPlanetFavoriteTwiceConflicts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.fav.AddPlanetFavorite(ctx, uintPtr(f.user.ID), f.hoth.ID)
	require.NoError(t, err)
	_, err = f.fav.AddPlanetFavorite(ctx, uintPtr(f.user.ID), f.hoth.ID)
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "This planet is already in favorites.", err.Error())
}

func TestRemoveNeverFavorited(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.fav.RemovePeopleFavorite(ctx, uintPtr(f.user.ID), f.luke.ID)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Favorite not found.", err.Error())

	_, err = f.fav.RemovePeopleFavorite(ctx, nil, f.luke.ID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRemoveFavoriteOfDeletedPersonUsesPlaceholder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uid := uintPtr(f.user.ID)

	_, err := f.fav.AddPeopleFavorite(ctx, uid, f.luke.ID)
	require.NoError(t, err)
	require.NoError(t, f.store.People.Delete(ctx, f.luke))

	msg, err := f.fav.RemovePeopleFavorite(ctx, uid, f.luke.ID)
	require.NoError(t, err)
	assert.Equal(t, "Favorite person Unknown deleted successfully", msg)
}

func TestListFavoritesSkipsOrphans(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uid := uintPtr(f.user.ID)

	leia := &models.People{Name: "Leia"}
	require.NoError(t, f.store.People.Create(ctx, leia))

	_, err := f.fav.AddPeopleFavorite(ctx, uid, leia.ID)
	require.NoError(t, err)
	_, err = f.fav.AddPeopleFavorite(ctx, uid, f.luke.ID)
	require.NoError(t, err)
	_, err = f.fav.AddPlanetFavorite(ctx, uid, f.hoth.ID)
	require.NoError(t, err)

	require.NoError(t, f.store.People.Delete(ctx, leia))

	view, err := f.fav.ListFavoritesForUser(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, view.UserID)
	assert.Equal(t, []models.FavoriteItem{{Type: "people", ID: f.luke.ID, Name: "Luke"}}, view.PeopleFavorites)
	assert.Equal(t, []models.FavoriteItem{{Type: "planet", ID: f.hoth.ID, Name: "Hoth"}}, view.PlanetFavorites)
}

func TestListFavoritesOrderFollowsCreation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uid := uintPtr(f.user.ID)

	leia := &models.People{Name: "Leia"}
	require.NoError(t, f.store.People.Create(ctx, leia))

	// Leia has the higher id but is favorited first.
	_, err := f.fav.AddPeopleFavorite(ctx, uid, leia.ID)
	require.NoError(t, err)
	_, err = f.fav.AddPeopleFavorite(ctx, uid, f.luke.ID)
	require.NoError(t, err)

	view, err := f.fav.ListFavoritesForUser(ctx, uid)
	require.NoError(t, err)
	require.Len(t, view.PeopleFavorites, 2)
	assert.Equal(t, "Leia", view.PeopleFavorites[0].Name)
	assert.Equal(t, "Luke", view.PeopleFavorites[1].Name)
}

func TestListFavoritesErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.fav.ListFavoritesForUser(ctx, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.fav.ListFavoritesForUser(ctx, uintPtr(77))
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "User not found.", err.Error())
}

func TestListAllFavorites(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	other := &models.User{Name: "Facundo", Email: "facundo@example.com"}
	require.NoError(t, f.store.Users.Create(ctx, other))

	_, err := f.fav.AddPeopleFavorite(ctx, uintPtr(f.user.ID), f.luke.ID)
	require.NoError(t, err)
	_, err = f.fav.AddPeopleFavorite(ctx, uintPtr(other.ID), f.luke.ID)
	require.NoError(t, err)
	_, err = f.fav.AddPlanetFavorite(ctx, uintPtr(other.ID), f.hoth.ID)
	require.NoError(t, err)

	people, err := f.fav.ListAllPeopleFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, f.user.ID, people[0].UserID)
	assert.Equal(t, other.ID, people[1].UserID)

	planets, err := f.fav.ListAllPlanetFavorites(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 1)
}

func TestAppErrorIs(t *testing.T) {
	err := notFoundError("gone")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "not_found", KindNotFound.String())
}
