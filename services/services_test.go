package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/database"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/models"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/repository"
)

type fixture struct {
	db      *gorm.DB
	store   *repository.Store
	fav     *FavoriteService
	catalog *CatalogService
	user    *models.User
	luke    *models.People
	hoth    *models.Planet
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	ctx := context.Background()
	store := repository.NewStore(db)
	f := &fixture{
		db:      db,
		store:   store,
		fav:     NewFavoriteService(store),
		catalog: NewCatalogService(store),
		user:    &models.User{Name: "Layla", Email: "layla@example.com"},
		luke:    &models.People{Name: "Luke", Height: 172, Weight: 77, Gender: "male"},
		hoth:    &models.Planet{Name: "Hoth", Climate: "frozen", Terrain: "tundra"},
	}
	require.NoError(t, store.Users.Create(ctx, f.user))
	require.NoError(t, store.People.Create(ctx, f.luke))
	require.NoError(t, store.Planets.Create(ctx, f.hoth))
	return f
}

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func intPtr(v int) *int {
	return &v
}

// insertBeforeCreate runs stmt once, inside the caller's transaction, right
// before the next INSERT into table. It stands in for a concurrent request
// that wins the race between the duplicate check and the insert.
func insertBeforeCreate(t *testing.T, db *gorm.DB, table, stmt string, args ...interface{}) {
	t.Helper()
	fired := false
	err := db.Callback().Create().Before("gorm:create").Register("test:insert_before_"+table, func(tx *gorm.DB) {
		if fired || tx.Statement.Table != table {
			return
		}
		fired = true
		if err := tx.Session(&gorm.Session{NewDB: true}).Exec(stmt, args...).Error; err != nil {
			_ = tx.AddError(err)
		}
	})
	require.NoError(t, err)
}
