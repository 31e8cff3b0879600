package migrations

import (
	"fmt"

	"gorm.io/gorm"
)

// DedupeFavorites removes duplicate (user, item) rows from the favorites
// tables, keeping the oldest row of each pair. Databases created before the
// composite unique indexes existed may hold such duplicates, and the index
// cannot be built while they are present.
func DedupeFavorites(db *gorm.DB) (int64, error) {
	var removed int64
	for _, t := range []struct{ table, column string }{
		{"user_people_favorites", "people_id"},
		{"user_planet_favorites", "planet_id"},
	} {
		// Fresh database, AutoMigrate will create it with the index.
		if !db.Migrator().HasTable(t.table) {
			continue
		}
		res := db.Exec(fmt.Sprintf(`
			DELETE FROM %[1]s
			WHERE id NOT IN (
				SELECT MIN(id) FROM %[1]s GROUP BY user_id, %[2]s
			)
		`, t.table, t.column))
		if res.Error != nil {
			return removed, fmt.Errorf("dedupe %s: %w", t.table, res.Error)
		}
		removed += res.RowsAffected
	}
	return removed, nil
}
