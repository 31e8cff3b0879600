package models

import (
	"strconv"
	"strings"
	"time"
)

// UserPeopleFavorite marks a person as favorite for a user. The pair is
// unique; the synthetic ID only exists for row handling.
type UserPeopleFavorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:uniq_user_people_favorite;index"`
	PeopleID  uint      `json:"people_id" gorm:"not null;uniqueIndex:uniq_user_people_favorite;index"`
	CreatedAt time.Time `json:"-"`
}

func (UserPeopleFavorite) TableName() string {
	return "user_people_favorites"
}

// UserPlanetFavorite marks a planet as favorite for a user.
type UserPlanetFavorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:uniq_user_planet_favorite;index"`
	PlanetID  uint      `json:"planet_id" gorm:"not null;uniqueIndex:uniq_user_planet_favorite;index"`
	CreatedAt time.Time `json:"-"`
}

func (UserPlanetFavorite) TableName() string {
	return "user_planet_favorites"
}

// FavoriteRequest is the body of POST/DELETE /favorite/{kind}/{id}.
// UserID is nil when the field is absent or null.
type FavoriteRequest struct {
	UserID *UserRef `json:"user_id"`
}

// UserRef is a user_id as clients send it: a JSON number or a numeric
// string. Any other value decodes without error but with Valid false, since
// it cannot name a user.
type UserRef struct {
	ID    uint
	Valid bool
}

func (r *UserRef) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if s, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(s)
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	r.ID, r.Valid = uint(id), err == nil
	return nil
}

// FavoriteItem is one entry of the aggregated favorites view.
type FavoriteItem struct {
	Type string `json:"type"`
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type FavoritesView struct {
	UserID          uint           `json:"user_id"`
	PeopleFavorites []FavoriteItem `json:"people_favorites"`
	PlanetFavorites []FavoriteItem `json:"planet_favorites"`
}
