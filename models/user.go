package models

import "time"

// User is created out-of-band (seeder or direct database edits); no endpoint
// mutates it.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(120);not null"`
	Email     string    `json:"email" gorm:"type:varchar(120);uniqueIndex;not null"`
	CreatedAt time.Time `json:"-"`
}
