package models

// People is a catalog entry for a Star Wars character.
type People struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"type:varchar(120);not null"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Gender string `json:"gender" gorm:"type:varchar(40)"`
}

func (People) TableName() string {
	return "people"
}

// CreatePeopleRequest is the body of POST /people
type CreatePeopleRequest struct {
	Name   *string `json:"name"`
	Height *int    `json:"height"`
	Weight *int    `json:"weight"`
	Gender *string `json:"gender"`
}
