package models

type Planet struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"type:varchar(120);not null"`
	Climate   string  `json:"climate" gorm:"type:varchar(120)"`
	Terrain   string  `json:"terrain" gorm:"type:varchar(120)"`
	Resources *string `json:"resources" gorm:"type:varchar(250)"`
}

func (Planet) TableName() string {
	return "planets"
}

// CreatePlanetRequest is the body of POST /planets
type CreatePlanetRequest struct {
	Name      *string `json:"name"`
	Climate   *string `json:"climate"`
	Terrain   *string `json:"terrain"`
	Resources *string `json:"resources"`
}
