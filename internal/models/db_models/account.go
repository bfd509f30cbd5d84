package db_models

import "github.com/lib/pq"

type Account struct {
	BaseModel
	Name         string             `gorm:"not null" json:"name"`
	Email        string             `gorm:"unique;not null" json:"email"`
	Phone        string             `json:"phone"`
	PasswordHash string             `json:"-"`
	Preferences  AccountPreferences `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
}

type AccountPreferences struct {
	TravelType           string         `gorm:"default:Adventure" json:"travelType"`
	Budget               string         `gorm:"default:$1000-3000" json:"budget"`
	Accommodation        string         `gorm:"default:Hotels" json:"accommodation"`
	Interests            pq.StringArray `gorm:"type:text[]" json:"interests"`
	FavoriteDestinations pq.StringArray `gorm:"type:text[]" json:"favoriteDestinations"`
}

func DefaultPreferences() AccountPreferences {
	return AccountPreferences{
		TravelType:           "Adventure",
		Budget:               "$1000-3000",
		Accommodation:        "Hotels",
		Interests:            pq.StringArray{},
		FavoriteDestinations: pq.StringArray{},
	}
}
