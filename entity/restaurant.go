package entity

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Cuisine values accepted for a restaurant.
var Cuisines = []string{"Rice", "Noodles", "Drinks", "FastFood", "Other"}

func IsValidCuisine(c string) bool {
	for _, v := range Cuisines {
		if v == c {
			return true
		}
	}
	return false
}

// Location is a GeoJSON-style point stored inline on the restaurant row.
// Coordinates are [longitude, latitude], in that order.
type Location struct {
	Type        string  `json:"type" gorm:"default:Point"`
	Lng         float64 `json:"-"`
	Lat         float64 `json:"-"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
}

type locationJSON struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
	Address     string     `json:"address"`
	Description string     `json:"description"`
}

func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(locationJSON{
		Type:        l.Type,
		Coordinates: [2]float64{l.Lng, l.Lat},
		Address:     l.Address,
		Description: l.Description,
	})
}

func (l *Location) UnmarshalJSON(data []byte) error {
	var in locationJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	l.Type = in.Type
	if l.Type == "" {
		l.Type = "Point"
	}
	l.Lng = in.Coordinates[0]
	l.Lat = in.Coordinates[1]
	l.Address = in.Address
	l.Description = in.Description
	return nil
}

type Restaurant struct {
	gorm.Model
	Name          string   `json:"name" gorm:"uniqueIndex"`
	Location      Location `json:"location" gorm:"embedded;embeddedPrefix:location_"`
	Cuisine       string   `json:"cuisine"`
	RatingAverage float64  `json:"ratingAverage" gorm:"default:4.5"`
	IsOpen        bool     `json:"isOpen" gorm:"default:true"`
	ImageURL      string   `json:"imageUrl"`

	Foods  []Food  `json:"-"`
	Orders []Order `json:"-"`
}
