package entity

import (
	"gorm.io/gorm"
)

// Food prices are minor currency units. Food.Price is the authoritative
// amount for billing; orders snapshot it at creation time.
type Food struct {
	gorm.Model
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	IsSoldOut bool `json:"isSoldOut" gorm:"default:false"`
}
