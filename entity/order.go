package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `json:"user"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurant"`
	Restaurant   Restaurant `json:"-"`

	Items []OrderItem `json:"items"`

	// TotalPrice is computed server-side from snapshotted line prices and
	// never changes after creation.
	TotalPrice int64  `json:"totalPrice"`
	Address    string `json:"address"`
	Status     string `json:"status" gorm:"default:Pending"`
}
