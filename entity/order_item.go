package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"-"`
	Order   Order `json:"-"`

	FoodID uint `json:"food"`
	Food   Food `json:"-"`

	Quantity int `json:"quantity" gorm:"default:1"`

	// Price is the food's unit price at order-creation time.
	Price int64 `json:"price"`
}
