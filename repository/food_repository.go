package repository

import (
	"gorm.io/gorm"

	"github.com/haiki1233/food-delivery-backend/entity"
)

type FoodRepository struct {
	DB *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{DB: db}
}

func (r *FoodRepository) Create(f *entity.Food) error {
	return r.DB.Create(f).Error
}

// GetBasics loads only what order pricing needs: id, price, owning restaurant.
func (r *FoodRepository) GetBasics(id uint) (entity.Food, error) {
	var f entity.Food
	err := r.DB.Select("id, name, price, restaurant_id").First(&f, id).Error
	return f, err
}

func (r *FoodRepository) FindByID(id uint) (*entity.Food, error) {
	var f entity.Food
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns all foods, or only one restaurant's menu when restID is set.
func (r *FoodRepository) List(restID *uint) ([]entity.Food, error) {
	db := r.DB.Model(&entity.Food{})
	if restID != nil {
		db = db.Where("restaurant_id = ?", *restID)
	}
	var foods []entity.Food
	err := db.Find(&foods).Error
	return foods, err
}
