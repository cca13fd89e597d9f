package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/haiki1233/food-delivery-backend/entity"
	"github.com/haiki1233/food-delivery-backend/pkg/apperr"
	"github.com/haiki1233/food-delivery-backend/repository"
)

type FoodService struct {
	Repo     *repository.FoodRepository
	RestRepo *repository.RestaurantRepository
}

func NewFoodService(repo *repository.FoodRepository, restRepo *repository.RestaurantRepository) *FoodService {
	return &FoodService{Repo: repo, RestRepo: restRepo}
}

type CreateFoodReq struct {
	Name         string `json:"name" binding:"required"`
	Price        int64  `json:"price"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	RestaurantID uint   `json:"restaurantId"`
}

// Create persists a food after verifying its owning restaurant exists:
// no food may ever reference a missing restaurant. Only the fields of the
// request DTO cross into the record, nothing model-level is client-settable.
func (s *FoodService) Create(req *CreateFoodReq) (*entity.Food, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("food name is required")
	}
	if req.Price < 0 {
		return nil, apperr.Validation("price must not be negative")
	}
	if req.RestaurantID == 0 {
		return nil, apperr.Validation("restaurantId is required")
	}

	ok, err := s.RestRepo.Exists(req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("restaurant not found")
	}

	food := &entity.Food{
		Name:         name,
		Price:        req.Price,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		RestaurantID: req.RestaurantID,
	}
	if err := s.Repo.Create(food); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) Get(id uint) (*entity.Food, error) {
	food, err := s.Repo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("food not found")
		}
		return nil, err
	}
	return food, nil
}

func (s *FoodService) List(restID *uint) ([]entity.Food, error) {
	return s.Repo.List(restID)
}
