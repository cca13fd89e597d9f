package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/haiki1233/food-delivery-backend/pkg/resp"
	"github.com/haiki1233/food-delivery-backend/services"
)

type FoodController struct {
	Svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{Svc: svc}
}

// GET /foods and GET /restaurants/:id/foods
func (fc *FoodController) List(c *gin.Context) {
	var restID *uint
	if s := c.Param("id"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			resp.BadRequest(c, "invalid restaurant id")
			return
		}
		v := uint(id)
		restID = &v
	}

	foods, err := fc.Svc.List(restID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"results": len(foods), "foods": foods})
}

// POST /restaurants/:id/foods
// The owning restaurant comes from the URL when the body omits it.
func (fc *FoodController) Create(c *gin.Context) {
	var req services.CreateFoodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.RestaurantID == 0 {
		if s := c.Param("id"); s != "" {
			id, err := strconv.Atoi(s)
			if err != nil {
				resp.BadRequest(c, "invalid restaurant id")
				return
			}
			req.RestaurantID = uint(id)
		}
	}

	food, err := fc.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"food": food})
}
