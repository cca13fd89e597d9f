package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/haiki1233/food-delivery-backend/entity"
	"github.com/haiki1233/food-delivery-backend/pkg/listquery"
	"github.com/haiki1233/food-delivery-backend/pkg/resp"
	"github.com/haiki1233/food-delivery-backend/repository"
	"github.com/haiki1233/food-delivery-backend/services"
)

type RestaurantController struct {
	Svc *services.RestaurantService
}

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: svc}
}

// GET /restaurants
// Filters: ?cuisine=Rice&ratingAverage[gte]=4, sort: ?sort=-ratingAverage,name,
// projection: ?fields=name,cuisine, pagination: ?page=2&limit=5.
func (rc *RestaurantController) List(c *gin.Context) {
	q := listquery.Parse(c.Request.URL.Query(), repository.ListFields)

	rests, source, err := rc.Svc.List(c.Request.Context(), q)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"source":      source,
		"results":     len(rests),
		"restaurants": rests,
	})
}

// POST /restaurants
func (rc *RestaurantController) Create(c *gin.Context) {
	var rest entity.Restaurant
	if err := c.ShouldBindJSON(&rest); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := rc.Svc.Create(c.Request.Context(), &rest); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"restaurant": rest})
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, err := rc.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": rest})
}

// PATCH /restaurants/:id/open
func (rc *RestaurantController) SetOpen(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		IsOpen *bool `json:"isOpen" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := rc.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	rest.IsOpen = *req.IsOpen
	if err := rc.Svc.Update(c.Request.Context(), rest); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": rest})
}

// GET /restaurants-within/:distance/center/:latlng/unit/:unit
// Example: /restaurants-within/5/center/10.762622,106.660172/unit/km
func (rc *RestaurantController) Within(c *gin.Context) {
	distance, err := strconv.ParseFloat(c.Param("distance"), 64)
	if err != nil {
		resp.BadRequest(c, "invalid distance")
		return
	}

	parts := strings.Split(c.Param("latlng"), ",")
	if len(parts) != 2 {
		resp.BadRequest(c, "please provide latitude and longitude as lat,lng")
		return
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		resp.BadRequest(c, "please provide latitude and longitude as lat,lng")
		return
	}

	rests, err := rc.Svc.Within(lat, lng, distance, c.Param("unit"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"results": len(rests), "restaurants": rests})
}
