package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/haiki1233/food-delivery-backend/controllers"
	"github.com/haiki1233/food-delivery-backend/entity"
	"github.com/haiki1233/food-delivery-backend/repository"
	"github.com/haiki1233/food-delivery-backend/services"
)

func setupFoodRouter(t *testing.T) (*gin.Engine, *gorm.DB, entity.Restaurant) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Restaurant{}, &entity.Food{}))

	rest := entity.Restaurant{Name: "R1", Cuisine: "Rice"}
	require.NoError(t, db.Create(&rest).Error)

	fc := controllers.NewFoodController(services.NewFoodService(
		repository.NewFoodRepository(db),
		repository.NewRestaurantRepository(db),
	))

	r := gin.New()
	r.POST("/restaurants/:id/foods", fc.Create)
	return r, db, rest
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Clients may only supply the request fields; model internals like the
// primary key, timestamps and the sold-out flag stay server-owned.
func TestCreateFoodIgnoresModelFields(t *testing.T) {
	r, db, rest := setupFoodRouter(t)

	body := `{
		"name": "Pho",
		"price": 30000,
		"ID": 99,
		"CreatedAt": "2031-01-01T00:00:00Z",
		"DeletedAt": "2031-01-01T00:00:00Z",
		"isSoldOut": true
	}`
	w := postJSON(r, fmt.Sprintf("/restaurants/%d/foods", rest.ID), body)
	require.Equal(t, http.StatusCreated, w.Code)

	var food entity.Food
	require.NoError(t, db.First(&food).Error)
	assert.NotEqual(t, uint(99), food.ID)
	assert.False(t, food.IsSoldOut)
	assert.False(t, food.CreatedAt.Year() == 2031)
	assert.Equal(t, "Pho", food.Name)
	assert.Equal(t, int64(30000), food.Price)
	assert.Equal(t, rest.ID, food.RestaurantID)
}

func TestCreateFoodAssignsRestaurantFromRoute(t *testing.T) {
	r, db, rest := setupFoodRouter(t)

	w := postJSON(r, fmt.Sprintf("/restaurants/%d/foods", rest.ID), `{"name":"Com tam","price":25000}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var food entity.Food
	require.NoError(t, db.First(&food).Error)
	assert.Equal(t, rest.ID, food.RestaurantID)
}

func TestCreateFoodRequiresName(t *testing.T) {
	r, _, rest := setupFoodRouter(t)

	w := postJSON(r, fmt.Sprintf("/restaurants/%d/foods", rest.ID), `{"price":25000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateFoodUnknownRestaurant(t *testing.T) {
	r, _, _ := setupFoodRouter(t)

	w := postJSON(r, "/restaurants/999/foods", `{"name":"Pho","price":25000}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
