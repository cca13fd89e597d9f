package services_test

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/haiki1233/food-delivery-backend/entity"
)

// setupDB opens an isolated in-memory database per test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Food{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("failed to auto-migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, email string) entity.User {
	t.Helper()
	u := entity.User{Username: username, Email: email, Password: "x", Role: "customer"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) entity.Restaurant {
	t.Helper()
	r := entity.Restaurant{
		Name:    name,
		Cuisine: "Rice",
		Location: entity.Location{
			Type: "Point", Lng: 106.660172, Lat: 10.762622,
			Address: "1 Test St",
		},
	}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return r
}

func seedFood(t *testing.T, db *gorm.DB, restID uint, name string, price int64) entity.Food {
	t.Helper()
	f := entity.Food{Name: name, Price: price, RestaurantID: restID}
	if err := db.Create(&f).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}
	return f
}
