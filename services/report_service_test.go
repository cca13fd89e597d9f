package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/haiki1233/food-delivery-backend/entity"
	"github.com/haiki1233/food-delivery-backend/repository"
	"github.com/haiki1233/food-delivery-backend/services"
)

func seedOrder(t *testing.T, db *gorm.DB, userID, restID uint, total int64, status string) {
	t.Helper()
	o := entity.Order{
		UserID:       userID,
		RestaurantID: restID,
		TotalPrice:   total,
		Address:      "x",
		Status:       status,
	}
	require.NoError(t, db.Create(&o).Error)
}

func TestRevenueAggregatesCompletedOrders(t *testing.T) {
	db := setupDB(t)
	svc := services.NewReportService(repository.NewOrderRepository(db))

	user := seedUser(t, db, "alice", "alice@example.com")
	r1 := seedRestaurant(t, db, "R1")
	r2 := seedRestaurant(t, db, "R2")

	seedOrder(t, db, user.ID, r1.ID, 100, entity.StatusCompleted)
	seedOrder(t, db, user.ID, r1.ID, 200, entity.StatusCompleted)
	seedOrder(t, db, user.ID, r1.ID, 300, entity.StatusCompleted)
	// Not completed, must not count.
	seedOrder(t, db, user.ID, r1.ID, 9999, entity.StatusPending)
	seedOrder(t, db, user.ID, r1.ID, 9999, entity.StatusCancelled)
	// A smaller restaurant to exercise the ordering.
	seedOrder(t, db, user.ID, r2.ID, 50, entity.StatusCompleted)

	rows, err := svc.Revenue()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, r1.ID, rows[0].RestaurantID)
	assert.Equal(t, int64(3), rows[0].NumOrders)
	assert.Equal(t, int64(600), rows[0].TotalRevenue)
	assert.InDelta(t, 200.0, rows[0].AvgPrice, 0.001)

	assert.Equal(t, r2.ID, rows[1].RestaurantID)
	assert.Equal(t, int64(50), rows[1].TotalRevenue)
}

func TestRevenueEmptyWhenNothingCompleted(t *testing.T) {
	db := setupDB(t)
	svc := services.NewReportService(repository.NewOrderRepository(db))

	user := seedUser(t, db, "alice", "alice@example.com")
	r1 := seedRestaurant(t, db, "R1")
	seedOrder(t, db, user.ID, r1.ID, 100, entity.StatusPending)

	rows, err := svc.Revenue()
	require.NoError(t, err)
	assert.Empty(t, rows)
}
