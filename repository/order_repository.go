package repository

import (
	"gorm.io/gorm"

	"github.com/haiki1233/food-delivery-backend/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder persists the order together with its snapshotted line items.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrdersForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard flips status only when the current value matches,
// so concurrent or repeated calls cannot clobber a later state.
func (r *OrderRepository) UpdateStatusGuard(orderID uint, from, to string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// RestaurantRevenue is one group of the completed-order revenue report.
type RestaurantRevenue struct {
	RestaurantID uint    `json:"restaurant"`
	NumOrders    int64   `json:"numOrders"`
	TotalRevenue int64   `json:"totalRevenue"`
	AvgPrice     float64 `json:"avgPrice"`
}

// RevenueByRestaurant groups Completed orders by the restaurant reference
// column and sorts by summed revenue, highest first.
func (r *OrderRepository) RevenueByRestaurant() ([]RestaurantRevenue, error) {
	var out []RestaurantRevenue
	err := r.DB.Model(&entity.Order{}).
		Select("restaurant_id, COUNT(*) AS num_orders, SUM(total_price) AS total_revenue, AVG(total_price) AS avg_price").
		Where("status = ?", entity.StatusCompleted).
		Group("restaurant_id").
		Order("total_revenue DESC").
		Scan(&out).Error
	return out, err
}
