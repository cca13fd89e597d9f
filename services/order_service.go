package services

import (
	"context"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/haiki1233/food-delivery-backend/entity"
	"github.com/haiki1233/food-delivery-backend/notifier"
	"github.com/haiki1233/food-delivery-backend/pkg/apperr"
	"github.com/haiki1233/food-delivery-backend/repository"
)

// Notifier pushes an event to everyone subscribed to a room. Best-effort,
// no delivery guarantee.
type Notifier interface {
	EmitToRoom(roomID uint, event string, payload any)
}

// Mailer delivers rendered mail out-of-band.
type Mailer interface {
	Send(ctx context.Context, to string, mail notifier.Mail) error
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	FoodRepo *repository.FoodRepository
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository

	// Side-effect ports. Either may be nil; order creation never depends
	// on them succeeding.
	Notify Notifier
	Mail   Mailer

	FrontendBaseURL string
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	foodRepo *repository.FoodRepository,
	restRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, FoodRepo: foodRepo, RestRepo: restRepo, UserRepo: userRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	FoodID   uint `json:"foodId" binding:"required"`
	Quantity int  `json:"quantity"`
}

type CreateOrderReq struct {
	RestaurantID uint          `json:"restaurantId" binding:"required"`
	Items        []OrderItemIn `json:"items" binding:"required,min=1"`
	Address      string        `json:"address" binding:"required"`
}

// NewOrderEvent is the payload pushed to the restaurant's room.
type NewOrderEvent struct {
	Message    string             `json:"message"`
	OrderID    uint               `json:"orderId"`
	TotalPrice int64              `json:"totalPrice"`
	Items      []entity.OrderItem `json:"items"`
}

// Create validates the cart, snapshots prices and persists the order.
// Lines are resolved sequentially on purpose: a failure on line N must
// short-circuit before anything is committed, so nothing partial is ever
// persisted.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperr.Validation("items is required")
	}
	if strings.TrimSpace(req.Address) == "" {
		return nil, apperr.Validation("address is required")
	}

	ok, err := s.RestRepo.Exists(req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("restaurant not found")
	}

	var totalPrice int64
	items := make([]entity.OrderItem, 0, len(req.Items))

	for _, it := range req.Items {
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		if qty < 1 {
			return nil, apperr.Validation("quantity must be at least 1")
		}

		food, err := s.FoodRepo.GetBasics(it.FoodID)
		if err != nil {
			return nil, apperr.NotFound("food %d not found", it.FoodID)
		}

		// Integrity check: the food must belong to the restaurant being
		// ordered from, never trusted from client input.
		if food.RestaurantID != req.RestaurantID {
			return nil, apperr.Integrity("food %q does not belong to this restaurant", food.Name)
		}

		// Charge the stored price at resolution time (price snapshot).
		totalPrice += food.Price * int64(qty)
		items = append(items, entity.OrderItem{
			FoodID:   food.ID,
			Quantity: qty,
			Price:    food.Price,
		})
	}

	order := &entity.Order{
		UserID:       userID,
		RestaurantID: req.RestaurantID,
		Items:        items,
		TotalPrice:   totalPrice,
		Address:      req.Address,
		Status:       entity.StatusPending,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateOrder(tx, order)
	})
	if err != nil {
		return nil, err
	}

	s.emitNewOrder(order)
	go s.sendConfirmation(userID, order)

	return order, nil
}

func (s *OrderService) emitNewOrder(order *entity.Order) {
	if s.Notify == nil {
		return
	}
	s.Notify.EmitToRoom(order.RestaurantID, "new_order", NewOrderEvent{
		Message:    "New order received",
		OrderID:    order.ID,
		TotalPrice: order.TotalPrice,
		Items:      order.Items,
	})
}

// sendConfirmation runs detached from the request; failures are logged,
// never surfaced to the caller.
func (s *OrderService) sendConfirmation(userID uint, order *entity.Order) {
	if s.Mail == nil {
		return
	}
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		log.Printf("order %d: lookup user for confirmation mail: %v", order.ID, err)
		return
	}
	mail := notifier.RenderOrderConfirmation(user.Username, order.ID, order.TotalPrice, s.FrontendBaseURL+"/my-orders")
	if err := s.Mail.Send(context.Background(), user.Email, mail); err != nil {
		log.Printf("order %d: confirmation mail: %v", order.ID, err)
	}
}

// UpdateStatus applies the state machine and persists the new status.
// The write is guarded on the status that was read, so a concurrent
// transition (say, to Completed) cannot be clobbered by a stale request.
func (s *OrderService) UpdateStatus(orderID uint, target string) (*entity.Order, error) {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	if err := ValidateTransition(order.Status, target); err != nil {
		return nil, err
	}

	n, err := s.Repo.UpdateStatusGuard(order.ID, order.Status, target)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, apperr.InvalidTransition("order status changed, retry")
	}
	order.Status = target
	return order, nil
}

// ListForUser returns the caller's orders, newest first.
func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListOrdersForUser(userID)
}
