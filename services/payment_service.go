package services

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/haiki1233/food-delivery-backend/entity"
	"github.com/haiki1233/food-delivery-backend/payment"
	"github.com/haiki1233/food-delivery-backend/pkg/apperr"
	"github.com/haiki1233/food-delivery-backend/repository"
)

// CheckoutClient is the payment authority boundary.
type CheckoutClient interface {
	CreateSession(ctx context.Context, p payment.CreateSessionParams) (*payment.Session, error)
	RetrieveSession(ctx context.Context, sessionID string) (*payment.Session, error)
}

type PaymentService struct {
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository
	Client   CheckoutClient

	Currency      string
	PublicBaseURL string
}

func NewPaymentService(
	repo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
	client CheckoutClient,
	currency, publicBaseURL string,
) *PaymentService {
	return &PaymentService{
		Repo: repo, RestRepo: restRepo, UserRepo: userRepo, Client: client,
		Currency: currency, PublicBaseURL: publicBaseURL,
	}
}

// CreateCheckout opens a session with the payment authority for the
// order's stored total and returns the hosted checkout URL. The order id
// rides along as the correlation token.
func (s *PaymentService) CreateCheckout(ctx context.Context, orderID uint) (string, error) {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", apperr.NotFound("order not found")
		}
		return "", err
	}

	rest, err := s.RestRepo.FindByID(order.RestaurantID)
	if err != nil {
		return "", err
	}
	user, err := s.UserRepo.FindByID(order.UserID)
	if err != nil {
		return "", err
	}

	sess, err := s.Client.CreateSession(ctx, payment.CreateSessionParams{
		Amount:            order.TotalPrice,
		Currency:          s.Currency,
		Description:       fmt.Sprintf("Food Delivery order #%d — payment for %s", order.ID, rest.Name),
		CustomerEmail:     user.Email,
		ClientReferenceID: strconv.FormatUint(uint64(order.ID), 10),
		SuccessURL:        s.PublicBaseURL + "/orders/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:         s.PublicBaseURL + "/orders/payment-cancel",
	})
	if err != nil {
		return "", apperr.Upstream("create checkout session", err)
	}
	return sess.URL, nil
}

// ReconcileResult reports the outcome of a success-callback verification.
type ReconcileResult struct {
	Paid          bool
	OrderID       uint
	TransactionID string
}

// Reconcile verifies a session with the payment authority and, when paid,
// confirms the referenced order. Idempotent: reconciling an order that is
// already Confirmed is a no-op, not an error. The guarded update also
// refuses to resurrect orders past Pending (e.g. Cancelled ones).
func (s *PaymentService) Reconcile(ctx context.Context, sessionID string) (*ReconcileResult, error) {
	if sessionID == "" {
		return nil, apperr.Validation("missing session id")
	}

	sess, err := s.Client.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, apperr.Upstream("retrieve checkout session", err)
	}

	if sess.PaymentStatus != payment.PaymentStatusPaid {
		return &ReconcileResult{Paid: false}, nil
	}

	id, err := strconv.ParseUint(sess.ClientReferenceID, 10, 64)
	if err != nil {
		return nil, apperr.Validation("malformed order reference %q", sess.ClientReferenceID)
	}
	orderID := uint(id)

	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	if _, err := s.Repo.UpdateStatusGuard(orderID, entity.StatusPending, entity.StatusConfirmed); err != nil {
		return nil, err
	}

	return &ReconcileResult{
		Paid:          true,
		OrderID:       orderID,
		TransactionID: sess.PaymentIntent,
	}, nil
}
