package services

import (
	"github.com/haiki1233/food-delivery-backend/entity"
	"github.com/haiki1233/food-delivery-backend/pkg/apperr"
)

// ValidateTransition enforces the order status machine:
//   - target must be a known status
//   - Completed is terminal, nothing may change it
//   - an order out for delivery cannot be cancelled
//
// Everything else is deliberately permissive.
func ValidateTransition(current, target string) error {
	if !entity.IsValidOrderStatus(target) {
		return apperr.Validation("invalid status %q", target)
	}
	if current == entity.StatusCompleted {
		return apperr.InvalidTransition("order is already completed")
	}
	if current == entity.StatusDelivering && target == entity.StatusCancelled {
		return apperr.InvalidTransition("cannot cancel while delivering")
	}
	return nil
}
