package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haiki1233/food-delivery-backend/entity"
	"github.com/haiki1233/food-delivery-backend/pkg/apperr"
	"github.com/haiki1233/food-delivery-backend/services"
)

func TestCompletedIsTerminal(t *testing.T) {
	for _, target := range entity.OrderStatuses {
		err := services.ValidateTransition(entity.StatusCompleted, target)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidTransition),
			"Completed -> %s should be rejected", target)
	}
}

func TestCannotCancelWhileDelivering(t *testing.T) {
	err := services.ValidateTransition(entity.StatusDelivering, entity.StatusCancelled)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidTransition))
}

func TestDeliveringMayStillProgress(t *testing.T) {
	assert.NoError(t, services.ValidateTransition(entity.StatusDelivering, entity.StatusCompleted))
	assert.NoError(t, services.ValidateTransition(entity.StatusDelivering, entity.StatusCooking))
}

func TestPermissiveTransitions(t *testing.T) {
	cases := []struct{ from, to string }{
		{entity.StatusPending, entity.StatusConfirmed},
		{entity.StatusPending, entity.StatusCancelled},
		{entity.StatusConfirmed, entity.StatusCooking},
		{entity.StatusCooking, entity.StatusDelivering},
		{entity.StatusCancelled, entity.StatusPending},
		{entity.StatusCooking, entity.StatusPending},
	}
	for _, tc := range cases {
		assert.NoError(t, services.ValidateTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestUnknownTargetStatus(t *testing.T) {
	err := services.ValidateTransition(entity.StatusPending, "Shipped")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
