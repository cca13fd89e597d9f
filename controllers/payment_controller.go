package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/haiki1233/food-delivery-backend/pkg/apperr"
	"github.com/haiki1233/food-delivery-backend/pkg/resp"
	"github.com/haiki1233/food-delivery-backend/services"
)

type PaymentController struct {
	Svc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

// GET /orders/:id/checkout
func (pc *PaymentController) Checkout(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	url, err := pc.Svc.CreateCheckout(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"sessionUrl": url})
}

// GET /orders/payment-success?session_id=...
// Reached by browser redirect from the payment authority, so it renders
// HTML rather than the JSON envelope.
func (pc *PaymentController) Success(c *gin.Context) {
	result, err := pc.Svc.Reconcile(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		status := http.StatusInternalServerError
		if apperr.KindOf(err) == apperr.KindValidation {
			status = http.StatusBadRequest
		}
		c.String(status, "payment verification failed: %s", err.Error())
		return
	}

	if !result.Paid {
		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte(`<h1 style="color: red;">Payment not completed.</h1>`))
		return
	}

	page := fmt.Sprintf(`
		<html>
			<head><title>Payment successful</title></head>
			<body style="text-align:center; padding:50px; font-family: Arial;">
				<h1 style="color: green;">Payment successful!</h1>
				<p>Thanks for your order. Order <b>#%d</b> is confirmed.</p>
				<p>Transaction: %s</p>
			</body>
		</html>`, result.OrderID, result.TransactionID)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// GET /orders/payment-cancel — read-only acknowledgment, no state change.
func (pc *PaymentController) Cancel(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
		<html>
			<body style="text-align:center; padding: 50px; font-family: Arial;">
				<h1 style="color: orange;">Payment cancelled</h1>
				<p>Your order is still pending.</p>
			</body>
		</html>`))
}
