package notifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haiki1233/food-delivery-backend/notifier"
)

func TestRenderOrderConfirmation(t *testing.T) {
	mail := notifier.RenderOrderConfirmation("alice", 42, 75000, "http://app.example.com/my-orders")

	assert.Equal(t, "Order Confirmation #42", mail.Subject)
	assert.Contains(t, mail.HTML, "#42")
	assert.Contains(t, mail.HTML, "75000")
	assert.Contains(t, mail.HTML, "alice")
	assert.Contains(t, mail.HTML, "http://app.example.com/my-orders")

	assert.NotContains(t, mail.Text, "<")
	assert.Contains(t, mail.Text, "alice")
}

func TestRenderWelcome(t *testing.T) {
	mail := notifier.RenderWelcome("bob", "http://app.example.com")

	assert.Equal(t, "Welcome to the Family!", mail.Subject)
	assert.Contains(t, mail.HTML, "bob")
	assert.NotContains(t, mail.Text, "<a")
}
