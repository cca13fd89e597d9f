package notifier

import (
	"fmt"
	"regexp"
)

// Mail templates are pure functions from parameters to rendered content,
// decoupled from whatever transport delivers them.

type Mail struct {
	Subject string
	HTML    string
	Text    string
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

func RenderWelcome(username, homeURL string) Mail {
	html := fmt.Sprintf(`
		<h1>Welcome to Food App, %s!</h1>
		<p>We are glad you joined.</p>
		<p><a href="%s">Click here</a> to discover what's cooking.</p>`,
		username, homeURL)
	return Mail{
		Subject: "Welcome to the Family!",
		HTML:    html,
		Text:    tagPattern.ReplaceAllString(html, ""),
	}
}

func RenderOrderConfirmation(username string, orderID uint, total int64, orderURL string) Mail {
	html := fmt.Sprintf(`
		<h1>Order placed!</h1>
		<p>Thanks %s, your order <b>#%d</b> is being prepared.</p>
		<h3>Total: %d</h3>
		<p>Track it <a href="%s">here</a>. The rider will be on the way soon!</p>`,
		username, orderID, total, orderURL)
	return Mail{
		Subject: fmt.Sprintf("Order Confirmation #%d", orderID),
		HTML:    html,
		Text:    tagPattern.ReplaceAllString(html, ""),
	}
}
