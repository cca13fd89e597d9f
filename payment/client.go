// Package payment talks to the hosted checkout authority. The authority
// owns the payment UI; this client only creates sessions and reads their
// status back during reconciliation.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	BaseURL   string
	SecretKey string
	HTTP      *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		BaseURL:   baseURL,
		SecretKey: secretKey,
		HTTP:      &http.Client{Timeout: 10 * time.Second},
	}
}

type CreateSessionParams struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`

	CustomerEmail string `json:"customerEmail"`

	// ClientReferenceID is the correlation token (the order id) the
	// authority echoes back on retrieval.
	ClientReferenceID string `json:"clientReferenceId"`

	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

type Session struct {
	ID                string `json:"id"`
	URL               string `json:"url"`
	PaymentStatus     string `json:"paymentStatus"`
	ClientReferenceID string `json:"clientReferenceId"`
	PaymentIntent     string `json:"paymentIntent"`
}

const PaymentStatusPaid = "paid"

func (c *Client) CreateSession(ctx context.Context, p CreateSessionParams) (*Session, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) RetrieveSession(ctx context.Context, sessionID string) (*Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/checkout/sessions/"+sessionID, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Session, error) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment authority: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment authority error (%d): %s", resp.StatusCode, string(body))
	}

	var s Session
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("failed to parse payment authority response: %w", err)
	}
	return &s, nil
}
