// Package payment is a thin wrapper over the Stripe PaymentIntents API. The
// payment provider itself is an external collaborator; this client only
// creates intents so the app's payment sheet can confirm them.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// MinimumAmountCents is Stripe's floor for a USD charge.
const MinimumAmountCents = 50

// Client calls the Stripe HTTP API.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Stripe client with default settings.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: "https://api.stripe.com",
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type paymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentIntent creates a USD PaymentIntent for the given amount in
// cents and returns its client secret.
func (c *Client) CreatePaymentIntent(ctx context.Context, amountCents int64) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", "usd")
	form.Set("automatic_payment_methods[enabled]", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build payment intent request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment intent request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read payment intent response: %w", err)
	}

	var decoded paymentIntentResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("failed to decode payment intent response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil && decoded.Error.Message != "" {
			return "", fmt.Errorf("stripe error (%d): %s", resp.StatusCode, decoded.Error.Message)
		}
		return "", fmt.Errorf("stripe error: status %d", resp.StatusCode)
	}
	if decoded.ClientSecret == "" {
		return "", fmt.Errorf("payment intent response missing client secret")
	}

	return decoded.ClientSecret, nil
}
