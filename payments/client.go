package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the payment processor. Amounts are in minor units.
type Client struct {
	BaseURL string
	Client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type LineItem struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	UnitAmount  int64  `json:"unitAmount"`
	Description string `json:"description,omitempty"`
}

type chargeRequest struct {
	Amount    int64      `json:"amount"`
	Currency  string     `json:"currency"`
	Reference string     `json:"reference"`
	Items     []LineItem `json:"items"`
}

type chargeResponse struct {
	Token string `json:"token"`
}

// CreateCharge hands the amount and line items to the processor and returns
// the confirmation token used to track the payment on the booking.
func (pc *Client) CreateCharge(ctx context.Context, amount int64, currency, reference string, items []LineItem) (string, error) {
	body, err := json.Marshal(chargeRequest{
		Amount:    amount,
		Currency:  currency,
		Reference: reference,
		Items:     items,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1/charges", pc.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := pc.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("payment processor returned status %d", resp.StatusCode)
	}

	var result chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return result.Token, nil
}
