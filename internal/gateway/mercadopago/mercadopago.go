package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"vendbridge/internal/model"
	"vendbridge/pgk/retryablehttp"
)

// Client talks to the Mercado Pago Point integration API. It is
// stateless; every call crosses the payment network and is bounded by
// the configured timeout.
type Client struct {
	address    string
	token      string
	terminalID string
	timeout    time.Duration

	retryClient *retryablehttp.RetryableClient
}

func New(address, token, terminalID string, timeout time.Duration) *Client {
	return &Client{
		address:     address,
		token:       token,
		terminalID:  terminalID,
		timeout:     timeout,
		retryClient: retryablehttp.NewRetryableClient(retryablehttp.RetryConfig{}),
	}
}

type paymentIntentRequest struct {
	Amount         int64                `json:"amount"`
	Description    string               `json:"description"`
	AdditionalInfo intentAdditionalInfo `json:"additional_info"`
	Payment        *intentPayment       `json:"payment,omitempty"`
}

type intentAdditionalInfo struct {
	ExternalReference string `json:"external_reference"`
	PrintOnTerminal   bool   `json:"print_on_terminal"`
}

type intentPayment struct {
	Type string `json:"type"`
}

type paymentIntentResponse struct {
	ID model.FlexID `json:"id"`
}

type paymentResponse struct {
	ID                model.FlexID `json:"id"`
	Status            string       `json:"status"`
	ExternalReference string       `json:"external_reference"`
}

// CreateCharge opens a payment intent on the terminal and returns the
// provider-side payment id the webhook will later reference. The
// terminal holds one intent at a time; callers serialize access.
func (c *Client) CreateCharge(ctx context.Context, amount decimal.Decimal, description, orderID string, method model.PaymentMethod) (string, error) {
	body := paymentIntentRequest{
		Amount:      amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		Description: description,
		AdditionalInfo: intentAdditionalInfo{
			ExternalReference: orderID,
		},
	}
	switch method {
	case model.PaymentMethodDebit:
		body.Payment = &intentPayment{Type: "debit_card"}
	case model.PaymentMethodCredit:
		body.Payment = &intentPayment{Type: "credit_card"}
	}

	url := fmt.Sprintf("%s/point/integration-api/devices/%s/payment-intents", c.address, c.terminalID)

	var intent paymentIntentResponse
	status, err := c.doJSON(ctx, http.MethodPost, url, body, &intent)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrChargeCreateFailed, err)
	}

	switch status {
	case http.StatusCreated, http.StatusOK:
	case http.StatusConflict:
		return "", model.ErrConflictingCharge
	default:
		return "", fmt.Errorf("%w: status %d", model.ErrChargeCreateFailed, status)
	}

	if string(intent.ID) == "" {
		return "", fmt.Errorf("%w: no intent id in response", model.ErrChargeCreateFailed)
	}

	// the intent id and the payment id the provider notifies about can
	// differ; resolve the real one when the ledger already knows it
	chargeID := string(intent.ID)
	if charge, err := c.QueryChargeStatus(ctx, chargeID); err == nil && charge.ChargeID != "" {
		chargeID = charge.ChargeID
	}

	return chargeID, nil
}

// CancelPendingCharge clears whatever intent the terminal is holding.
// Best-effort: the caller logs failures and moves on.
func (c *Client) CancelPendingCharge(ctx context.Context) error {
	url := fmt.Sprintf("%s/point/integration-api/devices/%s/payment-intents/cancel", c.address, c.terminalID)

	status, err := c.doJSON(ctx, http.MethodPost, url, nil, nil)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest && status != http.StatusNotFound {
		return fmt.Errorf("cancel pending charge: status %d", status)
	}

	return nil
}

// QueryChargeStatus reads the charge from the provider's own ledger.
// This is the only status source reconciliation trusts.
func (c *Client) QueryChargeStatus(ctx context.Context, chargeID string) (model.Charge, error) {
	url := fmt.Sprintf("%s/v1/payments/%s", c.address, chargeID)

	var payment paymentResponse
	status, err := c.doJSON(ctx, http.MethodGet, url, nil, &payment)
	if err != nil {
		if status == http.StatusTooManyRequests {
			return model.Charge{}, model.ErrRateLimited
		}
		return model.Charge{}, fmt.Errorf("%w: %v", model.ErrChargeQueryFailed, err)
	}

	if status == http.StatusNotFound {
		return model.Charge{}, model.ErrChargeNotFound
	}
	if status != http.StatusOK {
		return model.Charge{}, fmt.Errorf("%w: status %d", model.ErrChargeQueryFailed, status)
	}

	return model.Charge{
		ChargeID:          string(payment.ID),
		Status:            mapStatus(payment.Status),
		ExternalReference: payment.ExternalReference,
	}, nil
}

func mapStatus(providerStatus string) model.ChargeStatus {
	switch providerStatus {
	case "approved", "accredited":
		return model.ChargeStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return model.ChargeStatusRejected
	case "pending", "in_process", "authorized":
		return model.ChargeStatusPending
	default:
		return model.ChargeStatusUnknown
	}
}

func (c *Client) doJSON(ctx context.Context, method, url string, body, out any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.retryClient.Do(ctx, req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
			return resp.StatusCode, err
		}
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}

	return resp.StatusCode, nil
}
