package mercadopago

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendbridge/internal/model"
)

func newTestClient(serverURL string) *Client {
	return New(serverURL, "test-token", "POS_1", 2*time.Second)
}

func TestCreateCharge_Success(t *testing.T) {
	var gotIntent map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/point/integration-api/devices/POS_1/payment-intents":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotIntent))

			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id": "intent-1"}`)
		case "/v1/payments/intent-1":
			fmt.Fprint(w, `{"id": 555, "status": "pending", "external_reference": "O1"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	chargeID, err := client.CreateCharge(context.Background(),
		decimal.RequireFromString("10.50"), "brahma x2", "O1", model.PaymentMethodDebit)

	require.NoError(t, err)
	// resolved to the real payment id, not the intent id
	assert.Equal(t, "555", chargeID)
	assert.Equal(t, float64(1050), gotIntent["amount"])
	assert.Equal(t, "brahma x2", gotIntent["description"])
}

func TestCreateCharge_RoundsAmountToCents(t *testing.T) {
	var gotIntent map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/point/integration-api/devices/POS_1/payment-intents" {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotIntent))
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id": "intent-1"}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateCharge(context.Background(),
		decimal.RequireFromString("10.005"), "brahma x1", "O1", model.PaymentMethodDebit)

	require.NoError(t, err)
	// never truncated down to 1000
	assert.Equal(t, float64(1001), gotIntent["amount"])
}

func TestCreateCharge_PaymentResolutionFails_KeepsIntentID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/point/integration-api/devices/POS_1/payment-intents" {
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id": "intent-1"}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	chargeID, err := client.CreateCharge(context.Background(),
		decimal.NewFromInt(5), "agua x1", "O1", model.PaymentMethodPix)

	require.NoError(t, err)
	assert.Equal(t, "intent-1", chargeID)
}

func TestCreateCharge_TerminalBusy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateCharge(context.Background(),
		decimal.NewFromInt(5), "x", "O1", model.PaymentMethodDebit)

	assert.ErrorIs(t, err, model.ErrConflictingCharge)
}

func TestCreateCharge_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateCharge(context.Background(),
		decimal.NewFromInt(5), "x", "O1", model.PaymentMethodDebit)

	assert.ErrorIs(t, err, model.ErrChargeCreateFailed)
}

func TestCancelPendingCharge_Success(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, "/point/integration-api/devices/POS_1/payment-intents/cancel", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.CancelPendingCharge(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCancelPendingCharge_NothingToCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// provider answers 404 when no intent is open
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	assert.NoError(t, client.CancelPendingCharge(context.Background()))
}

func TestQueryChargeStatus_Mapping(t *testing.T) {
	tests := []struct {
		provider string
		want     model.ChargeStatus
	}{
		{"approved", model.ChargeStatusApproved},
		{"rejected", model.ChargeStatusRejected},
		{"cancelled", model.ChargeStatusRejected},
		{"pending", model.ChargeStatusPending},
		{"in_process", model.ChargeStatusPending},
		{"something_new", model.ChargeStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/payments/555", r.URL.Path)
				fmt.Fprintf(w, `{"id": 555, "status": %q, "external_reference": "O1"}`, tt.provider)
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			charge, err := client.QueryChargeStatus(context.Background(), "555")
			require.NoError(t, err)
			assert.Equal(t, tt.want, charge.Status)
			assert.Equal(t, "555", charge.ChargeID)
			assert.Equal(t, "O1", charge.ExternalReference)
		})
	}
}

func TestQueryChargeStatus_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.QueryChargeStatus(context.Background(), "555")
	assert.ErrorIs(t, err, model.ErrChargeNotFound)
}
