package model

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

type ChargeStatus string

const (
	ChargeStatusPending  ChargeStatus = "pending"
	ChargeStatusApproved ChargeStatus = "approved"
	ChargeStatusRejected ChargeStatus = "rejected"
	ChargeStatusUnknown  ChargeStatus = "unknown"
)

type Charge struct {
	ChargeID          string       `json:"charge_id"`
	Status            ChargeStatus `json:"status"`
	ExternalReference string       `json:"external_reference,omitempty"`
}

type DispenseItem struct {
	ActuatorAddress int `json:"actuator_address"`
	Quantity        int `json:"qty"`
}

type DispenseEntry struct {
	OrderID string          `json:"order_id"`
	Items   []DispenseItem  `json:"items"`
	Total   decimal.Decimal `json:"total"`
}

// FlexID accepts a JSON string or number. Webhook envelopes carry the
// payment reference as either, depending on the topic.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexID(n.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	// resource may come as a URL ending in the payment id
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	*f = FlexID(s)

	return nil
}

// Notification is the webhook envelope. Providers deliver the payment
// reference under several shapes (data.id, resource, plain id). The
// embedded status is never trusted; only the reference is used.
type Notification struct {
	ID       FlexID `json:"id"`
	Resource FlexID `json:"resource"`
	Topic    string `json:"topic"`
	Action   string `json:"action"`
	Data     struct {
		ID FlexID `json:"id"`
	} `json:"data"`
	PaymentID FlexID `json:"payment_id"`
}

// ChargeRef picks the charge reference out of whichever field the
// provider used, preferring the most specific one.
func (n Notification) ChargeRef() string {
	for _, v := range []FlexID{n.Data.ID, n.PaymentID, n.Resource, n.ID} {
		if v != "" {
			return string(v)
		}
	}
	return ""
}
