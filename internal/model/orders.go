package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusCharging  OrderStatus = "charging"
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusAbandoned OrderStatus = "abandoned"
)

type PaymentMethod string

const (
	PaymentMethodDebit  PaymentMethod = "debit"
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodPix    PaymentMethod = "pix"
)

type LineItem struct {
	ProductRef int             `json:"product_ref"`
	Name       string          `json:"name,omitempty"`
	Quantity   int             `json:"qty"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

type Order struct {
	OrderID       string          `json:"order_id"`
	Items         []LineItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        OrderStatus     `json:"status"`
	ChargeID      string          `json:"-"`
	CreatedAt     time.Time       `json:"-"`
}

type CreateOrderDTO struct {
	OrderID       string          `json:"order_id,omitempty"`
	Items         []LineItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	ChargeID string `json:"charge_id"`
	Status   string `json:"status"`
}

type OrderStatusResponse struct {
	OrderID string      `json:"order_id"`
	Status  OrderStatus `json:"status"`
}
