package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage     = "internal server error"
	ErrInvalidOrderMessage       = "invalid order"
	ErrChargeCreateFailedMessage = "failed to create charge"
	ErrConflictingChargeMessage  = "terminal busy with another pending charge"
	ErrOrderNotFoundMessage      = "order not found"
)

var (
	ErrChargeCreateFailed = errors.New(ErrChargeCreateFailedMessage)
	ErrConflictingCharge  = errors.New(ErrConflictingChargeMessage)

	ErrDuplicateOrder    = errors.New("order id already pending")
	ErrDuplicateCharge   = errors.New("charge id already pending")
	ErrChargeNotFound    = errors.New("charge not found")
	ErrChargeQueryFailed = errors.New("charge status query failed")
	ErrRateLimited       = errors.New("provider rate limit hit")
)
