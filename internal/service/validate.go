package service

import (
	"errors"

	"vendbridge/internal/model"
)

const maxQuantityPerItem = 20

func validateCreateOrder(input model.CreateOrderDTO) error {
	if len(input.Items) == 0 {
		return errors.New("order has no items")
	}

	for _, item := range input.Items {
		if item.Quantity <= 0 || item.Quantity > maxQuantityPerItem {
			return errors.New("invalid item quantity")
		}
		if item.ProductRef < 0 {
			return errors.New("invalid product reference")
		}
		if item.ProductRef == 0 && item.Name == "" {
			return errors.New("item needs a product id or a name")
		}
	}

	if !input.Total.IsPositive() {
		return errors.New("total must be positive")
	}
	if !input.Total.Equal(input.Total.Round(2)) {
		return errors.New("total has more than two decimal places")
	}

	switch input.PaymentMethod {
	case "", model.PaymentMethodDebit, model.PaymentMethodCredit, model.PaymentMethodPix:
	default:
		return errors.New("unknown payment method")
	}

	return nil
}
