package http

import (
	"github.com/go-chi/chi/v5"
)

func InitRoutes(r *chi.Mux, c *Controller) *chi.Mux {
	r.Post("/api/orders", c.CreateOrder)
	r.Get("/api/orders/{orderID}", c.OrderStatus)
	r.Post("/api/payments/webhook", c.PaymentWebhook)
	r.Get("/api/dispense/next", c.DispensePoll)

	r.Get("/ping", c.Ping)

	return r
}
