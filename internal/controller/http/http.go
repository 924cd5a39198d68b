package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"vendbridge/internal/model"
)

type Service interface {
	CreateOrder(ctx context.Context, input model.CreateOrderDTO) (*model.CreateOrderResponse, *model.APIError)
	HandleNotification(ctx context.Context, n model.Notification)
	NextDispense() (*model.DispenseEntry, bool)
	OrderStatus(orderID string) (*model.OrderStatusResponse, *model.APIError)
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		lg:      lg,
		service: s,
	}
}

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CreateOrderDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, model.ErrInvalidOrderMessage, http.StatusBadRequest)
		return
	}

	response, apiErr := c.service.CreateOrder(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, response, http.StatusOK)
}

// PaymentWebhook always acknowledges with 200: a provider keeps
// retrying anything else, and reconciliation outcome is not the
// provider's concern.
func (c *Controller) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	notification, err := readBody[model.Notification](r)
	if err != nil {
		c.lg.Warnf("malformed webhook body: %v", err)
	}

	// some topics carry the reference as query parameters instead
	if notification.ChargeRef() == "" {
		query := r.URL.Query()
		if v := query.Get("data.id"); v != "" {
			notification.PaymentID = model.FlexID(v)
		} else if v := query.Get("id"); v != "" {
			notification.PaymentID = model.FlexID(v)
		}
		if notification.Topic == "" {
			notification.Topic = query.Get("topic")
		}
	}

	c.service.HandleNotification(r.Context(), notification)

	writeJSON(w, c.lg, map[string]string{"status": "ok"}, http.StatusOK)
}

// DispensePoll hands one approved order to the hardware controller, or
// an explicit empty marker. Never blocks, never errors.
func (c *Controller) DispensePoll(w http.ResponseWriter, r *http.Request) {
	entry, ok := c.service.NextDispense()
	if !ok {
		writeJSON(w, c.lg, map[string]string{"status": "empty"}, http.StatusOK)
		return
	}

	writeJSON(w, c.lg, entry, http.StatusOK)
}

func (c *Controller) OrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	response, apiErr := c.service.OrderStatus(orderID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, response, http.StatusOK)
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
