package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"vendbridge/internal/model"
	"vendbridge/internal/repository/addressmap"
	"vendbridge/internal/repository/memory"
)

// settledRetention bounds how long terminal order outcomes stay
// visible to the catalog status endpoint.
const settledRetention = 1 * time.Hour

type ChargeGateway interface {
	CreateCharge(ctx context.Context, amount decimal.Decimal, description, orderID string, method model.PaymentMethod) (string, error)
	CancelPendingCharge(ctx context.Context) error
	QueryChargeStatus(ctx context.Context, chargeID string) (model.Charge, error)
}

type Service struct {
	store   *memory.Store
	gateway ChargeGateway
	addrs   *addressmap.Map
	lg      *zap.SugaredLogger

	pendingTTL time.Duration

	// terminal holds one open charge; cancel-then-create must not
	// interleave between two intakes
	terminalMu sync.Mutex

	pool *workerPool
}

func New(store *memory.Store, gateway ChargeGateway, addrs *addressmap.Map, pendingTTL time.Duration, lg *zap.SugaredLogger) *Service {
	return &Service{
		store:      store,
		gateway:    gateway,
		addrs:      addrs,
		lg:         lg,
		pendingTTL: pendingTTL,
		pool:       newWorkerPool(),
	}
}

// CreateOrder validates the intake, opens a charge on the terminal and
// parks the order in the pending table. It returns immediately;
// approval arrives later through the webhook or the status updater.
func (s *Service) CreateOrder(ctx context.Context, input model.CreateOrderDTO) (*model.CreateOrderResponse, *model.APIError) {
	if err := validateCreateOrder(input); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	orderID := input.OrderID
	if orderID == "" {
		orderID = generateOrderID()
	}

	method := input.PaymentMethod
	if method == "" {
		method = model.PaymentMethodDebit
	}

	s.terminalMu.Lock()
	defer s.terminalMu.Unlock()

	if s.store.HasPending() {
		return nil, &model.APIError{
			Code:    http.StatusConflict,
			Message: model.ErrConflictingChargeMessage,
		}
	}

	// clear whatever stale intent the terminal may still hold;
	// failures are logged, never fatal
	if err := s.gateway.CancelPendingCharge(ctx); err != nil {
		s.lg.Errorf("stale charge cleanup failed: %v", err)
	}

	chargeID, err := s.gateway.CreateCharge(ctx, input.Total, describeItems(input.Items), orderID, method)
	if err != nil {
		if errors.Is(err, model.ErrConflictingCharge) {
			s.lg.Warnf("terminal busy at provider, rejecting order %s", orderID)
			return nil, &model.APIError{
				Code:    http.StatusConflict,
				Message: model.ErrConflictingChargeMessage,
			}
		}
		s.lg.Errorf("charge creation for order %s failed: %v", orderID, err)
		return nil, &model.APIError{
			Code:    http.StatusBadGateway,
			Message: model.ErrChargeCreateFailedMessage,
		}
	}

	err = s.store.PutPending(model.Order{
		OrderID:       orderID,
		Items:         input.Items,
		Total:         input.Total,
		PaymentMethod: method,
		ChargeID:      chargeID,
		CreatedAt:     time.Now(),
	})
	if err != nil {
		// the charge is open but the order cannot be tracked; release
		// the terminal so the next intake is not stuck behind it
		if cancelErr := s.gateway.CancelPendingCharge(ctx); cancelErr != nil {
			s.lg.Errorf("stale charge cleanup failed: %v", cancelErr)
		}
		return nil, &model.APIError{
			Code:    http.StatusConflict,
			Message: err.Error(),
		}
	}

	s.lg.Infof("order %s charging, charge_id=%s total=%s", orderID, chargeID, input.Total)

	return &model.CreateOrderResponse{
		OrderID:  orderID,
		ChargeID: chargeID,
		Status:   "created",
	}, nil
}

// HandleNotification reconciles one payment notification. The envelope
// supplies only the lookup key; the verdict comes from querying the
// provider's ledger. Unmatched or non-approved notifications change
// nothing and surface no error.
func (s *Service) HandleNotification(ctx context.Context, n model.Notification) {
	ref := n.ChargeRef()
	if ref == "" {
		s.lg.Warnf("notification without a charge reference, topic=%s", n.Topic)
		return
	}

	charge, err := s.gateway.QueryChargeStatus(ctx, ref)
	if err != nil {
		s.lg.Errorf("charge %s status query failed: %v", ref, err)
		return
	}

	s.reconcile(ctx, ref, charge)
}

// reconcile advances at most one pending order for the given charge.
// The check-and-remove on the store is the idempotency point: a
// duplicate notification finds no match and is a no-op.
func (s *Service) reconcile(ctx context.Context, ref string, charge model.Charge) {
	switch charge.Status {
	case model.ChargeStatusApproved, model.ChargeStatusRejected:
	default:
		s.lg.Infof("charge %s status %s, nothing to reconcile", ref, charge.Status)
		return
	}

	order, ok := s.store.CheckAndRemove(charge.ExternalReference, charge.ChargeID)
	if !ok && ref != charge.ChargeID {
		order, ok = s.store.CheckAndRemove("", ref)
	}
	if !ok {
		s.lg.Infof("notification for charge %s unmatched, discarding", ref)
		return
	}

	if charge.Status == model.ChargeStatusRejected {
		s.store.MarkSettled(order.OrderID, model.OrderStatusRejected, time.Now())
		s.lg.Infof("order %s rejected by provider", order.OrderID)
		return
	}

	entry := model.DispenseEntry{
		OrderID: order.OrderID,
		Items:   make([]model.DispenseItem, 0, len(order.Items)),
		Total:   order.Total,
	}
	for _, item := range order.Items {
		entry.Items = append(entry.Items, model.DispenseItem{
			ActuatorAddress: s.addrs.Resolve(item.ProductRef, item.Name),
			Quantity:        item.Quantity,
		})
	}

	s.store.Enqueue(entry)
	s.store.MarkSettled(order.OrderID, model.OrderStatusApproved, time.Now())

	s.lg.Infof("order %s approved and queued for dispense", order.OrderID)

	s.cancelStaleCharge(ctx)
}

// cancelStaleCharge releases the terminal after an order has settled or
// been abandoned. It skips cancelling when another order already holds
// the terminal: that order's freshly created charge must stay open.
func (s *Service) cancelStaleCharge(ctx context.Context) {
	s.terminalMu.Lock()
	defer s.terminalMu.Unlock()

	if s.store.HasPending() {
		return
	}

	if err := s.gateway.CancelPendingCharge(ctx); err != nil {
		s.lg.Errorf("stale charge cleanup failed: %v", err)
	}
}

// NextDispense hands out the oldest approved order, or reports that
// nothing is ready. It never blocks and never errors at the hardware.
func (s *Service) NextDispense() (*model.DispenseEntry, bool) {
	entry, ok := s.store.Dequeue()
	if !ok {
		return nil, false
	}

	s.lg.Infof("dispense entry for order %s handed to controller", entry.OrderID)

	return &entry, true
}

func (s *Service) OrderStatus(orderID string) (*model.OrderStatusResponse, *model.APIError) {
	status, ok := s.store.Status(orderID)
	if !ok {
		return nil, &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrOrderNotFoundMessage,
		}
	}

	return &model.OrderStatusResponse{
		OrderID: orderID,
		Status:  status,
	}, nil
}

// sweep evicts orders stuck in charging past the TTL and drops stale
// settled statuses. A late approval for an evicted order is unmatched
// by construction.
func (s *Service) sweep(ctx context.Context) {
	now := time.Now()

	evicted := s.store.ExpirePending(s.pendingTTL, now)
	for _, order := range evicted {
		s.store.MarkSettled(order.OrderID, model.OrderStatusAbandoned, now)
		s.lg.Warnf("order %s abandoned after %s without confirmation", order.OrderID, s.pendingTTL)
	}
	if len(evicted) > 0 {
		s.cancelStaleCharge(ctx)
	}

	s.store.ExpireSettled(settledRetention, now)
}

func describeItems(items []model.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name := item.Name
		if name == "" {
			name = fmt.Sprintf("item %d", item.ProductRef)
		}
		parts = append(parts, fmt.Sprintf("%s x%d", name, item.Quantity))
	}

	return strings.Join(parts, ", ")
}

func generateOrderID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
