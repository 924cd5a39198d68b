package memory

import (
	"sync"
	"time"

	"vendbridge/internal/model"
)

type settledOrder struct {
	status    model.OrderStatus
	settledAt time.Time
}

// Store owns all reconciliation state: the pending order table, the
// dispense queue and the settled-order statuses. One mutex guards the
// whole working set; callers must never make network calls through it.
type Store struct {
	mu       sync.Mutex
	pending  map[string]model.Order // keyed by order id
	byCharge map[string]string      // charge id -> order id
	order    []string               // pending order ids, insertion order
	queue    []model.DispenseEntry
	settled  map[string]settledOrder
}

func New() *Store {
	return &Store{
		pending:  make(map[string]model.Order),
		byCharge: make(map[string]string),
		settled:  make(map[string]settledOrder),
	}
}

// PutPending stores an order in charging state. Order and charge ids
// must both be unused.
func (s *Store) PutPending(o model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[o.OrderID]; ok {
		return model.ErrDuplicateOrder
	}
	if o.ChargeID != "" {
		if _, ok := s.byCharge[o.ChargeID]; ok {
			return model.ErrDuplicateCharge
		}
	}

	o.Status = model.OrderStatusCharging
	s.pending[o.OrderID] = o
	if o.ChargeID != "" {
		s.byCharge[o.ChargeID] = o.OrderID
	}
	s.order = append(s.order, o.OrderID)

	return nil
}

func (s *Store) HasPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending) > 0
}

// PendingSnapshot returns pending orders in insertion order.
func (s *Store) PendingSnapshot() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.Order, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.pending[id])
	}

	return result
}

// CheckAndRemove atomically removes the pending order matched by order
// reference first, charge reference second. Exactly one concurrent
// caller can win for a given order; the rest see ok=false. It never
// guesses when neither reference matches.
func (s *Store) CheckAndRemove(orderRef, chargeRef string) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := ""
	if orderRef != "" {
		if _, ok := s.pending[orderRef]; ok {
			id = orderRef
		}
	}
	if id == "" && chargeRef != "" {
		id = s.byCharge[chargeRef]
	}
	if id == "" {
		return model.Order{}, false
	}

	o := s.pending[id]
	s.removeLocked(id)

	return o, true
}

// ExpirePending evicts orders that have been charging longer than ttl
// and returns them so the caller can cancel their charges.
func (s *Store) ExpirePending(ttl time.Duration, now time.Time) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var evicted []model.Order
	for _, id := range append([]string(nil), s.order...) {
		o := s.pending[id]
		if now.Sub(o.CreatedAt) > ttl {
			s.removeLocked(id)
			evicted = append(evicted, o)
		}
	}

	return evicted
}

func (s *Store) removeLocked(id string) {
	o := s.pending[id]
	delete(s.pending, id)
	if o.ChargeID != "" {
		delete(s.byCharge, o.ChargeID)
	}
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) Enqueue(entry model.DispenseEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue = append(s.queue, entry)
}

// Dequeue pops the oldest entry. Pop-on-read is the delivery contract:
// an entry handed out is gone, so duplicates are impossible.
func (s *Store) Dequeue() (model.DispenseEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return model.DispenseEntry{}, false
	}

	entry := s.queue[0]
	s.queue = s.queue[1:]

	return entry, true
}

func (s *Store) QueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.queue)
}

func (s *Store) MarkSettled(orderID string, status model.OrderStatus, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settled[orderID] = settledOrder{status: status, settledAt: now}
}

// Status reports the lifecycle state of an order as seen by the store.
func (s *Store) Status(orderID string) (model.OrderStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[orderID]; ok {
		return model.OrderStatusCharging, true
	}
	if so, ok := s.settled[orderID]; ok {
		return so.status, true
	}

	return "", false
}

func (s *Store) ExpireSettled(ttl time.Duration, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, so := range s.settled {
		if now.Sub(so.settledAt) > ttl {
			delete(s.settled, id)
		}
	}
}
