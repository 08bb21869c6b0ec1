package store

import (
	"context"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lucsky/cuid"

	"github.com/csakala/tableside/internal/models"
)

// PlaceOrder turns the current cart into an order. It validates the cart,
// contact details and table assignment; on success the cart is cleared in the
// same transition and a single "order received" notification is emitted. On
// failure nothing changes.
func (s *Store) PlaceOrder(draft models.OrderDraft) (models.Order, error) {
	s.mu.Lock()

	if len(s.cart) == 0 {
		s.mu.Unlock()
		return models.Order{}, ErrEmptyCart
	}
	if strings.TrimSpace(draft.CustomerName) == "" || strings.TrimSpace(draft.CustomerPhone) == "" {
		s.mu.Unlock()
		return models.Order{}, ErrMissingContact
	}
	if s.tableNumber <= 0 {
		s.mu.Unlock()
		return models.Order{}, ErrNoTableNumber
	}

	items := make([]models.CartItem, len(s.cart))
	copy(items, s.cart)

	maxPrep := 0
	for i := range items {
		if items[i].PrepTime > maxPrep {
			maxPrep = items[i].PrepTime
		}
	}

	deliveryType := draft.DeliveryType
	if deliveryType == "" {
		deliveryType = models.DeliveryTypeDineIn
	}
	priority := draft.Priority
	if priority == "" {
		priority = models.OrderPriorityNormal
	}

	order := models.Order{
		ID:            cuid.New(),
		TableNumber:   s.tableNumber,
		CustomerName:  draft.CustomerName,
		CustomerPhone: draft.CustomerPhone,
		CustomerEmail: draft.CustomerEmail,
		Items:         items,
		Total:         models.CartTotal(items),
		Status:        models.OrderStatusPending,
		Timestamp:     s.now(),
		EstimatedTime: maxPrep + 5,
		Notes:         draft.Notes,
		PaymentMethod: draft.PaymentMethod,
		PaymentStatus: models.PaymentStatusPending,
		DeliveryType:  deliveryType,
		Priority:      priority,
		RestaurantID:  s.restaurantID,
		ZoneID:        s.zoneID,
		Currency:      s.currency,
	}

	s.orders = append(s.orders, order)
	s.cart = nil
	s.addNotificationLocked(models.Notification{
		Type:     models.NotificationTypeOrder,
		Title:    "New Order Received",
		Message:  "Order #" + shortID(order.ID) + " from Table " + strconv.Itoa(order.TableNumber),
		OrderID:  order.ID,
		Priority: models.NotificationPriorityMedium,
	})
	s.analytics = s.computeAnalytics()
	s.mu.Unlock()

	s.emitOrderEvent(models.EventOrderPlaced, models.TopicOrderEvents, &order)
	log.Printf("Order %s placed for table %d, total %.2f %s, estimated %d min",
		order.ID, order.TableNumber, order.Total, order.Currency, order.EstimatedTime)
	return order, nil
}

// UpdateOrderStatus advances an order through the lifecycle. Transitions are
// checked against the successor table; illegal ones leave the order untouched.
// Unknown ids are no-ops.
func (s *Store) UpdateOrderStatus(id, status string) error {
	if _, ok := models.OrderStatusTransitions[status]; !ok {
		return ErrUnknownStatus
	}

	s.mu.Lock()
	idx := s.orderIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	current := s.orders[idx].Status
	if !models.IsLegalTransition(current, status) {
		s.mu.Unlock()
		log.Printf("Rejected order %s status change %s -> %s", id, current, status)
		return ErrIllegalTransition
	}

	s.orders[idx].Status = status
	order := s.orders[idx]
	s.addNotificationLocked(models.Notification{
		Type:     models.NotificationTypeOrder,
		Title:    "Order Status Updated",
		Message:  "Order #" + shortID(order.ID) + " is now " + status,
		OrderID:  order.ID,
		Priority: models.NotificationPriorityMedium,
	})
	s.analytics = s.computeAnalytics()
	s.mu.Unlock()

	s.emitOrderEvent(statusEventType(status), models.TopicOrderStatusEvents, &order)
	if status == models.OrderStatusCompleted {
		s.archiveOrder(&order)
	}
	return nil
}

// CancelOrder is irreversible and does not restore the cart.
func (s *Store) CancelOrder(id string) error {
	s.mu.Lock()
	idx := s.orderIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	if !models.IsLegalTransition(s.orders[idx].Status, models.OrderStatusCancelled) {
		s.mu.Unlock()
		return ErrOrderNotCancelable
	}

	s.orders[idx].Status = models.OrderStatusCancelled
	order := s.orders[idx]
	s.analytics = s.computeAnalytics()
	s.mu.Unlock()

	s.emitOrderEvent(models.EventOrderCancelled, models.TopicOrderCancelEvents, &order)
	log.Printf("Order %s cancelled", id)
	return nil
}

// Order looks up a single order by id.
func (s *Store) Order(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.orderIndexLocked(id)
	if idx < 0 {
		return models.Order{}, false
	}
	return s.orders[idx], true
}

// Orders returns the order list narrowed by filter and sorted by the given
// key: timestamp and total newest/largest first, status alphabetical.
func (s *Store) Orders(filter models.OrderFilter, sortBy string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, 0, len(s.orders))
	for i := range s.orders {
		if matchOrder(&s.orders[i], &filter) {
			out = append(out, s.orders[i])
		}
	}

	switch sortBy {
	case models.OrderSortTotal:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	case models.OrderSortStatus:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	}
	return out
}

func matchOrder(o *models.Order, f *models.OrderFilter) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.PaymentStatus != "" && o.PaymentStatus != f.PaymentStatus {
		return false
	}
	if !f.From.IsZero() && o.Timestamp.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && o.Timestamp.After(f.To) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(o.CustomerName), q) &&
			!strings.Contains(o.CustomerPhone, f.Search) &&
			!strings.Contains(strings.ToLower(o.ID), q) {
			return false
		}
	}
	return true
}

func (s *Store) orderIndexLocked(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) archiveOrder(order *models.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.archive.Create(ctx, order); err != nil {
		log.Printf("Failed to archive order %s: %v", order.ID, err)
	}
}

func statusEventType(status string) string {
	switch status {
	case models.OrderStatusConfirmed:
		return models.EventOrderConfirmed
	case models.OrderStatusPreparing:
		return models.EventOrderPreparing
	case models.OrderStatusReady:
		return models.EventOrderReady
	case models.OrderStatusDelivered:
		return models.EventOrderDelivered
	case models.OrderStatusCompleted:
		return models.EventOrderCompleted
	case models.OrderStatusCancelled:
		return models.EventOrderCancelled
	}
	return ""
}

func shortID(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}
