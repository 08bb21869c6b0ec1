package store

import (
	"encoding/json"
	"log"

	"github.com/csakala/tableside/internal/models"
)

// emitOrderEvent serializes a lifecycle event and hands it to the configured
// destination. Runs after the state commit; sink errors are logged and dropped
// so a slow or dead sink never blocks an order.
func (s *Store) emitOrderEvent(eventType, topic string, order *models.Order) {
	msg, err := serializeOrderEvent(eventType, order)
	if err != nil {
		log.Printf("Error serializing event: %v", err)
		return
	}
	if err := s.out.WriteMessage(topic, msg); err != nil {
		log.Printf("Failed to write message: %v", err)
	}
}

func serializeOrderEvent(eventType string, order *models.Order) ([]byte, error) {
	type BaseEvent struct {
		Timestamp    int64  `json:"timestamp"`
		EventType    string `json:"eventType"`
		RestaurantID string `json:"restaurantId,omitempty"`
	}

	itemIDs := make([]string, len(order.Items))
	for i := range order.Items {
		itemIDs[i] = order.Items[i].ID
	}

	event := struct {
		BaseEvent
		OrderID       string   `json:"orderId"`
		TableNumber   int      `json:"tableNumber"`
		Items         []string `json:"item_ids"`
		Total         float64  `json:"total"`
		Currency      string   `json:"currency,omitempty"`
		Status        string   `json:"status"`
		EstimatedTime int      `json:"estimated_time,omitempty"`
	}{
		BaseEvent: BaseEvent{
			Timestamp:    order.Timestamp.Unix(),
			EventType:    eventType,
			RestaurantID: order.RestaurantID,
		},
		OrderID:       order.ID,
		TableNumber:   order.TableNumber,
		Items:         itemIDs,
		Total:         order.Total,
		Currency:      order.Currency,
		Status:        order.Status,
		EstimatedTime: order.EstimatedTime,
	}

	return json.Marshal(event)
}
