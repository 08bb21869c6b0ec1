package models

const (
	EventOrderPlaced    = "OrderPlaced"
	EventOrderConfirmed = "OrderConfirmed"
	EventOrderPreparing = "OrderPreparing"
	EventOrderReady     = "OrderReady"
	EventOrderDelivered = "OrderDelivered"
	EventOrderCompleted = "OrderCompleted"
	EventOrderCancelled = "OrderCancelled"

	TopicOrderEvents        = "order_events"
	TopicOrderStatusEvents  = "order_status_events"
	TopicOrderCancelEvents  = "order_cancellation_events"
)

// EventMessage is a serialized lifecycle event bound for an output topic.
type EventMessage struct {
	Topic   string
	Message []byte
}
