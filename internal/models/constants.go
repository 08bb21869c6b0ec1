package models

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"

	DeliveryTypeDineIn   = "dine-in"
	DeliveryTypeTakeaway = "takeaway"
	DeliveryTypeDelivery = "delivery"

	PaymentMethodCash        = "cash"
	PaymentMethodMobileMoney = "mobile-money"
	PaymentMethodCard        = "card"

	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"

	OrderPriorityNormal = "normal"
	OrderPriorityHigh   = "high"
	OrderPriorityUrgent = "urgent"

	SpiceLevelMild    = "mild"
	SpiceLevelMedium  = "medium"
	SpiceLevelHot     = "hot"
	SpiceLevelVeryHot = "very-hot"

	NotificationTypeOrder     = "order"
	NotificationTypePayment   = "payment"
	NotificationTypeSystem    = "system"
	NotificationTypePromotion = "promotion"
	NotificationTypeReview    = "review"

	NotificationPriorityLow    = "low"
	NotificationPriorityMedium = "medium"
	NotificationPriorityHigh   = "high"
	NotificationPriorityUrgent = "urgent"
)

// spiceRank orders spice levels for range filtering; unknown levels rank lowest.
var spiceRank = map[string]int{
	SpiceLevelMild:    1,
	SpiceLevelMedium:  2,
	SpiceLevelHot:     3,
	SpiceLevelVeryHot: 4,
}

func SpiceRank(level string) int { return spiceRank[level] }

// OrderStatusTransitions is the set of legal successor statuses. Cancellation
// is only reachable from pending; completed and cancelled are terminal.
var OrderStatusTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing},
	OrderStatusPreparing: {OrderStatusReady},
	OrderStatusReady:     {OrderStatusDelivered},
	OrderStatusDelivered: {OrderStatusCompleted},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

func IsLegalTransition(from, to string) bool {
	for _, next := range OrderStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
