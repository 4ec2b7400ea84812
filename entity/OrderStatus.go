package entity

// Order placement only ever produces PENDING; the remaining statuses are
// written by the fulfilment side.
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderCancelled = "CANCELLED"
	OrderDelivered = "DELIVERED"
)
