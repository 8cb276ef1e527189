package statemachine

import (
	"errors"

	"superapp-api/models"
)

// orderTransitions is the authoritative order state machine. Cancellation
// is reachable from every non-terminal state; delivered and cancelled
// are terminal.
var orderTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderPending:        {models.OrderConfirmed, models.OrderCancelled},
	models.OrderConfirmed:      {models.OrderPreparing, models.OrderCancelled},
	models.OrderPreparing:      {models.OrderOutForDelivery, models.OrderCancelled},
	models.OrderOutForDelivery: {models.OrderDelivered, models.OrderCancelled},
	models.OrderDelivered:      {},
	models.OrderCancelled:      {},
}

// ValidOrderTransitionsFrom returns all valid next states from a given state.
func ValidOrderTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	return orderTransitions[status]
}

// IsOrderStatus reports whether s is a known order status.
func IsOrderStatus(s models.OrderStatus) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionOrder checks whether an order may move from one state to
// another, returning a descriptive error when it may not.
func CanTransitionOrder(from, to models.OrderStatus) error {
	if !IsOrderStatus(to) {
		return errors.New("unknown order status '" + string(to) + "'")
	}
	for _, next := range orderTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid transitions from " + string(from) + " are: " +
			describeOrderNext(from),
	)
}

func describeOrderNext(status models.OrderStatus) string {
	nexts := orderTransitions[status]
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
