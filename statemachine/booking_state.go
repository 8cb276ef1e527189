package statemachine

import (
	"errors"

	"superapp-api/models"
)

// bookingTransitions mirrors the order machine for service bookings.
var bookingTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:    {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed:  {models.BookingInProgress, models.BookingCancelled},
	models.BookingInProgress: {models.BookingCompleted, models.BookingCancelled},
	models.BookingCompleted:  {},
	models.BookingCancelled:  {},
}

// ValidBookingTransitionsFrom returns all valid next states from a given state.
func ValidBookingTransitionsFrom(status models.BookingStatus) []models.BookingStatus {
	return bookingTransitions[status]
}

// IsBookingStatus reports whether s is a known booking status.
func IsBookingStatus(s models.BookingStatus) bool {
	_, ok := bookingTransitions[s]
	return ok
}

// CanTransitionBooking checks whether a booking may move from one state
// to another.
func CanTransitionBooking(from, to models.BookingStatus) error {
	if !IsBookingStatus(to) {
		return errors.New("unknown booking status '" + string(to) + "'")
	}
	for _, next := range bookingTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid transitions from " + string(from) + " are: " +
			describeBookingNext(from),
	)
}

func describeBookingNext(status models.BookingStatus) string {
	nexts := bookingTransitions[status]
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
