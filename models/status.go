package models

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

func ValidRoomStatus(s RoomStatus) bool {
	return s == RoomAvailable || s == RoomOccupied || s == RoomMaintenance
}

type BookingStatus string

const (
	BookingAwaitingPayment      BookingStatus = "awaiting_payment"
	BookingAwaitingVerification BookingStatus = "awaiting_verification"
	BookingConfirmed            BookingStatus = "confirmed"
	BookingCancelled            BookingStatus = "cancelled"
	BookingCompleted            BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending_verification"
	PaymentVerified PaymentStatus = "verified"
	PaymentRejected PaymentStatus = "rejected"
)

// validNext covers every legal booking transition, including the ones only
// the payment/verification flow may drive (awaiting_payment ->
// awaiting_verification on submission, -> confirmed on verification,
// -> awaiting_payment again on rejection).
var validNext = map[BookingStatus]map[BookingStatus]bool{
	BookingAwaitingPayment: {
		BookingAwaitingVerification: true,
		BookingCancelled:            true,
	},
	BookingAwaitingVerification: {
		BookingConfirmed:       true,
		BookingAwaitingPayment: true,
		BookingCancelled:       true,
		BookingCompleted:       true,
	},
	BookingConfirmed: {
		BookingCompleted: true,
	},
	BookingCancelled: {},
	BookingCompleted: {},
}

func CanTransition(from, to BookingStatus) bool {
	return validNext[from][to]
}

// Terminal reports whether no further transition exists.
func (s BookingStatus) Terminal() bool {
	return len(validNext[s]) == 0
}

// Active reports whether the booking still holds its room.
func (s BookingStatus) Active() bool {
	switch s {
	case BookingAwaitingPayment, BookingAwaitingVerification, BookingConfirmed:
		return true
	}
	return false
}
