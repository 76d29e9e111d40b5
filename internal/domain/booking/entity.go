package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingTransactionRef = errors.New("missing transaction reference")
	ErrAmountMismatch        = errors.New("amount does not match price formula")
)

// Booking is immutable once constructed; there is no edit or cancel.
type Booking struct {
	id             uuid.UUID
	carID          uuid.UUID
	userID         uuid.UUID
	slot           TimeSlot
	totalMinutes   int64
	amount         Money
	driverRequired bool
	transactionRef string
	status         Status
	createdAt      time.Time
}

func NewBooking(
	carID, userID uuid.UUID,
	slot TimeSlot,
	amount Money,
	driverRequired bool,
	transactionRef string,
	createdAt time.Time,
) (*Booking, error) {
	if slot.IsZero() {
		return nil, ErrInvalidTimeSlot
	}
	if transactionRef == "" {
		return nil, ErrMissingTransactionRef
	}
	return &Booking{
		id:             uuid.New(),
		carID:          carID,
		userID:         userID,
		slot:           slot,
		totalMinutes:   slot.Minutes(),
		amount:         amount,
		driverRequired: driverRequired,
		transactionRef: transactionRef,
		status:         StatusConfirmed,
		createdAt:      createdAt,
	}, nil
}

func ReconstructBooking(
	id, carID, userID uuid.UUID,
	slot TimeSlot,
	totalMinutes int64,
	amount Money,
	driverRequired bool,
	transactionRef string,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		carID:          carID,
		userID:         userID,
		slot:           slot,
		totalMinutes:   totalMinutes,
		amount:         amount,
		driverRequired: driverRequired,
		transactionRef: transactionRef,
		status:         status,
		createdAt:      createdAt,
	}
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) CarID() uuid.UUID       { return b.carID }
func (b *Booking) UserID() uuid.UUID      { return b.userID }
func (b *Booking) Slot() TimeSlot         { return b.slot }
func (b *Booking) TotalMinutes() int64    { return b.totalMinutes }
func (b *Booking) Amount() Money          { return b.amount }
func (b *Booking) DriverRequired() bool   { return b.driverRequired }
func (b *Booking) TransactionRef() string { return b.transactionRef }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
