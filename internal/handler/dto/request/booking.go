package request

import (
	"time"

	"carhive/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CarID          uuid.UUID `json:"car_id" binding:"required"`
	From           time.Time `json:"from" binding:"required"`
	To             time.Time `json:"to" binding:"required"`
	DriverRequired bool      `json:"driver_required"`
}

func (r CreateBookingRequest) ToDomain() (booking.TimeSlot, error) {
	return booking.NewTimeSlot(r.From, r.To)
}
