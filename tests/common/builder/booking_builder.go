//go:build unit || e2e

package builder

import (
	"time"

	reqdto "carhive/internal/handler/dto/request"
	"carhive/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CarID          uuid.UUID
	UserID         uuid.UUID
	From           time.Time
	To             time.Time
	DriverRequired bool
	RentPerHour    int64
}

func NewBookingBuilder() *BookingBuilder {
	from := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		CarID:          uuid.New(),
		UserID:         uuid.New(),
		From:           from,
		To:             from.Add(3 * time.Hour),
		DriverRequired: false,
		RentPerHour:    20,
	}
}

func (b *BookingBuilder) WithCarID(id uuid.UUID) *BookingBuilder {
	b.CarID = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithSlot(from, to time.Time) *BookingBuilder {
	b.From = from
	b.To = to
	return b
}

func (b *BookingBuilder) WithDriver() *BookingBuilder {
	b.DriverRequired = true
	return b
}

func (b *BookingBuilder) BuildRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CarID:          b.CarID,
		From:           b.From,
		To:             b.To,
		DriverRequired: b.DriverRequired,
	}
}

func (b *BookingBuilder) BuildReadModel() *queries.BookingView {
	hours := int64(b.To.Sub(b.From) / time.Hour)
	if b.To.Sub(b.From)%time.Hour != 0 {
		hours++
	}
	amount := hours * b.RentPerHour
	if b.DriverRequired {
		amount += hours * 30
	}
	return &queries.BookingView{
		ID:             uuid.New(),
		CarID:          b.CarID,
		CarName:        "Toyota Corolla",
		UserID:         b.UserID,
		UserEmail:      "test@example.com",
		Slot:           queries.SlotView{From: b.From, To: b.To},
		TotalMinutes:   hours * 60,
		Amount:         amount,
		DriverRequired: b.DriverRequired,
		TransactionRef: "sim_TESTREF1",
		Status:         "confirmed",
		CreatedAt:      time.Now(),
	}
}
