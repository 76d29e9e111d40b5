package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SlotView struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type CarView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Image       string     `json:"image"`
	Capacity    int        `json:"capacity"`
	FuelType    string     `json:"fuel_type"`
	RentPerHour int64      `json:"rent_per_hour"`
	BookedSlots []SlotView `json:"booked_slots"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	CarID          uuid.UUID `json:"car_id"`
	CarName        string    `json:"car_name"`
	UserID         uuid.UUID `json:"user_id"`
	UserEmail      string    `json:"user_email"`
	Slot           SlotView  `json:"slot"`
	TotalMinutes   int64     `json:"total_minutes"`
	Amount         int64     `json:"amount"`
	DriverRequired bool      `json:"driver_required"`
	TransactionRef string    `json:"transaction_ref"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Phone    *string   `json:"phone,omitempty"`
	Role     string    `json:"role"`
}
