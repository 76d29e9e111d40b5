package response

import (
	"time"

	"carhive/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type BookingResponse struct {
	ID             uuid.UUID    `json:"id"`
	CarID          uuid.UUID    `json:"carId"`
	CarName        string       `json:"carName"`
	UserID         uuid.UUID    `json:"userId"`
	UserEmail      string       `json:"userEmail"`
	Slot           SlotResponse `json:"slot"`
	TotalMinutes   int64        `json:"totalMinutes"`
	Amount         int64        `json:"amount"`
	DriverRequired bool         `json:"driverRequired"`
	TransactionRef string       `json:"transactionRef"`
	Status         string       `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:             rm.ID,
		CarID:          rm.CarID,
		CarName:        rm.CarName,
		UserID:         rm.UserID,
		UserEmail:      rm.UserEmail,
		Slot:           SlotResponse{From: rm.Slot.From, To: rm.Slot.To},
		TotalMinutes:   rm.TotalMinutes,
		Amount:         rm.Amount,
		DriverRequired: rm.DriverRequired,
		TransactionRef: rm.TransactionRef,
		Status:         rm.Status,
		CreatedAt:      rm.CreatedAt,
	}
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromBookingView(rm))
	}
	return out
}
