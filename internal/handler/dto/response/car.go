package response

import (
	"time"

	"carhive/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Image       string         `json:"image"`
	Capacity    int            `json:"capacity"`
	FuelType    string         `json:"fuelType"`
	RentPerHour int64          `json:"rentPerHour"`
	BookedSlots []SlotResponse `json:"bookedSlots"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func FromCarView(rm *queries.CarView) *CarResponse {
	slots := make([]SlotResponse, 0, len(rm.BookedSlots))
	for _, s := range rm.BookedSlots {
		slots = append(slots, SlotResponse{From: s.From, To: s.To})
	}
	return &CarResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Image:       rm.Image,
		Capacity:    rm.Capacity,
		FuelType:    rm.FuelType,
		RentPerHour: rm.RentPerHour,
		BookedSlots: slots,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromCarViews(rms []*queries.CarView) []*CarResponse {
	out := make([]*CarResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromCarView(rm))
	}
	return out
}
