//go:build unit || e2e

package builder

import (
	"time"

	"carhive/internal/domain/booking"
	"carhive/internal/domain/car"
	reqdto "carhive/internal/handler/dto/request"
	"carhive/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarBuilder struct {
	ID          uuid.UUID
	Name        string
	Image       string
	Capacity    int
	FuelType    string
	RentPerHour int64
	BookedSlots []booking.TimeSlot
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:          uuid.New(),
		Name:        "Toyota Corolla",
		Image:       "https://example.com/corolla.png",
		Capacity:    5,
		FuelType:    "petrol",
		RentPerHour: 20,
	}
}

func (b *CarBuilder) WithName(name string) *CarBuilder {
	b.Name = name
	return b
}

func (b *CarBuilder) WithCapacity(capacity int) *CarBuilder {
	b.Capacity = capacity
	return b
}

func (b *CarBuilder) WithFuelType(fuelType string) *CarBuilder {
	b.FuelType = fuelType
	return b
}

func (b *CarBuilder) WithRentPerHour(rate int64) *CarBuilder {
	b.RentPerHour = rate
	return b
}

func (b *CarBuilder) WithBookedSlot(from, to time.Time) *CarBuilder {
	slot, err := booking.NewTimeSlot(from, to)
	if err != nil {
		panic(err)
	}
	b.BookedSlots = append(b.BookedSlots, slot)
	return b
}

func (b *CarBuilder) BuildDomain() (*car.Car, error) {
	c, err := car.NewCar(b.ID, b.Name, b.Image, b.Capacity, b.FuelType, b.RentPerHour)
	if err != nil {
		return nil, err
	}
	for _, slot := range b.BookedSlots {
		c.Calendar().Reserve(slot)
	}
	return c, nil
}

func (b *CarBuilder) BuildRequest() reqdto.CreateCarRequest {
	return reqdto.CreateCarRequest{
		Name:        b.Name,
		Image:       b.Image,
		Capacity:    b.Capacity,
		FuelType:    b.FuelType,
		RentPerHour: b.RentPerHour,
	}
}

func (b *CarBuilder) BuildReadModel() *queries.CarView {
	slots := make([]queries.SlotView, 0, len(b.BookedSlots))
	for _, s := range b.BookedSlots {
		slots = append(slots, queries.SlotView{From: s.From(), To: s.To()})
	}
	now := time.Now()
	return &queries.CarView{
		ID:          b.ID,
		Name:        b.Name,
		Image:       b.Image,
		Capacity:    b.Capacity,
		FuelType:    b.FuelType,
		RentPerHour: b.RentPerHour,
		BookedSlots: slots,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
