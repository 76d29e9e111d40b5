package request

import (
	"carhive/internal/domain/car"

	"github.com/google/uuid"
)

type CreateCarRequest struct {
	Name        string `json:"name" binding:"required"`
	Image       string `json:"image"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	FuelType    string `json:"fuel_type" binding:"required"`
	RentPerHour int64  `json:"rent_per_hour" binding:"required,gt=0"`
}

func (r CreateCarRequest) ToDomain() (*car.Car, error) {
	return car.NewCar(uuid.New(), r.Name, r.Image, r.Capacity, r.FuelType, r.RentPerHour)
}

type UpdateCarRequest struct {
	Name        string `json:"name" binding:"required"`
	Image       string `json:"image"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	FuelType    string `json:"fuel_type" binding:"required"`
	RentPerHour int64  `json:"rent_per_hour" binding:"required,gt=0"`
}

func (r UpdateCarRequest) ToDomain(id uuid.UUID) (*car.Car, error) {
	return car.NewCar(id, r.Name, r.Image, r.Capacity, r.FuelType, r.RentPerHour)
}
