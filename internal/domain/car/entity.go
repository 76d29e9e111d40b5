package car

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCarName    = errors.New("car name cannot be empty")
	ErrCarNameTooLong  = errors.New("car name is too long (max 255 characters)")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrInvalidRate     = errors.New("rent per hour must be positive")
	ErrEmptyFuelType   = errors.New("fuel type cannot be empty")
)

const MaxCarNameLength = 255

type Car struct {
	id          uuid.UUID
	name        string
	image       string
	capacity    int
	fuelType    string
	rentPerHour int64
	calendar    *SlotCalendar
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCar(id uuid.UUID, name, image string, capacity int, fuelType string, rentPerHour int64) (*Car, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCarName
	}
	if len(name) > MaxCarNameLength {
		return nil, ErrCarNameTooLong
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if strings.TrimSpace(fuelType) == "" {
		return nil, ErrEmptyFuelType
	}
	if rentPerHour <= 0 {
		return nil, ErrInvalidRate
	}

	return &Car{
		id:          id,
		name:        name,
		image:       image,
		capacity:    capacity,
		fuelType:    fuelType,
		rentPerHour: rentPerHour,
		calendar:    NewSlotCalendar(nil),
	}, nil
}

func ReconstructCar(
	id uuid.UUID,
	name, image string,
	capacity int,
	fuelType string,
	rentPerHour int64,
	calendar *SlotCalendar,
	createdAt, updatedAt time.Time,
) *Car {
	if calendar == nil {
		calendar = NewSlotCalendar(nil)
	}
	return &Car{
		id:          id,
		name:        name,
		image:       image,
		capacity:    capacity,
		fuelType:    fuelType,
		rentPerHour: rentPerHour,
		calendar:    calendar,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Car) ID() uuid.UUID           { return c.id }
func (c *Car) Name() string            { return c.name }
func (c *Car) Image() string           { return c.image }
func (c *Car) Capacity() int           { return c.capacity }
func (c *Car) FuelType() string        { return c.fuelType }
func (c *Car) RentPerHour() int64      { return c.rentPerHour }
func (c *Car) Calendar() *SlotCalendar { return c.calendar }
func (c *Car) CreatedAt() time.Time    { return c.createdAt }
func (c *Car) UpdatedAt() time.Time    { return c.updatedAt }
