package commands

import (
	"context"

	"carhive/internal/domain/booking"
	"carhive/internal/domain/car"
	"carhive/internal/domain/user"
	"carhive/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side repository ports. All methods take an explicit DBTX so a
// command can run several of them inside one transaction.

type CarRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*car.Car, error)
	Create(ctx context.Context, dbtx db.DBTX, c *car.Car) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, c *car.Car) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	AppendSlot(ctx context.Context, tx db.DBTX, carID uuid.UUID, slot booking.TimeSlot) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
}
