package writerepo

import (
	"context"

	"carhive/internal/domain/booking"
	"carhive/internal/infra"
	"carhive/internal/infra/db"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Create inserts the booking row. The exclusion constraint on
// (car_id, slot) turns a lost race into KindConflict.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO bookings (
			id, car_id, user_id, slot, total_minutes, amount,
			driver_required, transaction_ref, status, created_at
		) VALUES ($1, $2, $3, tstzrange($4, $5, '[)'), $6, $7, $8, $9, $10, $11)`,
		b.ID(),
		b.CarID(),
		b.UserID(),
		b.Slot().From(),
		b.Slot().To(),
		b.TotalMinutes(),
		b.Amount().Units(),
		b.DriverRequired(),
		b.TransactionRef(),
		b.Status().String(),
		b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}
