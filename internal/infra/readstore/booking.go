package readstore

import (
	"context"

	"carhive/internal/infra"
	"carhive/internal/infra/db"
	"carhive/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

// Cars are left-joined because a deleted car keeps its booking history.
const bookingViewQuery = `
SELECT
    b.id,
    b.car_id,
    COALESCE(c.name, '(deleted car)') AS car_name,
    b.user_id,
    u.email AS user_email,
    lower(b.slot) AS slot_from,
    upper(b.slot) AS slot_to,
    b.total_minutes,
    b.amount,
    b.driver_required,
    b.transaction_ref,
    b.status,
    b.created_at
FROM bookings b
LEFT JOIN cars c ON c.id = b.car_id
JOIN users u ON u.id = b.user_id
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewQuery+`WHERE b.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return view, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewQuery+`WHERE b.user_id = $1 ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewQuery+`ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func collectBookingViews(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]*queries.BookingView, error) {
	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var view queries.BookingView
	if err := row.Scan(
		&view.ID,
		&view.CarID,
		&view.CarName,
		&view.UserID,
		&view.UserEmail,
		&view.Slot.From,
		&view.Slot.To,
		&view.TotalMinutes,
		&view.Amount,
		&view.DriverRequired,
		&view.TransactionRef,
		&view.Status,
		&view.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &view, nil
}
