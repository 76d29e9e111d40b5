package queries

import (
	"context"

	"carhive/internal/domain/user"
	"carhive/internal/infra"
	"carhive/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking does not belong to caller")
)

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingView, error)
}

type BookingQueries interface {
	// GetByID enforces ownership: customers may only read their own bookings.
	GetByID(ctx context.Context, id uuid.UUID, callerID uuid.UUID, role user.Role) (*BookingView, error)
	// ListForCaller is caller-scoped: customers get their own bookings,
	// admins get every booking.
	ListForCaller(ctx context.Context, callerID uuid.UUID, role user.Role) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, callerID uuid.UUID, role user.Role) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to get booking")
	}
	if !role.IsAdmin() && view.UserID != callerID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForCaller(ctx context.Context, callerID uuid.UUID, role user.Role) ([]*BookingView, error) {
	if role.IsAdmin() {
		return q.repo.FindAll(ctx)
	}
	return q.repo.FindByUserID(ctx, callerID)
}
