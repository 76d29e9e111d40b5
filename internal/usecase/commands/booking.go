package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"carhive/internal/domain/booking"
	"carhive/internal/domain/user"
	reqdto "carhive/internal/handler/dto/request"
	"carhive/internal/infra"
	"carhive/internal/infra/db"
	"carhive/internal/pkg/config"
	"carhive/internal/pkg/errs"
	"carhive/internal/pkg/lock"
	"carhive/internal/pkg/payment"
	"carhive/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrCarNotFound             = errs.New("car not found")
	ErrInvalidTimeSlot         = errs.New("invalid time slot")
	ErrSlotConflict            = errs.New("slot conflicts with an existing booking")
	ErrPaymentDeclined         = errs.New("payment authorization declined")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	bookingRepo    BookingRepository
	carRepo        CarRepository
	bookingFactory *booking.Factory
	bookingQueries queries.BookingQueries
	authorizer     payment.Authorizer
	carLocks       *lock.KeyedMutex
	db             db.Beginner
	paymentCfg     config.PaymentConfig
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	carRepo CarRepository,
	bookingFactory *booking.Factory,
	bookingQueries queries.BookingQueries,
	authorizer payment.Authorizer,
	carLocks *lock.KeyedMutex,
	db db.Beginner,
	paymentCfg config.PaymentConfig,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:    bookingRepo,
		carRepo:        carRepo,
		bookingFactory: bookingFactory,
		bookingQueries: bookingQueries,
		authorizer:     authorizer,
		carLocks:       carLocks,
		db:             db,
		paymentCfg:     paymentCfg,
	}
}

// CreateBooking runs the whole booking flow: validate the slot, check the
// car's calendar, price, authorize payment, then reserve the slot and insert
// the booking atomically. The per-car lock serializes check-then-reserve
// in process; the exclusion constraint on bookings backstops races across
// processes.
func (b *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	slot, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	b.carLocks.Lock(req.CarID)
	defer b.carLocks.Unlock(req.CarID)

	carEntity, err := b.carRepo.FindByID(ctx, b.db, req.CarID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	available, err := carEntity.Calendar().IsAvailable(slot)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}
	if !available {
		return nil, ErrSlotConflict
	}

	spec := booking.CarSpec{ID: carEntity.ID(), RentPerHour: carEntity.RentPerHour()}
	amount := b.bookingFactory.Quote(spec, slot, req.DriverRequired)

	auth, err := b.authorizer.Authorize(ctx, payment.AuthorizationRequest{
		CarID:       carEntity.ID(),
		UserID:      userID,
		Amount:      amount.Units(),
		Currency:    b.paymentCfg.Currency,
		Description: fmt.Sprintf("booking of %s", carEntity.Name()),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentDeclined)
	}

	bookingEntity, err := b.bookingFactory.CreateBooking(spec, userID, slot, req.DriverRequired, auth.TransactionRef)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return b.executeBookingTransaction(ctx, bookingEntity, userID)
}

// executeBookingTransaction reserves the slot on the car and inserts the
// booking in one transaction, so a failed insert rolls the reservation back.
func (b *bookingUseCaseImpl) executeBookingTransaction(
	ctx context.Context,
	bookingEntity *booking.Booking,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := b.carRepo.AppendSlot(ctx, tx, bookingEntity.CarID(), bookingEntity.Slot()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := b.bookingRepo.Create(ctx, tx, bookingEntity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	view, err := b.bookingQueries.GetByID(ctx, bookingEntity.ID(), userID, user.RoleCustomer)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
