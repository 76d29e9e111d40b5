package commands

import (
	"context"

	reqdto "carhive/internal/handler/dto/request"
	"carhive/internal/infra"
	"carhive/internal/infra/db"
	"carhive/internal/pkg/errs"
	"carhive/internal/usecase/queries"

	"github.com/google/uuid"
)

// Admin-only fleet management. Deleting a car keeps its bookings; the read
// side renders them against a placeholder name.
type CarCommands interface {
	CreateCar(ctx context.Context, req reqdto.CreateCarRequest) (*queries.CarView, error)
	UpdateCar(ctx context.Context, id uuid.UUID, req reqdto.UpdateCarRequest) (*queries.CarView, error)
	DeleteCar(ctx context.Context, id uuid.UUID) error
}

type carUseCaseImpl struct {
	carRepo    CarRepository
	carQueries queries.CarQueries
	db         db.DBTX
}

func NewCarUseCase(carRepo CarRepository, carQueries queries.CarQueries, db db.DBTX) CarCommands {
	return &carUseCaseImpl{
		carRepo:    carRepo,
		carQueries: carQueries,
		db:         db,
	}
}

func (c *carUseCaseImpl) CreateCar(ctx context.Context, req reqdto.CreateCarRequest) (*queries.CarView, error) {
	carEntity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.carRepo.Create(ctx, c.db, carEntity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.carQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *carUseCaseImpl) UpdateCar(ctx context.Context, id uuid.UUID, req reqdto.UpdateCarRequest) (*queries.CarView, error) {
	carEntity, err := req.ToDomain(id)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.carRepo.Update(ctx, c.db, carEntity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.carQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *carUseCaseImpl) DeleteCar(ctx context.Context, id uuid.UUID) error {
	if err := c.carRepo.Delete(ctx, c.db, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCarNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
