package queries

import (
	"context"

	"carhive/internal/infra"
	"carhive/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCarNotFound = errs.New("car not found")

type CarViewRepo interface {
	FindAll(ctx context.Context) ([]*CarView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CarView, error)
}

type CarQueries interface {
	List(ctx context.Context) ([]*CarView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CarView, error)
}

type carQueriesImpl struct {
	repo CarViewRepo
}

func NewCarQueries(repo CarViewRepo) CarQueries {
	return &carQueriesImpl{repo: repo}
}

func (q *carQueriesImpl) List(ctx context.Context) ([]*CarView, error) {
	return q.repo.FindAll(ctx)
}

func (q *carQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CarView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Wrap(err, "failed to get car")
	}
	return view, nil
}
