//go:build unit

package queries_test

import (
	"context"
	"testing"

	"carhive/internal/domain/user"
	"carhive/internal/infra"
	"carhive/internal/usecase/queries"
	"carhive/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingViewRepo struct {
	byID   map[uuid.UUID]*queries.BookingView
	byUser map[uuid.UUID][]*queries.BookingView
	all    []*queries.BookingView
}

func newFakeBookingViewRepo(views ...*queries.BookingView) *fakeBookingViewRepo {
	repo := &fakeBookingViewRepo{
		byID:   make(map[uuid.UUID]*queries.BookingView),
		byUser: make(map[uuid.UUID][]*queries.BookingView),
	}
	for _, v := range views {
		repo.byID[v.ID] = v
		repo.byUser[v.UserID] = append(repo.byUser[v.UserID], v)
		repo.all = append(repo.all, v)
	}
	return repo
}

func (r *fakeBookingViewRepo) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return v, nil
}

func (r *fakeBookingViewRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	return r.byUser[userID], nil
}

func (r *fakeBookingViewRepo) FindAll(_ context.Context) ([]*queries.BookingView, error) {
	return r.all, nil
}

func TestBookingQueriesGetByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	strangerID := uuid.New()
	view := builder.NewBookingBuilder().WithUserID(ownerID).BuildReadModel()
	q := queries.NewBookingQueries(newFakeBookingViewRepo(view))

	t.Run("owner reads own booking", func(t *testing.T) {
		got, err := q.GetByID(ctx, view.ID, ownerID, user.RoleCustomer)
		require.NoError(t, err)
		if diff := cmp.Diff(view, got); diff != "" {
			t.Errorf("booking view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("admin reads any booking", func(t *testing.T) {
		got, err := q.GetByID(ctx, view.ID, strangerID, user.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("customer cannot read a foreign booking", func(t *testing.T) {
		_, err := q.GetByID(ctx, view.ID, strangerID, user.RoleCustomer)
		assert.ErrorIs(t, err, queries.ErrBookingAccess)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New(), ownerID, user.RoleCustomer)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestBookingQueriesListForCaller(t *testing.T) {
	ctx := context.Background()
	aliceID := uuid.New()
	bobID := uuid.New()
	aliceBooking := builder.NewBookingBuilder().WithUserID(aliceID).BuildReadModel()
	bobBooking := builder.NewBookingBuilder().WithUserID(bobID).BuildReadModel()
	q := queries.NewBookingQueries(newFakeBookingViewRepo(aliceBooking, bobBooking))

	t.Run("customer list is scoped to the caller", func(t *testing.T) {
		got, err := q.ListForCaller(ctx, aliceID, user.RoleCustomer)
		require.NoError(t, err)
		if diff := cmp.Diff([]*queries.BookingView{aliceBooking}, got); diff != "" {
			t.Errorf("booking list mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("admin list covers every booking", func(t *testing.T) {
		got, err := q.ListForCaller(ctx, aliceID, user.RoleAdmin)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}
