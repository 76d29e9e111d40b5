package readstore

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"carhive/internal/infra"
	"carhive/internal/infra/db"
	"carhive/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarReadStore struct {
	db db.DBTX
}

func NewCarReadStore(dbtx db.DBTX) *CarReadStore {
	return &CarReadStore{db: dbtx}
}

const carViewColumns = `id, name, image, capacity, fuel_type, rent_per_hour, booked_slots, created_at, updated_at`

func (r *CarReadStore) FindAll(ctx context.Context) ([]*queries.CarView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+carViewColumns+` FROM cars ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	defer rows.Close()

	var views []*queries.CarView
	for rows.Next() {
		view, err := scanCarView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan car row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate car rows", err)
	}

	return views, nil
}

func (r *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+carViewColumns+` FROM cars WHERE id = $1`, id)

	view, err := scanCarView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}

	return view, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// slotRecord is the jsonb element shape stored in cars.booked_slots.
type slotRecord struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func scanCarView(row rowScanner) (*queries.CarView, error) {
	var (
		view      queries.CarView
		slotsJSON []byte
	)
	if err := row.Scan(
		&view.ID,
		&view.Name,
		&view.Image,
		&view.Capacity,
		&view.FuelType,
		&view.RentPerHour,
		&slotsJSON,
		&view.CreatedAt,
		&view.UpdatedAt,
	); err != nil {
		return nil, err
	}

	slots, err := decodeSlots(slotsJSON)
	if err != nil {
		return nil, err
	}
	view.BookedSlots = slots

	return &view, nil
}

// decodeSlots sorts ascending by start time for stable rendering.
func decodeSlots(raw []byte) ([]queries.SlotView, error) {
	var records []slotRecord
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, err
		}
	}

	views := make([]queries.SlotView, len(records))
	for i, rec := range records {
		views[i] = queries.SlotView{From: rec.From, To: rec.To}
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].From.Before(views[j].From)
	})
	return views, nil
}
