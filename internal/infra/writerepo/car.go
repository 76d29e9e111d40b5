package writerepo

import (
	"context"
	"encoding/json"
	"time"

	"carhive/internal/domain/booking"
	"carhive/internal/domain/car"
	"carhive/internal/infra"
	"carhive/internal/infra/db"

	"github.com/google/uuid"
)

type CarRepository struct{}

func NewCarRepository() *CarRepository {
	return &CarRepository{}
}

type slotRecord struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// FindByID loads the car aggregate with its slot calendar for the write side.
func (r *CarRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*car.Car, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, name, image, capacity, fuel_type, rent_per_hour, booked_slots, created_at, updated_at
		FROM cars WHERE id = $1`, id)

	var (
		carID       uuid.UUID
		name        string
		image       string
		capacity    int
		fuelType    string
		rentPerHour int64
		slotsJSON   []byte
		createdAt   time.Time
		updatedAt   time.Time
	)
	if err := row.Scan(&carID, &name, &image, &capacity, &fuelType, &rentPerHour, &slotsJSON, &createdAt, &updatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}

	calendar, err := decodeCalendar(slotsJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booked slots", err)
	}

	return car.ReconstructCar(carID, name, image, capacity, fuelType, rentPerHour, calendar, createdAt, updatedAt), nil
}

func (r *CarRepository) Create(ctx context.Context, dbtx db.DBTX, c *car.Car) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
		INSERT INTO cars (id, name, image, capacity, fuel_type, rent_per_hour)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		c.ID(), c.Name(), c.Image(), c.Capacity(), c.FuelType(), c.RentPerHour(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create car", err)
	}
	return id, nil
}

// Update touches the descriptive fields only; booked_slots belongs to the
// booking transaction.
func (r *CarRepository) Update(ctx context.Context, dbtx db.DBTX, c *car.Car) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE cars SET name = $2, image = $3, capacity = $4, fuel_type = $5, rent_per_hour = $6
		WHERE id = $1`,
		c.ID(), c.Name(), c.Image(), c.Capacity(), c.FuelType(), c.RentPerHour(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

// AppendSlot grows the car's booked-slot set by one, in the same transaction
// as the booking insert.
func (r *CarRepository) AppendSlot(ctx context.Context, tx db.DBTX, carID uuid.UUID, slot booking.TimeSlot) error {
	encoded, err := json.Marshal(slotRecord{From: slot.From(), To: slot.To()})
	if err != nil {
		return infra.WrapRepoErr("failed to encode slot", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE cars SET booked_slots = booked_slots || $2::jsonb WHERE id = $1`,
		carID, encoded,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append booked slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

func decodeCalendar(raw []byte) (*car.SlotCalendar, error) {
	var records []slotRecord
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, err
		}
	}

	slots := make([]booking.TimeSlot, 0, len(records))
	for _, rec := range records {
		slot, err := booking.NewTimeSlot(rec.From, rec.To)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return car.NewSlotCalendar(slots), nil
}
