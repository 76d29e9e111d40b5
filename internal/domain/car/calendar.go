package car

import (
	"sort"

	"carhive/internal/domain/booking"
)

// SlotCalendar is the per-car authority on which intervals are taken.
// Confirmed slots are pairwise non-overlapping; the overlap check does not
// depend on internal order.
type SlotCalendar struct {
	slots []booking.TimeSlot
}

func NewSlotCalendar(slots []booking.TimeSlot) *SlotCalendar {
	copied := make([]booking.TimeSlot, len(slots))
	copy(copied, slots)
	return &SlotCalendar{slots: copied}
}

// IsAvailable reports whether candidate overlaps no confirmed slot.
func (sc *SlotCalendar) IsAvailable(candidate booking.TimeSlot) (bool, error) {
	if candidate.IsZero() || !candidate.From().Before(candidate.To()) {
		return false, booking.ErrInvalidTimeSlot
	}
	for _, s := range sc.slots {
		if s.Overlaps(candidate) {
			return false, nil
		}
	}
	return true, nil
}

// Reserve appends candidate. The caller owns the atomicity of
// check-then-reserve; Reserve performs no re-check.
func (sc *SlotCalendar) Reserve(candidate booking.TimeSlot) booking.TimeSlot {
	sc.slots = append(sc.slots, candidate)
	return candidate
}

func (sc *SlotCalendar) Len() int {
	return len(sc.slots)
}

// Sorted returns the slots ascending by start time for stable rendering.
func (sc *SlotCalendar) Sorted() []booking.TimeSlot {
	out := make([]booking.TimeSlot, len(sc.slots))
	copy(out, sc.slots)
	sort.Slice(out, func(i, j int) bool {
		return out[i].From().Before(out[j].From())
	})
	return out
}
