//go:build unit

package booking_test

import (
	"testing"
	"time"

	"carhive/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func slot(t *testing.T, from, to time.Time) booking.TimeSlot {
	t.Helper()
	s, err := booking.NewTimeSlot(from, to)
	require.NoError(t, err)
	return s
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		s, err := booking.NewTimeSlot(base, base.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, s.From())
		assert.Equal(t, base.Add(2*time.Hour), s.To())
	})

	t.Run("zero-length slot is invalid", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base, base)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})

	t.Run("inverted range is invalid", func(t *testing.T) {
		_, err := booking.NewTimeSlot(base.Add(time.Hour), base)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})
}

func TestTimeSlotOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     booking.TimeSlot
		overlaps bool
	}{
		{
			name:     "identical slots",
			a:        slot(t, base, base.Add(2*time.Hour)),
			b:        slot(t, base, base.Add(2*time.Hour)),
			overlaps: true,
		},
		{
			name:     "partial overlap",
			a:        slot(t, base, base.Add(2*time.Hour)),
			b:        slot(t, base.Add(time.Hour), base.Add(3*time.Hour)),
			overlaps: true,
		},
		{
			name:     "contained slot",
			a:        slot(t, base, base.Add(4*time.Hour)),
			b:        slot(t, base.Add(time.Hour), base.Add(2*time.Hour)),
			overlaps: true,
		},
		{
			name:     "touching endpoints do not overlap",
			a:        slot(t, base, base.Add(2*time.Hour)),
			b:        slot(t, base.Add(2*time.Hour), base.Add(4*time.Hour)),
			overlaps: false,
		},
		{
			name:     "disjoint slots",
			a:        slot(t, base, base.Add(time.Hour)),
			b:        slot(t, base.Add(5*time.Hour), base.Add(6*time.Hour)),
			overlaps: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			// Overlap is symmetric
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a))
		})
	}
}

func TestTimeSlotHours(t *testing.T) {
	cases := []struct {
		name     string
		duration time.Duration
		hours    int64
	}{
		{name: "exact hours", duration: 3 * time.Hour, hours: 3},
		{name: "partial hour rounds up", duration: 90 * time.Minute, hours: 2},
		{name: "single minute rounds up", duration: time.Minute, hours: 1},
		{name: "just over a boundary", duration: 2*time.Hour + time.Second, hours: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := slot(t, base, base.Add(tc.duration))
			assert.Equal(t, tc.hours, s.Hours())
			assert.Equal(t, tc.hours*60, s.Minutes())
		})
	}
}

func TestNewMoney(t *testing.T) {
	t.Run("non-negative amounts", func(t *testing.T) {
		m, err := booking.NewMoney(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Units())

		m, err = booking.NewMoney(150)
		require.NoError(t, err)
		assert.Equal(t, int64(150), m.Units())
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := booking.NewMoney(-1)
		assert.ErrorIs(t, err, booking.ErrNegativeAmount)
	})

	t.Run("add", func(t *testing.T) {
		a, _ := booking.NewMoney(60)
		b, _ := booking.NewMoney(40)
		assert.Equal(t, int64(100), a.Add(b).Units())
	})
}
