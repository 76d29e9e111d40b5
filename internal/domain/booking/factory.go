package booking

import (
	"carhive/internal/pkg/clock"

	"github.com/google/uuid"
)

// CarSpec carries the pricing-relevant fields of a car, so the factory does
// not depend on the car aggregate.
type CarSpec struct {
	ID          uuid.UUID
	RentPerHour int64
}

// Factory assembles a priced Booking from validated inputs. The amount is
// always the calculator's output for (slot, rate, driver), never caller
// supplied.
type Factory struct {
	clock           clock.Clock
	priceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{clock: clock, priceCalculator: priceCalculator}
}

func (f *Factory) CreateBooking(
	spec CarSpec,
	userID uuid.UUID,
	slot TimeSlot,
	driverRequired bool,
	transactionRef string,
) (*Booking, error) {
	amount := f.priceCalculator.Quote(spec.RentPerHour, slot, driverRequired)
	return NewBooking(spec.ID, userID, slot, amount, driverRequired, transactionRef, f.clock.Now())
}

// Quote prices a slot without constructing a Booking, for the Priced gate
// ahead of payment authorization.
func (f *Factory) Quote(spec CarSpec, slot TimeSlot, driverRequired bool) Money {
	return f.priceCalculator.Quote(spec.RentPerHour, slot, driverRequired)
}
