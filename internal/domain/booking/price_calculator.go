package booking

// PriceCalculator derives the total amount due for a slot. Implementations
// must be pure: identical inputs always produce identical output.
type PriceCalculator interface {
	Quote(hourlyRate int64, slot TimeSlot, driverRequired bool) Money
}

const DefaultDriverRatePerHour = 30

type HourlyPriceCalculator struct {
	DriverRatePerHour int64
}

func NewHourlyPriceCalculator(driverRatePerHour int64) *HourlyPriceCalculator {
	if driverRatePerHour < 0 {
		driverRatePerHour = DefaultDriverRatePerHour
	}
	return &HourlyPriceCalculator{DriverRatePerHour: driverRatePerHour}
}

func (pc *HourlyPriceCalculator) Quote(hourlyRate int64, slot TimeSlot, driverRequired bool) Money {
	hours := slot.Hours()
	total := hours * hourlyRate
	if driverRequired {
		total += hours * pc.DriverRatePerHour
	}
	return Money{units: total}
}
