package reservation

import (
	"time"

	"fieldbook/internal/domain/field"

	"github.com/shopspring/decimal"
)

type SlotAvailability struct {
	Time      SlotTime
	Available int
	Disabled  bool
}

// DaySchedule lists every hourly slot in [openHour, closeHour) with its remaining capacity.
func DaySchedule(f *field.Field, date Date, openHour, closeHour int, existing []*Reservation, now time.Time) []SlotAvailability {
	if openHour < 0 {
		openHour = 0
	}
	if closeHour > 24 {
		closeHour = 24
	}

	slots := make([]SlotAvailability, 0, max(0, closeHour-openHour))
	for h := openHour; h < closeHour; h++ {
		st := SlotTime{minutes: h * 60}
		slots = append(slots, SlotAvailability{
			Time:      st,
			Available: ComputeAvailableCapacity(f, date, &st, existing),
			Disabled:  IsTimeSlotDisabled(date, st, now) || !date.At(st).After(now),
		})
	}
	return slots
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
