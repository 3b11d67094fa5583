package domain

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// RateLookbackMonths is how far before a purchase date a published rate may be.
const RateLookbackMonths = 6

// RateQuery is a request for the newest rate of Descriptor in [WindowStart, WindowEnd].
type RateQuery struct {
	Descriptor  string
	WindowStart civil.Date
	WindowEnd   civil.Date
}

// NewRateQuery builds the six-month lookback window ending on the purchase date.
func NewRateQuery(descriptor string, purchaseDate civil.Date) RateQuery {
	return RateQuery{
		Descriptor:  descriptor,
		WindowStart: SubtractMonths(purchaseDate, RateLookbackMonths),
		WindowEnd:   purchaseDate,
	}
}

// Contains reports whether d falls inside the window, both ends inclusive.
func (q RateQuery) Contains(d civil.Date) bool {
	return !d.Before(q.WindowStart) && !d.After(q.WindowEnd)
}

// RateRecord is a single published rate observation.
type RateRecord struct {
	Descriptor string
	Rate       decimal.Decimal
	RecordDate civil.Date
}

// SubtractMonths moves d back n calendar months. A day past the end of the
// target month is clamped to that month's last day (2025-08-31 -> 2025-02-28).
func SubtractMonths(d civil.Date, n int) civil.Date {
	total := d.Year*12 + int(d.Month) - 1 - n
	out := civil.Date{Year: total / 12, Month: time.Month(total%12 + 1), Day: d.Day}
	if last := daysIn(out.Year, out.Month); out.Day > last {
		out.Day = last
	}
	return out
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
