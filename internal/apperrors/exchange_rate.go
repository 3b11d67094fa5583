package apperrors

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// RateFailureCause categorizes why no exchange rate could be produced.
type RateFailureCause string

const (
	CauseNoData              RateFailureCause = "no_data"
	CauseUpstreamStatus      RateFailureCause = "upstream_status"
	CauseUpstreamUnreachable RateFailureCause = "upstream_unreachable"
	CauseMalformedResponse   RateFailureCause = "malformed_response"
)

// ExchangeRateNotFoundError is returned when a purchase cannot be converted into the target currency.
// errors.Is(err, ErrExchangeRateNotFound) holds for every instance.
type ExchangeRateNotFoundError struct {
	Descriptor   string
	PurchaseDate civil.Date
	Cause        RateFailureCause
	// Detail holds upstream status/body or the transport error text, if any.
	Detail string
	Err    error
}

func (e *ExchangeRateNotFoundError) Error() string {
	if e.Cause == CauseNoData || e.Cause == "" {
		return fmt.Sprintf("exchange rate not found for currency %s on or before %s (within last 6 months): purchase cannot be converted to target currency",
			e.Descriptor, e.PurchaseDate)
	}
	return fmt.Sprintf("error fetching exchange rate for currency %s on or before %s [%s]: %s: purchase cannot be converted to target currency",
		e.Descriptor, e.PurchaseDate, e.Cause, e.Detail)
}

func (e *ExchangeRateNotFoundError) Is(target error) bool {
	return target == ErrExchangeRateNotFound
}

func (e *ExchangeRateNotFoundError) Unwrap() error {
	return e.Err
}
