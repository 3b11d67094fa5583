package domain_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func d(y int, m time.Month, day int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: day}
}

func TestSubtractMonths(t *testing.T) {
	tests := []struct {
		name string
		in   civil.Date
		n    int
		want civil.Date
	}{
		{name: "same day six months back", in: d(2025, time.January, 20), n: 6, want: d(2024, time.July, 20)},
		{name: "clamps to end of february", in: d(2025, time.August, 31), n: 6, want: d(2025, time.February, 28)},
		{name: "leap february", in: d(2024, time.August, 31), n: 6, want: d(2024, time.February, 29)},
		{name: "crosses year", in: d(2025, time.March, 31), n: 6, want: d(2024, time.September, 30)},
		{name: "december", in: d(2025, time.June, 15), n: 6, want: d(2024, time.December, 15)},
		{name: "zero months", in: d(2025, time.May, 5), n: 0, want: d(2025, time.May, 5)},
		{name: "many years", in: d(2025, time.May, 5), n: 30, want: d(2022, time.November, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.SubtractMonths(tt.in, tt.n))
		})
	}
}

func TestRateQuery_Contains(t *testing.T) {
	q := domain.NewRateQuery("Euro Zone-Euro", d(2025, time.July, 15))

	assert.Equal(t, d(2025, time.January, 15), q.WindowStart)
	assert.Equal(t, d(2025, time.July, 15), q.WindowEnd)
	assert.True(t, q.Contains(d(2025, time.January, 15)))
	assert.True(t, q.Contains(d(2025, time.July, 15)))
	assert.True(t, q.Contains(d(2025, time.April, 1)))
	assert.False(t, q.Contains(d(2025, time.January, 14)))
	assert.False(t, q.Contains(d(2025, time.July, 16)))
}

func TestIsUSD(t *testing.T) {
	for _, s := range []string{"USD", " usd ", "United States-Dollar", "united states", "UNITED STATES-DOLLAR"} {
		assert.True(t, domain.IsUSD(s), s)
	}
	for _, s := range []string{"", "US", "Canada-Dollar", "United States-Dollars", "Dollar"} {
		assert.False(t, domain.IsUSD(s), s)
	}
}

func TestAPIKey_IsExpired(t *testing.T) {
	key := domain.APIKey{ExpirationDate: d(2025, time.June, 15)}

	assert.False(t, key.IsExpired(d(2025, time.June, 14)))
	assert.False(t, key.IsExpired(d(2025, time.June, 15)))
	assert.True(t, key.IsExpired(d(2025, time.June, 16)))
}
