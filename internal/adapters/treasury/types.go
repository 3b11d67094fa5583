package treasury

// Meta is the pagination block of a Fiscal Data response.
type Meta struct {
	Count      int `json:"count"`
	TotalCount int `json:"total-count"`
	TotalPages int `json:"total-pages"`
}

// CurrencyRecord is one row of the paged listing.
type CurrencyRecord struct {
	Country             string `json:"country"`
	CountryCurrencyDesc string `json:"country_currency_desc"`
	RecordDate          string `json:"record_date"`
}

// CurrencyPage is a page of the listing request.
type CurrencyPage struct {
	Data []CurrencyRecord `json:"data"`
	Meta *Meta            `json:"meta"`
}

// RateRecord is one row of the rate point lookup. ExchangeRate is kept as the
// upstream string so it can be parsed without loss.
type RateRecord struct {
	CountryCurrencyDesc string `json:"country_currency_desc"`
	ExchangeRate        string `json:"exchange_rate"`
	RecordDate          string `json:"record_date"`
}

// RateResponse is the rate point lookup envelope.
type RateResponse struct {
	Data []RateRecord `json:"data"`
	Meta *Meta        `json:"meta"`
}
