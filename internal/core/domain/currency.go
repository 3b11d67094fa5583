package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// USDDescriptor is the Treasury descriptor for the base currency.
const USDDescriptor = "United States-Dollar"

// usdSynonyms are compared case-insensitively against a trimmed descriptor.
var usdSynonyms = []string{"USD", USDDescriptor, "United States"}

// CatalogEntry is one country/currency pair the service acknowledges.
type CatalogEntry struct {
	Country      string `json:"country"`
	CurrencyCode string `json:"currencyCode"` // country_currency_desc, e.g. "Canada-Dollar"
	CurrencyName string `json:"currencyName"`
}

// NewCatalogEntry builds an entry whose name mirrors the upstream descriptor.
func NewCatalogEntry(country, descriptor string) CatalogEntry {
	return CatalogEntry{Country: country, CurrencyCode: descriptor, CurrencyName: descriptor}
}

// CompositeKey identifies an entry for duplicate suppression.
func (e CatalogEntry) CompositeKey() string {
	return e.Country + "|" + e.CurrencyCode
}

// NormalizeDescriptor trims surrounding whitespace from a currency descriptor.
func NormalizeDescriptor(descriptor string) string {
	return strings.TrimSpace(descriptor)
}

// IsUSD reports whether the descriptor names the base currency.
func IsUSD(descriptor string) bool {
	d := NormalizeDescriptor(descriptor)
	for _, s := range usdSynonyms {
		if strings.EqualFold(d, s) {
			return true
		}
	}
	return false
}

// Conversion is the result of converting a USD amount.
type Conversion struct {
	Converted decimal.Decimal
	Rate      decimal.Decimal
}
