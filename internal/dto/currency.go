package dto

import (
	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
)

// CountryCurrencyResponse defines the data returned for a catalog entry.
type CountryCurrencyResponse struct {
	Country      string `json:"country" example:"Canada"`
	CurrencyCode string `json:"currencyCode" example:"Canada-Dollar"`
	CurrencyName string `json:"currencyName" example:"Canada-Dollar"`
}

// ToCountryCurrencyResponse converts a domain.CatalogEntry to CountryCurrencyResponse DTO
func ToCountryCurrencyResponse(e domain.CatalogEntry) CountryCurrencyResponse {
	return CountryCurrencyResponse{
		Country:      e.Country,
		CurrencyCode: e.CurrencyCode,
		CurrencyName: e.CurrencyName,
	}
}

// ToListCountryCurrencyResponse converts catalog entries to DTOs
func ToListCountryCurrencyResponse(entries []domain.CatalogEntry) []CountryCurrencyResponse {
	res := make([]CountryCurrencyResponse, len(entries))
	for i, e := range entries {
		res[i] = ToCountryCurrencyResponse(e)
	}
	return res
}
