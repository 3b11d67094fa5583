package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/purchase_conversion_api/internal/adapters/treasury"
	"github.com/SscSPs/purchase_conversion_api/internal/apperrors"
	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	"github.com/SscSPs/purchase_conversion_api/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/purchase_conversion_api/internal/core/ports/services"
	"github.com/SscSPs/purchase_conversion_api/internal/utils"
	"github.com/shopspring/decimal"
)

// currencyService resolves Treasury exchange rates and serves the country catalog.
type currencyService struct {
	BaseService
	gateway gateways.TreasuryGateway
	catalog *CatalogCache
}

// CurrencyServiceOption configures the currency service.
type CurrencyServiceOption func(*currencyService)

// WithCatalogCache shares an existing catalog cache instead of building a new one.
func WithCatalogCache(cache *CatalogCache) CurrencyServiceOption {
	return func(s *currencyService) {
		s.catalog = cache
	}
}

// NewCurrencyService creates a currency service backed by the Treasury gateway.
func NewCurrencyService(gw gateways.TreasuryGateway, options ...CurrencyServiceOption) portssvc.CurrencySvcFacade {
	svc := &currencyService{gateway: gw}
	for _, opt := range options {
		opt(svc)
	}
	if svc.catalog == nil {
		svc.catalog = NewCatalogCache(gw, CatalogLoaderOptions{}, nil)
	}
	return svc
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) ListCatalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	return s.catalog.Get(ctx).Entries(), nil
}

func (s *currencyService) LookupCatalog(ctx context.Context, key string) (domain.CatalogEntry, bool) {
	return s.catalog.Get(ctx).Lookup(key)
}

func (s *currencyService) ResolveRate(ctx context.Context, descriptor string, purchaseDate civil.Date) (decimal.Decimal, error) {
	descriptor = domain.NormalizeDescriptor(descriptor)
	if descriptor == "" {
		return decimal.Zero, apperrors.ErrInvalidDescriptor
	}
	if domain.IsUSD(descriptor) {
		return decimal.NewFromInt(1), nil
	}

	query := domain.NewRateQuery(descriptor, purchaseDate)
	resp, err := s.gateway.LatestRate(ctx, query.Descriptor, query.WindowStart, query.WindowEnd)
	if err != nil {
		return decimal.Zero, s.mapRateError(ctx, query, err)
	}

	record, err := s.pickRate(ctx, query, resp)
	if err != nil {
		return decimal.Zero, err
	}
	return record.Rate, nil
}

// pickRate returns the first usable record of the response. A record dated
// outside the lookback window is skipped even if upstream returned it.
func (s *currencyService) pickRate(ctx context.Context, query domain.RateQuery, resp *treasury.RateResponse) (domain.RateRecord, error) {
	if resp == nil {
		return domain.RateRecord{}, s.noData(query)
	}
	for _, rec := range resp.Data {
		raw := strings.TrimSpace(rec.ExchangeRate)
		if raw == "" {
			continue
		}
		recordDate, dateErr := civil.ParseDate(strings.TrimSpace(rec.RecordDate))
		if dateErr == nil && !query.Contains(recordDate) {
			s.LogDebug(ctx, "Ignoring exchange rate outside lookback window",
				slog.String("currency", query.Descriptor),
				slog.String("record_date", rec.RecordDate))
			continue
		}

		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.RateRecord{}, s.mapRateError(ctx, query,
				&treasury.UpstreamTransportError{Malformed: true, Err: fmt.Errorf("exchange_rate %q: %w", raw, err)})
		}
		if !rate.IsPositive() {
			return domain.RateRecord{}, s.mapRateError(ctx, query,
				&treasury.UpstreamTransportError{Malformed: true, Err: fmt.Errorf("exchange_rate %q is not positive", raw)})
		}
		return domain.RateRecord{Descriptor: query.Descriptor, Rate: rate, RecordDate: recordDate}, nil
	}
	return domain.RateRecord{}, s.noData(query)
}

func (s *currencyService) noData(query domain.RateQuery) error {
	return &apperrors.ExchangeRateNotFoundError{
		Descriptor:   query.Descriptor,
		PurchaseDate: query.WindowEnd,
		Cause:        apperrors.CauseNoData,
	}
}

// mapRateError folds every upstream failure into ExchangeRateNotFoundError,
// keeping the cause category and logging the original error.
func (s *currencyService) mapRateError(ctx context.Context, query domain.RateQuery, err error) error {
	out := &apperrors.ExchangeRateNotFoundError{
		Descriptor:   query.Descriptor,
		PurchaseDate: query.WindowEnd,
		Cause:        apperrors.CauseUpstreamUnreachable,
		Detail:       err.Error(),
		Err:          err,
	}

	var upstreamErr *treasury.UpstreamTransportError
	if errors.As(err, &upstreamErr) {
		switch {
		case upstreamErr.Malformed:
			out.Cause = apperrors.CauseMalformedResponse
		case upstreamErr.StatusCode != 0:
			out.Cause = apperrors.CauseUpstreamStatus
			out.Detail = fmt.Sprintf("status %d: %s", upstreamErr.StatusCode, upstreamErr.Body)
		}
	}

	s.LogError(ctx, err, "Error fetching exchange rate from treasury API",
		slog.String("currency", query.Descriptor),
		slog.String("purchase_date", query.WindowEnd.String()),
		slog.String("cause", string(out.Cause)))
	return out
}

func (s *currencyService) Convert(ctx context.Context, amountUSD decimal.Decimal, target string, purchaseDate civil.Date) (domain.Conversion, error) {
	if domain.IsUSD(target) {
		return domain.Conversion{Converted: amountUSD, Rate: decimal.NewFromInt(1)}, nil
	}
	rate, err := s.ResolveRate(ctx, target, purchaseDate)
	if err != nil {
		return domain.Conversion{}, err
	}
	return domain.Conversion{Converted: utils.RoundMoney(amountUSD.Mul(rate)), Rate: rate}, nil
}
