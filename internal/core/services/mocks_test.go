package services_test

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/purchase_conversion_api/internal/adapters/treasury"
	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TreasuryGateway ---
type MockTreasuryGateway struct {
	mock.Mock
}

func (m *MockTreasuryGateway) ListCurrencies(ctx context.Context, pageNumber int) (*treasury.CurrencyPage, error) {
	args := m.Called(ctx, pageNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*treasury.CurrencyPage), args.Error(1)
}

func (m *MockTreasuryGateway) LatestRate(ctx context.Context, descriptor string, from, to civil.Date) (*treasury.RateResponse, error) {
	args := m.Called(ctx, descriptor, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*treasury.RateResponse), args.Error(1)
}

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Create(ctx context.Context, purchase domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id string) (*domain.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListByDateDesc(ctx context.Context) ([]domain.Purchase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock APIKeyRepository ---
type MockAPIKeyRepository struct {
	mock.Mock
}

func (m *MockAPIKeyRepository) Create(ctx context.Context, key *domain.APIKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockAPIKeyRepository) FindByID(ctx context.Context, id int64) (*domain.APIKey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) FindByKey(ctx context.Context, key string) (*domain.APIKey, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) List(ctx context.Context) ([]domain.APIKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock CurrencySvcFacade ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ListCatalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}

func (m *MockCurrencyService) LookupCatalog(ctx context.Context, key string) (domain.CatalogEntry, bool) {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.CatalogEntry), args.Bool(1)
}

func (m *MockCurrencyService) ResolveRate(ctx context.Context, descriptor string, purchaseDate civil.Date) (decimal.Decimal, error) {
	args := m.Called(ctx, descriptor, purchaseDate)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCurrencyService) Convert(ctx context.Context, amountUSD decimal.Decimal, target string, purchaseDate civil.Date) (domain.Conversion, error) {
	args := m.Called(ctx, amountUSD, target, purchaseDate)
	return args.Get(0).(domain.Conversion), args.Error(1)
}

func date(y int, m int, d int) civil.Date {
	return civil.Date{Year: y, Month: time.Month(m), Day: d}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
