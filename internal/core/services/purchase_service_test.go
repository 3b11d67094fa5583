package services_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/purchase_conversion_api/internal/apperrors"
	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	portssvc "github.com/SscSPs/purchase_conversion_api/internal/core/ports/services"
	"github.com/SscSPs/purchase_conversion_api/internal/core/services"
	"github.com/SscSPs/purchase_conversion_api/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	repo     *MockPurchaseRepository
	currency *MockCurrencyService
	service  portssvc.PurchaseSvcFacade
	now      time.Time
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.repo = new(MockPurchaseRepository)
	suite.currency = new(MockCurrencyService)
	suite.now = time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewPurchaseService(suite.repo, suite.currency,
		services.WithConversionConcurrency(2),
		services.WithPurchaseClock(func() time.Time { return suite.now }))
}

func amountPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func (suite *PurchaseServiceTestSuite) validRequest() dto.CreatePurchaseRequest {
	return dto.CreatePurchaseRequest{
		Date:           "2025-01-20",
		Description:    "Laptop Computer",
		PurchaseAmount: amountPtr("1299.99"),
		Country:        "Canada",
	}
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_Success() {
	ctx := context.Background()
	suite.currency.On("LookupCatalog", ctx, "Canada").
		Return(domain.NewCatalogEntry("Canada", "Canada-Dollar"), true).Once()
	suite.repo.On("Create", ctx, mock.MatchedBy(func(p domain.Purchase) bool {
		_, err := uuid.Parse(p.ID)
		return err == nil &&
			p.Date == date(2025, 1, 20) &&
			p.Description == "Laptop Computer" &&
			p.PurchaseAmount.Equal(dec("1299.99")) &&
			p.Country == "Canada" &&
			p.CurrencyCode == "Canada-Dollar" &&
			p.CreatedAt.Equal(suite.now)
	})).Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, suite.validRequest())

	suite.Require().NoError(err)
	suite.Require().NotNil(purchase)
	suite.Equal("Canada-Dollar", purchase.CurrencyCode)
	suite.repo.AssertExpectations(suite.T())
	suite.currency.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_RoundsAmountAndTrims() {
	ctx := context.Background()
	req := suite.validRequest()
	req.PurchaseAmount = amountPtr("10.005")
	req.Description = "  Coffee  "
	req.Country = " Canada "
	suite.currency.On("LookupCatalog", ctx, "Canada").
		Return(domain.NewCatalogEntry("Canada", "Canada-Dollar"), true).Once()
	suite.repo.On("Create", ctx, mock.AnythingOfType("domain.Purchase")).Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("10.01", purchase.PurchaseAmount.StringFixed(2))
	suite.Equal("Coffee", purchase.Description)
	suite.Equal("Canada", purchase.Country)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_UnsupportedCountry() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Country = "Atlantis"
	suite.currency.On("LookupCatalog", ctx, "Atlantis").Return(domain.CatalogEntry{}, false).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Country 'Atlantis' is not supported. Please select a country from the available list.")
	suite.repo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_ValidationErrors() {
	cases := map[string]func(r *dto.CreatePurchaseRequest){
		"bad date":        func(r *dto.CreatePurchaseRequest) { r.Date = "20/01/2025" },
		"blank desc":      func(r *dto.CreatePurchaseRequest) { r.Description = "   " },
		"long desc":       func(r *dto.CreatePurchaseRequest) { r.Description = "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz" },
		"missing amount":  func(r *dto.CreatePurchaseRequest) { r.PurchaseAmount = nil },
		"zero amount":     func(r *dto.CreatePurchaseRequest) { r.PurchaseAmount = amountPtr("0.004") },
		"negative amount": func(r *dto.CreatePurchaseRequest) { r.PurchaseAmount = amountPtr("-5") },
	}
	for name, mutate := range cases {
		req := suite.validRequest()
		mutate(&req)

		purchase, err := suite.service.CreatePurchase(context.Background(), req)

		suite.Nil(purchase, name)
		suite.ErrorIs(err, apperrors.ErrValidation, name)
	}
	suite.repo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_RepoError() {
	ctx := context.Background()
	suite.currency.On("LookupCatalog", ctx, "Canada").
		Return(domain.NewCatalogEntry("Canada", "Canada-Dollar"), true).Once()
	suite.repo.On("Create", ctx, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.CreatePurchase(ctx, suite.validRequest())

	suite.ErrorIs(err, assert.AnError)
}

func (suite *PurchaseServiceTestSuite) TestGetPurchaseByID() {
	ctx := context.Background()
	id := uuid.NewString()
	expected := &domain.Purchase{ID: id}
	suite.repo.On("FindByID", ctx, id).Return(expected, nil).Once()

	purchase, err := suite.service.GetPurchaseByID(ctx, id)

	suite.Require().NoError(err)
	suite.Equal(expected, purchase)
}

func (suite *PurchaseServiceTestSuite) TestGetPurchaseByID_InvalidIDIsNotFound() {
	_, err := suite.service.GetPurchaseByID(context.Background(), "not-a-uuid")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.repo.AssertNotCalled(suite.T(), "FindByID", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestDeletePurchase() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.repo.On("Delete", ctx, id).Return(nil).Once()
	missing := uuid.NewString()
	suite.repo.On("Delete", ctx, missing).Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeletePurchase(ctx, id))
	suite.ErrorIs(suite.service.DeletePurchase(ctx, missing), apperrors.ErrNotFound)
	suite.ErrorIs(suite.service.DeletePurchase(ctx, "nope"), apperrors.ErrNotFound)
}

func (suite *PurchaseServiceTestSuite) purchases() []domain.Purchase {
	return []domain.Purchase{
		{ID: "p1", Date: date(2025, 1, 20), PurchaseAmount: dec("1299.99"), Country: "Canada", CurrencyCode: "Canada-Dollar"},
		{ID: "p2", Date: date(2025, 1, 20), PurchaseAmount: dec("10.00"), Country: "Canada", CurrencyCode: "Canada-Dollar"},
		{ID: "p3", Date: date(2019, 3, 1), PurchaseAmount: dec("50.00"), Country: "Mexico", CurrencyCode: "Mexico-Peso"},
	}
}

func (suite *PurchaseServiceTestSuite) TestListWithConversion_ResolvesEachDateOnce() {
	ctx := context.Background()
	suite.repo.On("ListByDateDesc", ctx).Return(suite.purchases(), nil).Once()
	suite.currency.On("ResolveRate", ctx, "Canada-Dollar", date(2025, 1, 20)).Return(dec("1.35"), nil).Once()
	suite.currency.On("ResolveRate", ctx, "Canada-Dollar", date(2019, 3, 1)).
		Return(decimal.Zero, &apperrors.ExchangeRateNotFoundError{Descriptor: "Canada-Dollar", PurchaseDate: date(2019, 3, 1), Cause: apperrors.CauseNoData}).Once()

	out, err := suite.service.ListPurchasesWithConversion(ctx, " Canada-Dollar ")

	suite.Require().NoError(err)
	suite.Require().Len(out, 3)
	suite.Equal("p1", out[0].ID)
	suite.Equal("Canada-Dollar", out[0].TargetCurrency)
	suite.Require().NotNil(out[0].ConvertedAmount)
	suite.Equal("1754.99", out[0].ConvertedAmount.String())
	suite.True(out[0].ExchangeRate.Equal(dec("1.35")))
	suite.Require().NotNil(out[1].ConvertedAmount)
	suite.Equal("13.50", out[1].ConvertedAmount.StringFixed(2))
	suite.Nil(out[2].ConvertedAmount)
	suite.Nil(out[2].ExchangeRate)
	suite.currency.AssertNumberOfCalls(suite.T(), "ResolveRate", 2)
}

func (suite *PurchaseServiceTestSuite) TestListWithConversion_USD() {
	ctx := context.Background()
	suite.repo.On("ListByDateDesc", ctx).Return(suite.purchases(), nil).Once()

	out, err := suite.service.ListPurchasesWithConversion(ctx, "United States-Dollar")

	suite.Require().NoError(err)
	for _, p := range out {
		suite.Require().NotNil(p.ConvertedAmount)
		suite.True(p.ConvertedAmount.Equal(p.PurchaseAmount))
		suite.True(p.ExchangeRate.Equal(decimal.NewFromInt(1)))
	}
	suite.currency.AssertNotCalled(suite.T(), "ResolveRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestListWithConversion_BlankTarget() {
	_, err := suite.service.ListPurchasesWithConversion(context.Background(), "  ")

	suite.ErrorIs(err, apperrors.ErrInvalidDescriptor)
	suite.repo.AssertNotCalled(suite.T(), "ListByDateDesc", mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestListPurchases_RepoError() {
	ctx := context.Background()
	suite.repo.On("ListByDateDesc", ctx).Return(nil, assert.AnError).Once()

	_, err := suite.service.ListPurchasesWithConversion(ctx, "Canada-Dollar")

	suite.ErrorIs(err, assert.AnError)
}

func TestPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}

// concurrencyProbe records the largest number of rate lookups seen in flight.
type concurrencyProbe struct {
	MockCurrencyService
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (p *concurrencyProbe) ResolveRate(ctx context.Context, descriptor string, purchaseDate civil.Date) (decimal.Decimal, error) {
	n := p.inFlight.Add(1)
	defer p.inFlight.Add(-1)
	for {
		old := p.peak.Load()
		if n <= old || p.peak.CompareAndSwap(old, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	return decimal.NewFromInt(2), nil
}

func TestListWithConversion_BoundsConcurrency(t *testing.T) {
	repo := new(MockPurchaseRepository)
	var purchases []domain.Purchase
	for d := 1; d <= 12; d++ {
		purchases = append(purchases, domain.Purchase{ID: uuid.NewString(), Date: date(2025, 1, d), PurchaseAmount: dec("1.00")})
	}
	repo.On("ListByDateDesc", mock.Anything).Return(purchases, nil).Once()
	probe := &concurrencyProbe{}

	svc := services.NewPurchaseService(repo, probe, services.WithConversionConcurrency(3))
	out, err := svc.ListPurchasesWithConversion(context.Background(), "Canada-Dollar")

	assert.NoError(t, err)
	assert.Len(t, out, 12)
	for _, p := range out {
		if assert.NotNil(t, p.ConvertedAmount) {
			assert.Equal(t, "2.00", p.ConvertedAmount.StringFixed(2))
		}
	}
	assert.LessOrEqual(t, probe.peak.Load(), int32(3))
}
