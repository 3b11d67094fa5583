package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/purchase_conversion_api/internal/apperrors"
	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	portssvc "github.com/SscSPs/purchase_conversion_api/internal/core/ports/services"
	"github.com/SscSPs/purchase_conversion_api/internal/dto"
	"github.com/SscSPs/purchase_conversion_api/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PurchaseService ---
type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) GetPurchaseByID(ctx context.Context, id string) (*domain.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseService) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseService) ListPurchasesWithConversion(ctx context.Context, targetCurrency string) ([]domain.PurchaseWithConversion, error) {
	args := m.Called(ctx, targetCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseWithConversion), args.Error(1)
}

func (m *MockPurchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseService) DeletePurchase(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ portssvc.PurchaseSvcFacade = (*MockPurchaseService)(nil)

// --- Mock CatalogReader ---
type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) ListCatalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}

func (m *MockCatalogReader) LookupCatalog(ctx context.Context, key string) (domain.CatalogEntry, bool) {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.CatalogEntry), args.Bool(1)
}

// --- Test Suite ---
type PurchaseHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	purchaseService *MockPurchaseService
	catalog         *MockCatalogReader
}

func (suite *PurchaseHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
}

func (suite *PurchaseHandlerTestSuite) SetupTest() {
	suite.router = gin.New()
	suite.purchaseService = new(MockPurchaseService)
	suite.catalog = new(MockCatalogReader)
	handlers.RegisterPurchaseRoutes(suite.router.Group("/api/purchases"), suite.purchaseService, suite.catalog)
}

func (suite *PurchaseHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func samplePurchase() *domain.Purchase {
	return &domain.Purchase{
		ID:             uuid.NewString(),
		Date:           civil.Date{Year: 2025, Month: time.January, Day: 20},
		Description:    "Laptop Computer",
		PurchaseAmount: decimal.RequireFromString("1299.99"),
		Country:        "Canada",
		CurrencyCode:   "Canada-Dollar",
		CreatedAt:      time.Date(2025, 1, 21, 9, 0, 0, 0, time.UTC),
	}
}

func (suite *PurchaseHandlerTestSuite) TestCreatePurchase_Success() {
	p := samplePurchase()
	suite.purchaseService.On("CreatePurchase", mock.Anything, mock.MatchedBy(func(req dto.CreatePurchaseRequest) bool {
		return req.Date == "2025-01-20" && req.Country == "Canada" && req.PurchaseAmount.Equal(p.PurchaseAmount)
	})).Return(p, nil).Once()

	w := suite.do(http.MethodPost, "/api/purchases", map[string]any{
		"date": "2025-01-20", "description": "Laptop Computer", "purchaseAmount": 1299.99, "country": "Canada",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PurchaseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(p.ID, resp.ID)
	suite.Equal("2025-01-20", resp.Date)
	suite.Equal("1299.99", resp.PurchaseAmount)
	suite.Equal("Canada-Dollar", resp.CurrencyCode)
	suite.purchaseService.AssertExpectations(suite.T())
}

func (suite *PurchaseHandlerTestSuite) TestCreatePurchase_BindingErrors() {
	bodies := []map[string]any{
		{"date": "2025-01-20", "description": "   ", "purchaseAmount": 1, "country": "Canada"},
		{"date": "01/20/2025", "description": "x", "purchaseAmount": 1, "country": "Canada"},
		{"date": "2025-01-20", "description": "x", "country": "Canada"},
		{"date": "2025-01-20", "description": "x", "purchaseAmount": 1, "country": ""},
		{"date": "2025-01-20", "description": "this description is far too long to be accepted by the api", "purchaseAmount": 1, "country": "Canada"},
	}
	for _, body := range bodies {
		w := suite.do(http.MethodPost, "/api/purchases", body)
		suite.Equal(http.StatusBadRequest, w.Code, body)
	}
	suite.purchaseService.AssertNotCalled(suite.T(), "CreatePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseHandlerTestSuite) TestCreatePurchase_UnsupportedCountry() {
	suite.purchaseService.On("CreatePurchase", mock.Anything, mock.Anything).
		Return(nil, wrapValidation("Country 'Atlantis' is not supported. Please select a country from the available list.")).Once()

	w := suite.do(http.MethodPost, "/api/purchases", map[string]any{
		"date": "2025-01-20", "description": "x", "purchaseAmount": "10.00", "country": "Atlantis",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"Country 'Atlantis' is not supported. Please select a country from the available list."}`, w.Body.String())
}

func (suite *PurchaseHandlerTestSuite) TestCreatePurchase_ServiceFailure() {
	suite.purchaseService.On("CreatePurchase", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	w := suite.do(http.MethodPost, "/api/purchases", map[string]any{
		"date": "2025-01-20", "description": "x", "purchaseAmount": "10.00", "country": "Canada",
	})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to create purchase"}`, w.Body.String())
}

func (suite *PurchaseHandlerTestSuite) TestGetPurchase() {
	p := samplePurchase()
	suite.purchaseService.On("GetPurchaseByID", mock.Anything, p.ID).Return(p, nil).Once()
	suite.purchaseService.On("GetPurchaseByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/purchases/"+p.ID, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), p.ID)

	w = suite.do(http.MethodGet, "/api/purchases/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PurchaseHandlerTestSuite) TestListPurchases() {
	p := samplePurchase()
	suite.purchaseService.On("ListPurchases", mock.Anything).Return([]domain.Purchase{*p}, nil).Once()

	w := suite.do(http.MethodGet, "/api/purchases", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.PurchaseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
}

func (suite *PurchaseHandlerTestSuite) TestListConverted() {
	p := samplePurchase()
	rate := decimal.RequireFromString("1.35")
	converted := decimal.RequireFromString("1754.99")
	suite.purchaseService.On("ListPurchasesWithConversion", mock.Anything, "Canada-Dollar").Return([]domain.PurchaseWithConversion{
		{Purchase: *p, TargetCurrency: "Canada-Dollar", ConvertedAmount: &converted, ExchangeRate: &rate},
		{Purchase: *p, TargetCurrency: "Canada-Dollar"},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/purchases/converted?currency=Canada-Dollar", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("1754.99", resp[0]["convertedAmount"])
	suite.Equal("1.35", resp[0]["exchangeRate"])
	suite.Equal("Canada-Dollar", resp[0]["targetCurrency"])
	suite.Nil(resp[1]["convertedAmount"])
	suite.Nil(resp[1]["exchangeRate"])
	suite.Contains(resp[1], "convertedAmount")
}

func (suite *PurchaseHandlerTestSuite) TestListConverted_DefaultsToUSD() {
	suite.purchaseService.On("ListPurchasesWithConversion", mock.Anything, "United States-Dollar").
		Return([]domain.PurchaseWithConversion{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/purchases/converted", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
	suite.purchaseService.AssertExpectations(suite.T())
}

func (suite *PurchaseHandlerTestSuite) TestListConverted_BlankCurrency() {
	suite.purchaseService.On("ListPurchasesWithConversion", mock.Anything, "  ").
		Return(nil, apperrors.ErrInvalidDescriptor).Once()

	w := suite.do(http.MethodGet, "/api/purchases/converted?currency=%20%20", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PurchaseHandlerTestSuite) TestListCountries() {
	suite.catalog.On("ListCatalog", mock.Anything).Return([]domain.CatalogEntry{
		domain.NewCatalogEntry("Canada", "Canada-Dollar"),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/purchases/countries", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[{"country":"Canada","currencyCode":"Canada-Dollar","currencyName":"Canada-Dollar"}]`, w.Body.String())
}

func (suite *PurchaseHandlerTestSuite) TestDeletePurchase() {
	suite.purchaseService.On("DeletePurchase", mock.Anything, "abc").Return(nil).Once()
	suite.purchaseService.On("DeletePurchase", mock.Anything, "gone").Return(apperrors.ErrNotFound).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/purchases/abc", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/purchases/gone", nil).Code)
}

func TestPurchaseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}
