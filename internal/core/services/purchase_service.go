package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/purchase_conversion_api/internal/apperrors"
	"github.com/SscSPs/purchase_conversion_api/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_conversion_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/purchase_conversion_api/internal/core/ports/services"
	"github.com/SscSPs/purchase_conversion_api/internal/dto"
	"github.com/SscSPs/purchase_conversion_api/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultConversionConcurrency bounds concurrent rate lookups in one conversion batch.
const DefaultConversionConcurrency = 4

type purchaseService struct {
	BaseService
	repo        portsrepo.PurchaseRepository
	currency    portssvc.CurrencySvcFacade
	concurrency int
	now         func() time.Time
}

// PurchaseServiceOption configures the purchase service.
type PurchaseServiceOption func(*purchaseService)

// WithConversionConcurrency sets how many rate lookups a conversion batch may run at once.
func WithConversionConcurrency(n int) PurchaseServiceOption {
	return func(s *purchaseService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithPurchaseClock overrides the clock used for CreatedAt.
func WithPurchaseClock(now func() time.Time) PurchaseServiceOption {
	return func(s *purchaseService) {
		s.now = now
	}
}

// NewPurchaseService creates a purchase service.
func NewPurchaseService(repo portsrepo.PurchaseRepository, currency portssvc.CurrencySvcFacade, options ...PurchaseServiceOption) portssvc.PurchaseSvcFacade {
	svc := &purchaseService{
		repo:        repo,
		currency:    currency,
		concurrency: DefaultConversionConcurrency,
		now:         time.Now,
	}
	for _, opt := range options {
		opt(svc)
	}
	return svc
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	date, err := civil.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(description) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description must not exceed %d characters", apperrors.ErrValidation, domain.MaxDescriptionLength)
	}

	if req.PurchaseAmount == nil {
		return nil, fmt.Errorf("%w: purchase amount is required", apperrors.ErrValidation)
	}
	amount := utils.RoundMoney(*req.PurchaseAmount)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: purchase amount must be positive", apperrors.ErrValidation)
	}

	country := strings.TrimSpace(req.Country)
	entry, ok := s.currency.LookupCatalog(ctx, country)
	if !ok {
		return nil, fmt.Errorf("%w: Country '%s' is not supported. Please select a country from the available list.", apperrors.ErrValidation, country)
	}

	purchase := domain.Purchase{
		ID:             uuid.NewString(),
		Date:           date,
		Description:    description,
		PurchaseAmount: amount,
		Country:        country,
		CurrencyCode:   entry.CurrencyCode,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.repo.Create(ctx, purchase); err != nil {
		s.LogError(ctx, err, "Failed to create purchase", slog.String("purchase_id", purchase.ID))
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	s.LogInfo(ctx, "Purchase created",
		slog.String("purchase_id", purchase.ID),
		slog.String("currency_code", purchase.CurrencyCode))
	return &purchase, nil
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, id string) (*domain.Purchase, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("purchase %s: %w", id, apperrors.ErrNotFound)
	}
	purchase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get purchase", slog.String("purchase_id", id))
		}
		return nil, err
	}
	return purchase, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	purchases, err := s.repo.ListByDateDesc(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases")
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

func (s *purchaseService) ListPurchasesWithConversion(ctx context.Context, targetCurrency string) ([]domain.PurchaseWithConversion, error) {
	target := domain.NormalizeDescriptor(targetCurrency)
	if target == "" {
		return nil, apperrors.ErrInvalidDescriptor
	}

	purchases, err := s.ListPurchases(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PurchaseWithConversion, len(purchases))
	for i, p := range purchases {
		out[i] = domain.PurchaseWithConversion{Purchase: p, TargetCurrency: target}
	}

	if domain.IsUSD(target) {
		one := decimal.NewFromInt(1)
		for i := range out {
			amount := out[i].PurchaseAmount
			out[i].ConvertedAmount = &amount
			out[i].ExchangeRate = &one
		}
		return out, nil
	}

	rates := s.resolveRates(ctx, target, purchases)
	for i := range out {
		rate, ok := rates[out[i].Date]
		if !ok {
			continue
		}
		converted := utils.RoundMoney(out[i].PurchaseAmount.Mul(rate))
		out[i].ConvertedAmount = &converted
		out[i].ExchangeRate = &rate
	}
	return out, nil
}

// resolveRates looks up the target rate once per distinct purchase date. Dates
// without a usable rate are left out of the result.
func (s *purchaseService) resolveRates(ctx context.Context, target string, purchases []domain.Purchase) map[civil.Date]decimal.Decimal {
	var dates []civil.Date
	index := make(map[civil.Date]int)
	for _, p := range purchases {
		if _, ok := index[p.Date]; !ok {
			index[p.Date] = len(dates)
			dates = append(dates, p.Date)
		}
	}

	found := make([]bool, len(dates))
	values := make([]decimal.Decimal, len(dates))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, date := range dates {
		g.Go(func() error {
			rate, err := s.currency.ResolveRate(ctx, target, date)
			if err != nil {
				s.GetLogger(ctx).Warn("Purchase cannot be converted",
					slog.String("currency", target),
					slog.String("purchase_date", date.String()),
					slog.String("error", err.Error()))
				return nil
			}
			values[i] = rate
			found[i] = true
			return nil
		})
	}
	_ = g.Wait()

	rates := make(map[civil.Date]decimal.Decimal, len(dates))
	for i, date := range dates {
		if found[i] {
			rates[date] = values[i]
		}
	}
	return rates
}

func (s *purchaseService) DeletePurchase(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("purchase %s: %w", id, apperrors.ErrNotFound)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete purchase", slog.String("purchase_id", id))
		}
		return err
	}
	s.LogInfo(ctx, "Purchase deleted", slog.String("purchase_id", id))
	return nil
}
