package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/purchase_exchange_app/internal/apperrors"
	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/purchase_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/purchase_exchange_app/internal/dto"
	"github.com/SscSPs/purchase_exchange_app/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// purchaseService implements the PurchaseSvcFacade interface
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	metrics      *metrics.Metrics
	now          func() time.Time
}

// PurchaseServiceOption is a functional option for configuring the purchase service
type PurchaseServiceOption func(*purchaseService)

// WithPurchaseMetrics records created purchases on m.
func WithPurchaseMetrics(m *metrics.Metrics) PurchaseServiceOption {
	return func(s *purchaseService) {
		s.metrics = m
	}
}

// WithPurchaseClock overrides the clock used for CreatedAt and the future-date check.
func WithPurchaseClock(now func() time.Time) PurchaseServiceOption {
	return func(s *purchaseService) {
		s.now = now
	}
}

// NewPurchaseService creates a new purchase service with the provided options
func NewPurchaseService(repo portsrepo.PurchaseRepositoryFacade, options ...PurchaseServiceOption) portssvc.PurchaseSvcFacade {
	svc := &purchaseService{
		purchaseRepo: repo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

// CreatePurchase re-checks the request invariants, since the service may be
// called without going through request binding, then stores the purchase.
func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	now := s.now().UTC()

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if len([]rune(req.Description)) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description must be at most %d characters", apperrors.ErrValidation, domain.MaxDescriptionLength)
	}
	if req.Amount == nil {
		return nil, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	amount := req.Amount.Round(domain.AmountScale)
	if !amount.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	txDate, err := domain.ParseDate(req.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction date must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}
	if txDate.After(domain.NormalizeDate(now)) {
		return nil, fmt.Errorf("%w: transaction date cannot be in the future", apperrors.ErrValidation)
	}

	purchase := domain.Purchase{
		ID:              uuid.NewString(),
		Description:     req.Description,
		Amount:          amount,
		TransactionDate: txDate,
		CreatedAt:       now,
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		s.LogError(ctx, err, "Failed to save purchase in repository", slog.String("purchase_id", purchase.ID))
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	s.metrics.IncPurchasesCreated()
	s.LogInfo(ctx, "Purchase created",
		slog.String("purchase_id", purchase.ID),
		slog.String("amount", purchase.Amount.StringFixed(domain.AmountScale)),
		slog.String("transaction_date", domain.FormatDate(purchase.TransactionDate)))
	return &purchase, nil
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		// not found is an expected outcome
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find purchase by ID in repository", slog.String("purchase_id", purchaseID))
		}
		return nil, err
	}
	return purchase, nil
}
