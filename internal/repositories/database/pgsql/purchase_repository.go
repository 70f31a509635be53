package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/purchase_exchange_app/internal/apperrors"
	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/purchase_exchange_app/internal/models"
	"github.com/SscSPs/purchase_exchange_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPurchaseRepository implements portsrepo.PurchaseRepositoryFacade using pgxpool.
type PgxPurchaseRepository struct {
	BaseRepository
}

func newPgxPurchaseRepository(pool *pgxpool.Pool) *PgxPurchaseRepository {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

// SavePurchase inserts a new purchase.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO purchases (purchase_id, description, amount, transaction_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		m.PurchaseID, m.Description, m.Amount, m.TransactionDate, m.CreatedAt,
	)
	if err != nil {
		return r.wrapWriteError("failed to save purchase", err)
	}
	return nil
}

// FindPurchaseByID retrieves a purchase. Identifiers that are not UUIDs cannot
// exist and are reported as not found without querying.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	if _, err := uuid.Parse(purchaseID); err != nil {
		return nil, apperrors.NewNotFoundError("purchase not found")
	}

	var m models.Purchase
	err := r.Pool.QueryRow(ctx, `
		SELECT purchase_id, description, amount, transaction_date, created_at
		FROM purchases
		WHERE purchase_id = $1`,
		purchaseID,
	).Scan(&m.PurchaseID, &m.Description, &m.Amount, &m.TransactionDate, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("purchase not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find purchase", err)
	}

	purchase := mapping.ToDomainPurchase(m)
	return &purchase, nil
}
