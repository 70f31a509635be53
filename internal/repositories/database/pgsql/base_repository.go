package pgsql

import (
	"errors"
	"net/http"

	"github.com/SscSPs/purchase_exchange_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// wrapWriteError maps a failed write onto an AppError. Unique violations become
// conflicts; everything else is a generic storage failure.
func (r *BaseRepository) wrapWriteError(message string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return apperrors.NewAppError(http.StatusConflict, message, err)
	}
	return apperrors.NewAppError(http.StatusInternalServerError, message, err)
}
