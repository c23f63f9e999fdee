package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/infrastructure/localauth"
)

var _ localauth.AccountStore = (*AccountRepo)(nil)

// AccountRepo cuentas del proveedor de identidad local (tabla cuentas).
type AccountRepo struct {
	db querier
}

// NewAccountRepository construye el adaptador.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{db: pool}
}

// Create persiste una cuenta nueva.
func (r *AccountRepo) Create(ctx context.Context, a *localauth.Account) error {
	query := `
		INSERT INTO cuentas (uid, email, password_hash, display_name, creado_en)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, a.UID, a.Email, a.PasswordHash, a.DisplayName, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert cuenta: %w", err)
	}
	return nil
}

// GetByEmail obtiene una cuenta por email; nil si no existe.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*localauth.Account, error) {
	return r.findOne(ctx, `WHERE email = $1`, email)
}

// GetByID obtiene una cuenta por UID; nil si no existe.
func (r *AccountRepo) GetByID(ctx context.Context, uid string) (*localauth.Account, error) {
	return r.findOne(ctx, `WHERE uid = $1`, uid)
}

func (r *AccountRepo) findOne(ctx context.Context, where string, arg string) (*localauth.Account, error) {
	query := `SELECT uid, email, password_hash, display_name, creado_en FROM cuentas ` + where
	var a localauth.Account
	err := r.db.QueryRow(ctx, query, arg).Scan(&a.UID, &a.Email, &a.PasswordHash, &a.DisplayName, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cuenta: %w", err)
	}
	return &a, nil
}

// UpdateDisplayName cambia el nombre visible.
func (r *AccountRepo) UpdateDisplayName(ctx context.Context, uid, name string) error {
	tag, err := r.db.Exec(ctx, `UPDATE cuentas SET display_name = $2 WHERE uid = $1`, uid, name)
	if err != nil {
		return fmt.Errorf("update cuenta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete elimina la cuenta.
func (r *AccountRepo) Delete(ctx context.Context, uid string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cuentas WHERE uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("delete cuenta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
