package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS nodos (
	coleccion      TEXT        NOT NULL,
	clave          TEXT        NOT NULL,
	valor          JSONB       NOT NULL,
	actualizado_en TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (coleccion, clave)
);

CREATE TABLE IF NOT EXISTS cuentas (
	uid           TEXT        PRIMARY KEY,
	email         TEXT        NOT NULL UNIQUE,
	password_hash TEXT        NOT NULL,
	display_name  TEXT        NOT NULL DEFAULT '',
	creado_en     TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// EnsureSchema crea las tablas si no existen. Es idempotente.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
