package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/caja-api/internal/infrastructure/rtdb"
)

var _ rtdb.Store = (*NodeStore)(nil)

// NodeStore implementación de rtdb.Store sobre la tabla nodos.
type NodeStore struct {
	db querier
}

// NewNodeStore construye el adaptador.
func NewNodeStore(pool *pgxpool.Pool) *NodeStore {
	return &NodeStore{db: pool}
}

// splitPath acepta solo rutas de documento "coleccion/clave".
func splitPath(path string) (coll, key string, err error) {
	coll, key, ok := strings.Cut(strings.Trim(path, "/"), "/")
	if !ok || coll == "" || key == "" || strings.Contains(key, "/") {
		return "", "", fmt.Errorf("postgres: ruta de documento inválida %q", path)
	}
	return coll, key, nil
}

func (s *NodeStore) Get(ctx context.Context, path string) (json.RawMessage, error) {
	coll, key, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	var raw []byte
	err = s.db.QueryRow(ctx, `SELECT valor FROM nodos WHERE coleccion = $1 AND clave = $2`, coll, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nodo: %w", err)
	}
	return raw, nil
}

func (s *NodeStore) Children(ctx context.Context, path string) (map[string]json.RawMessage, error) {
	rows, err := s.db.Query(ctx,
		`SELECT clave, valor FROM nodos WHERE coleccion = $1 ORDER BY clave`, strings.Trim(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("list nodos: %w", err)
	}
	defer rows.Close()

	out := map[string]json.RawMessage{}
	for rows.Next() {
		var key string
		var raw []byte
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("scan nodo: %w", err)
		}
		out[key] = raw
	}
	return out, rows.Err()
}

func (s *NodeStore) Set(ctx context.Context, path string, value any) error {
	coll, key, err := splitPath(path)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar nodo: %w", err)
	}
	query := `
		INSERT INTO nodos (coleccion, clave, valor) VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (coleccion, clave) DO UPDATE SET valor = EXCLUDED.valor, actualizado_en = now()`
	if _, err := s.db.Exec(ctx, query, coll, key, string(raw)); err != nil {
		return fmt.Errorf("set nodo: %w", err)
	}
	return nil
}

// Update fusiona los campos de primer nivel con el operador || de JSONB.
func (s *NodeStore) Update(ctx context.Context, path string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	coll, key, err := splitPath(path)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("serializar campos: %w", err)
	}
	query := `
		INSERT INTO nodos (coleccion, clave, valor) VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (coleccion, clave) DO UPDATE SET valor = nodos.valor || EXCLUDED.valor, actualizado_en = now()`
	if _, err := s.db.Exec(ctx, query, coll, key, string(raw)); err != nil {
		return fmt.Errorf("update nodo: %w", err)
	}
	return nil
}

// Push usa UUIDv7 como clave: orden lexicográfico igual a orden de inserción.
func (s *NodeStore) Push(ctx context.Context, path string, value any) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generar clave: %w", err)
	}
	key := id.String()
	if err := s.Set(ctx, rtdb.Child(strings.Trim(path, "/"), key), value); err != nil {
		return "", err
	}
	return key, nil
}

func (s *NodeStore) Delete(ctx context.Context, path string) error {
	coll, key, err := splitPath(path)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM nodos WHERE coleccion = $1 AND clave = $2`, coll, key); err != nil {
		return fmt.Errorf("delete nodo: %w", err)
	}
	return nil
}
