package firebase

import (
	"context"
	"encoding/json"
	"errors"

	"firebase.google.com/go/v4/db"

	"github.com/jhoicas/caja-api/internal/infrastructure/rtdb"
)

var _ rtdb.Store = (*Store)(nil)

var errNoDatabase = errors.New("firebase: FIREBASE_DATABASE_URL no configurada")

// Store implementa rtdb.Store sobre Firebase Realtime Database.
type Store struct {
	app *App
}

// NewStore construye el adaptador.
func NewStore(app *App) *Store {
	return &Store{app: app}
}

func (s *Store) ref(ctx context.Context, path string) (*db.Ref, error) {
	_, client, err := s.app.clients(ctx)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errNoDatabase
	}
	return client.NewRef(path), nil
}

func (s *Store) Get(ctx context.Context, path string) (json.RawMessage, error) {
	ref, err := s.ref(ctx, path)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := ref.Get(ctx, &raw); err != nil {
		return nil, err
	}
	if string(raw) == "null" {
		return nil, nil
	}
	return raw, nil
}

func (s *Store) Children(ctx context.Context, path string) (map[string]json.RawMessage, error) {
	ref, err := s.ref(ctx, path)
	if err != nil {
		return nil, err
	}
	var children map[string]json.RawMessage
	if err := ref.Get(ctx, &children); err != nil {
		return nil, err
	}
	return children, nil
}

func (s *Store) Set(ctx context.Context, path string, value any) error {
	ref, err := s.ref(ctx, path)
	if err != nil {
		return err
	}
	return ref.Set(ctx, value)
}

func (s *Store) Update(ctx context.Context, path string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	ref, err := s.ref(ctx, path)
	if err != nil {
		return err
	}
	return ref.Update(ctx, fields)
}

func (s *Store) Push(ctx context.Context, path string, value any) (string, error) {
	ref, err := s.ref(ctx, path)
	if err != nil {
		return "", err
	}
	child, err := ref.Push(ctx, value)
	if err != nil {
		return "", err
	}
	return child.Key, nil
}

func (s *Store) Delete(ctx context.Context, path string) error {
	ref, err := s.ref(ctx, path)
	if err != nil {
		return err
	}
	return ref.Delete(ctx)
}
