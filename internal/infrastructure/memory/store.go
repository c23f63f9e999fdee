// Package memory implementa el almacén jerárquico y las cuentas locales en memoria del proceso.
// Solo para desarrollo (STORE_DRIVER=memory) y tests; nada sobrevive a un reinicio.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/caja-api/internal/infrastructure/rtdb"
)

var _ rtdb.Store = (*Store)(nil)

// Store árbol de dos niveles: colección -> clave -> documento JSON.
type Store struct {
	mu    sync.RWMutex
	nodes map[string]map[string]json.RawMessage
}

// NewStore crea un árbol vacío.
func NewStore() *Store {
	return &Store{nodes: make(map[string]map[string]json.RawMessage)}
}

func splitPath(path string) (coll, key string, err error) {
	coll, key, ok := strings.Cut(strings.Trim(path, "/"), "/")
	if !ok || coll == "" || key == "" || strings.Contains(key, "/") {
		return "", "", fmt.Errorf("memory: ruta de documento inválida %q", path)
	}
	return coll, key, nil
}

func (s *Store) Get(_ context.Context, path string) (json.RawMessage, error) {
	coll, key, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.nodes[coll][key]
	if !ok {
		return nil, nil
	}
	return append(json.RawMessage(nil), raw...), nil
}

func (s *Store) Children(_ context.Context, path string) (map[string]json.RawMessage, error) {
	coll := strings.Trim(path, "/")
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]json.RawMessage, len(s.nodes[coll]))
	for k, v := range s.nodes[coll] {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out, nil
}

func (s *Store) Set(_ context.Context, path string, value any) error {
	coll, key, err := splitPath(path)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memory: serializar: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(coll, key, raw)
	return nil
}

func (s *Store) Update(_ context.Context, path string, fields map[string]any) error {
	coll, key, err := splitPath(path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := map[string]json.RawMessage{}
	if existing, ok := s.nodes[coll][key]; ok {
		if err := json.Unmarshal(existing, &doc); err != nil {
			return fmt.Errorf("memory: %s no es un objeto: %w", path, err)
		}
	}
	for k, v := range fields {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("memory: serializar %s: %w", k, err)
		}
		doc[k] = b
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.put(coll, key, raw)
	return nil
}

func (s *Store) Push(ctx context.Context, path string, value any) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("memory: generar clave: %w", err)
	}
	key := id.String()
	if err := s.Set(ctx, rtdb.Child(strings.Trim(path, "/"), key), value); err != nil {
		return "", err
	}
	return key, nil
}

func (s *Store) Delete(_ context.Context, path string) error {
	coll, key, err := splitPath(path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.nodes[coll], key)
	return nil
}

func (s *Store) put(coll, key string, raw json.RawMessage) {
	if s.nodes[coll] == nil {
		s.nodes[coll] = make(map[string]json.RawMessage)
	}
	s.nodes[coll][key] = raw
}
