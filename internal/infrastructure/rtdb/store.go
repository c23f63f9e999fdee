// Package rtdb contiene el puerto hacia el almacén jerárquico (árbol JSON al estilo
// Firebase Realtime Database) y los repositorios de dominio construidos sobre él.
//
// Disposición del árbol:
//
//	usuarios/{uid}
//	ventas/{id}
//	productos/{id}
package rtdb

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
)

// Colecciones raíz.
const (
	PathUsuarios  = "usuarios"
	PathVentas    = "ventas"
	PathProductos = "productos"
)

// Store operaciones mínimas sobre el árbol. Las implementaciones no reintentan.
type Store interface {
	// Get devuelve el valor en path, o nil si no existe.
	Get(ctx context.Context, path string) (json.RawMessage, error)
	// Children devuelve los hijos directos de path; mapa vacío o nil si no existe.
	Children(ctx context.Context, path string) (map[string]json.RawMessage, error)
	Set(ctx context.Context, path string, value any) error
	// Update fusiona fields sobre el objeto en path (lo crea si no existe).
	Update(ctx context.Context, path string, fields map[string]any) error
	// Push inserta value bajo una clave nueva, única y ordenable por tiempo, y la devuelve.
	Push(ctx context.Context, path string, value any) (string, error)
	Delete(ctx context.Context, path string) error
}

// Child une segmentos de ruta.
func Child(parts ...string) string {
	return strings.Join(parts, "/")
}

// sortedKeys claves en orden lexicográfico; las claves de Push son ordenables por tiempo.
func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// isNull trata ausencia y JSON null igual.
func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}
