package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert cuenta: %w", dup)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("conexión rechazada")))
}

func TestSplitPath(t *testing.T) {
	coll, key, err := splitPath("/ventas/abc/")
	require.NoError(t, err)
	assert.Equal(t, "ventas", coll)
	assert.Equal(t, "abc", key)

	for _, p := range []string{"ventas", "", "ventas/", "ventas/a/b"} {
		_, _, err := splitPath(p)
		assert.Error(t, err, p)
	}
}
