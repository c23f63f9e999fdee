package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/caja-api/docs"
)

func TestReadDoc_ListadosDocumentanArreglo(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]struct {
			Description string `json:"description"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))

	for _, path := range []string{"/api/ventas", "/api/productos", "/api/auth/users"} {
		assert.Contains(t, doc.Paths[path]["get"].Description, "Arreglo ordenado por clave", path)
	}
}
