package openapi

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validates(t *testing.T) {
	doc := Document("Rinha Backend", "1.0.0")

	require.NoError(t, doc.Validate(context.Background()))
}

func TestDocument_DescribesRoutes(t *testing.T) {
	doc := Document("Rinha Backend", "1.0.0")

	for _, path := range []string{"/pessoas", "/pessoas/{id}", "/contagem-pessoas", "/getAllPessoa"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}

	item := doc.Paths.Find("/pessoas")
	require.NotNil(t, item)
	assert.NotNil(t, item.Post)
	assert.NotNil(t, item.Get)
	assert.NotNil(t, item.Post.Responses.Status(422))
}

func TestDocument_MarshalsPersonSchema(t *testing.T) {
	raw, err := json.Marshal(Document("Rinha Backend", "1.0.0"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	schemas := doc["components"].(map[string]any)["schemas"].(map[string]any)
	person := schemas["Pessoa"].(map[string]any)
	props := person["properties"].(map[string]any)

	assert.Contains(t, props, "apelido")
	assert.Contains(t, props, "nome")
	assert.Contains(t, props, "nascimento")
	assert.Contains(t, props, "stack")
	assert.Contains(t, props, "id")

	nickname := props["apelido"].(map[string]any)
	assert.EqualValues(t, 32, nickname["maxLength"])
}
