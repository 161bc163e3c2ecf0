package token_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Talento-api/pkg/token"
)

// Los tokens opacos deben ser hex de 32 bytes aleatorios (64 caracteres).
func TestNew_FormatoHexDe32Bytes(t *testing.T) {
	tok, err := token.New()
	require.NoError(t, err)

	raw, err := hex.DecodeString(tok)
	require.NoError(t, err, "el token debe ser hex válido")
	assert.Len(t, raw, 32, "el token debe codificar 32 bytes de entropía")
}

// Dos llamadas consecutivas jamás deben colisionar.
func TestNew_TokensDistintos(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := token.New()
		require.NoError(t, err)
		assert.False(t, seen[tok], "token repetido: %s", tok)
		seen[tok] = true
	}
}
