package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes bytes de entropía de los tokens opacos (256 bits; el mínimo exigido es 160).
const tokenBytes = 32

// New genera un token opaco criptográficamente aleatorio en hex (64 caracteres).
// Se usa para invitaciones de empresa y reset de password: no lleva claims y su
// validez se decide únicamente con un lookup en el almacén.
func New() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("token: generar aleatorio: %w", err)
	}
	return hex.EncodeToString(b), nil
}
