// Package password genera y verifica el par (salt, hash) que se guarda en users.
// Los repositorios tratan ambos valores como opacos.
package password

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch la contraseña no corresponde al hash guardado.
var ErrMismatch = errors.New("password: no coincide")

// Hasher calcula hashes bcrypt sobre el digest SHA-256 de salt+password
// (bcrypt solo admite 72 bytes de entrada).
type Hasher struct {
	cost int
}

// NewHasher cost <= 0 usa bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash genera un salt nuevo y devuelve (salt, hash).
func (h *Hasher) Hash(plain string) (salt, hash string, err error) {
	salt = uuid.NewString()
	b, err := bcrypt.GenerateFromPassword(digest(salt, plain), h.cost)
	if err != nil {
		return "", "", fmt.Errorf("password: hash: %w", err)
	}
	return salt, string(b), nil
}

// Verify compara plain contra el par guardado.
func (h *Hasher) Verify(plain, salt, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), digest(salt, plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("password: verify: %w", err)
	}
	return nil
}

func digest(salt, plain string) []byte {
	sum := sha256.Sum256([]byte(salt + plain))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
