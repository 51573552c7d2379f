package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost factor de trabajo de bcrypt usado para todas las contraseñas.
const Cost = 10

// dummyHash se compara cuando el usuario no existe, para que la respuesta tarde lo mismo.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("linhagro-dummy"), Cost)

// Hash genera el hash bcrypt del secreto. El secreto vacío también se hashea.
func Hash(secret string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), Cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(h), nil
}

// Verify compara secreto y hash. Un hash malformado devuelve false.
func Verify(secret, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}

// VerifyDummy consume el mismo tiempo que Verify y siempre devuelve false.
func VerifyDummy(secret string) bool {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(secret))
	return false
}
