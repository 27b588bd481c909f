package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the work factor used when the configured cost is
// out of bcrypt's valid range.
const DefaultBcryptCost = 12

// dummyHash is compared against when a login targets an unknown email,
// so that the request costs the same as a real verification.
var dummyHash = []byte("$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW")

// HashPassword produces a salted bcrypt hash of password. The salt is
// generated per call and embedded in the hash.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. A malformed
// hash is indistinguishable from a wrong password.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// VerifyDummy burns one bcrypt comparison against a fixed hash. Used to
// equalize timing when the target user does not exist.
func VerifyDummy(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
