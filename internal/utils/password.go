package utils

import "golang.org/x/crypto/bcrypt"

// MinBcryptCost is the floor for the configured work factor. Anything lower
// would not resist offline brute force at current hardware speeds.
const MinBcryptCost = 12

// HashPassword returns a bcrypt hash of plain using the given cost. Costs
// below MinBcryptCost are raised to it.
func HashPassword(plain string, cost int) (string, error) {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares bcrypt hash and plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
