package delivery

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// VerificationPINLength is the number of digits in a delivery's
// verification PIN.
const VerificationPINLength = 4

// NewVerificationPIN generates a uniform random numeric PIN of fixed length.
// PINs confirm the physical handoff for a single delivery; collisions across
// deliveries are acceptable, so no uniqueness check is performed.
func NewVerificationPIN() (string, error) {
	digits := make([]byte, VerificationPINLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate verification pin: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
