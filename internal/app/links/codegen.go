package links

import (
	"crypto/rand"
	"fmt"
)

const codeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateCode draws length characters uniformly from the 62-symbol
// alphanumeric alphabet. Rejection sampling keeps the distribution
// uniform; uniqueness is the store's job, not the generator's.
func generateCode(length int) (string, error) {
	alphaLen := len(codeAlphabet)
	cutoff := (256 / alphaLen) * alphaLen

	out := make([]byte, length)
	filled := 0

	var buf [32]byte
	for filled < length {
		if _, err := rand.Read(buf[:]); err != nil {
			return "", fmt.Errorf("rand read: %w", err)
		}

		for _, b := range buf {
			if filled >= length {
				break
			}

			if int(b) >= cutoff {
				continue
			}

			out[filled] = codeAlphabet[int(b)%alphaLen]
			filled++
		}
	}

	return string(out), nil
}
