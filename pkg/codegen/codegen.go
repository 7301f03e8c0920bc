package codegen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	charset    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength = 12
)

// Generate returns a random 12-character uppercase alphanumeric redemption
// code. Used when a prize tier's inventory is exhausted. rand.Int keeps the
// character distribution uniform (a plain byte modulo would skew it, since
// 256 is not a multiple of the charset size).
func Generate() (string, error) {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(charset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("can't read random bytes: %w", err)
		}
		buf[i] = charset[n.Int64()]
	}
	return string(buf), nil
}
