package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString draws length characters uniformly from alphabet. Each pick goes
// through crypto/rand.Int, which rejects out-of-range reads instead of taking
// a modulo, so no character is favoured when the alphabet size is not a power
// of two. Used for the ephemeral session key when no SECRET_KEY is configured.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	bound := big.NewInt(int64(len(alphabet)))
	out := make([]byte, 0, length)
	for len(out) < length {
		pick, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return "", err
		}
		out = append(out, alphabet[pick.Int64()])
	}

	return string(out), nil
}
