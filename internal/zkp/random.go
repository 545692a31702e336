package zkp

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Source produces the random values the protocol needs: secrets, nonces,
// challenges and opaque identifiers. It is an interface so registry and
// service tests can inject deterministic stubs.
type Source interface {
	// Below returns a uniformly random integer in [0, bound).
	// bound must be positive.
	Below(bound *big.Int) (*big.Int, error)

	// OpaqueID returns a random alphanumeric identifier of the given
	// length, suitable for auth and session IDs.
	OpaqueID(length int) (string, error)
}

// CryptoSource is the production Source backed by crypto/rand.
type CryptoSource struct{}

var errInvalidBound = errors.New("bound must be positive")

func (CryptoSource) Below(bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, errInvalidBound
	}
	return rand.Int(rand.Reader, bound)
}

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func (CryptoSource) OpaqueID(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("length must be positive")
	}

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			// reject bytes beyond the largest multiple of 62 to keep
			// the distribution uniform
			if b >= 248 {
				continue
			}
			out = append(out, idAlphabet[int(b)%len(idAlphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}
