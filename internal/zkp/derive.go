package zkp

import (
	"crypto/sha256"
	"math/big"

	"golang.org/x/crypto/argon2"
)

// Argon2id cost parameters for the password-to-exponent derivation.
const (
	deriveTime    = 1
	deriveMemory  = 64 * 1024
	deriveThreads = 4
	deriveKeyLen  = 32
)

// deriveSaltPrefix domain-separates the per-user salt. Bump the version if
// the derivation ever changes, since it invalidates all registered
// commitments.
const deriveSaltPrefix = "zkpauth/v1|"

// SecretFromPassword derives the prover's secret exponent from a password.
//
// The protocol never exchanges a salt, so the salt is derived
// deterministically from the username: salt = SHA-256(prefix || username).
// The password is stretched with Argon2id and the 32-byte key is interpreted
// as a big-endian integer reduced mod Q. The same (username, password) pair
// always yields the same exponent, which is what lets a login reproduce the
// commitment registered earlier.
func SecretFromPassword(zp *Params, username string, password []byte) *big.Int {
	salt := sha256.Sum256([]byte(deriveSaltPrefix + username))
	key := argon2.IDKey(password, salt[:], deriveTime, deriveMemory, deriveThreads, deriveKeyLen)

	x := new(big.Int).SetBytes(key)
	return x.Mod(x, zp.Q)
}
