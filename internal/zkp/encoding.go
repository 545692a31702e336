package zkp

import "math/big"

// IntToBytes encodes v as a canonical minimal-length big-endian unsigned
// byte sequence, the wire representation of all protocol integers. Zero
// encodes to an empty slice.
func IntToBytes(v *big.Int) []byte {
	return v.Bytes()
}

// IntFromBytes decodes a big-endian unsigned byte sequence. It is the exact
// inverse of IntToBytes for canonical encodings; leading zero bytes are
// tolerated and ignored.
func IntFromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
