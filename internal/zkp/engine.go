package zkp

import "math/big"

// ComputePair returns (alpha^exp mod p, beta^exp mod p). It is used both for
// registration, where exp is the long-term secret, and per proof round,
// where exp is the one-time nonce. Exponents are expected in [0, q); larger
// values are legal but callers should reduce them mod Q first.
//
// big.Int.Exp with an odd modulus uses a constant-time Montgomery ladder, so
// the computation does not leak the exponent through timing.
func (zp *Params) ComputePair(exp *big.Int) (*big.Int, *big.Int) {
	p1 := new(big.Int).Exp(zp.Alpha, exp, zp.P)
	p2 := new(big.Int).Exp(zp.Beta, exp, zp.P)
	return p1, p2
}

// Solve computes the response s = (k - c*x) mod q as a non-negative residue.
//
// k is the prover's nonce, c the verifier's challenge and x the secret
// exponent. The subtraction is branched on k >= c*x so the intermediate
// values never go negative; both branches yield the same residue as signed
// arithmetic mod q.
func (zp *Params) Solve(k, c, x *big.Int) *big.Int {
	cx := new(big.Int).Mul(c, x)

	if k.Cmp(cx) >= 0 {
		// s = (k - c*x) mod q
		s := new(big.Int).Sub(k, cx)
		return s.Mod(s, zp.Q)
	}

	// s = q - ((c*x - k) mod q)
	s := new(big.Int).Sub(cx, k)
	s.Mod(s, zp.Q)
	if s.Sign() == 0 {
		return s
	}
	return s.Sub(zp.Q, s)
}

// Verify checks the proof equations
//
//	r1 = alpha^s * y1^c mod p
//	r2 = beta^s  * y2^c mod p
//
// where (y1, y2) is the registered commitment, (r1, r2) the round
// commitment, c the challenge and s the prover's response. Both equations
// must hold.
func (zp *Params) Verify(r1, r2, y1, y2, c, s *big.Int) bool {
	lhs1 := new(big.Int).Exp(zp.Alpha, s, zp.P)
	lhs1.Mul(lhs1, new(big.Int).Exp(y1, c, zp.P))
	lhs1.Mod(lhs1, zp.P)

	lhs2 := new(big.Int).Exp(zp.Beta, s, zp.P)
	lhs2.Mul(lhs2, new(big.Int).Exp(y2, c, zp.P))
	lhs2.Mod(lhs2, zp.P)

	return lhs1.Cmp(r1) == 0 && lhs2.Cmp(r2) == 0
}
