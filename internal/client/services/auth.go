// Package services contains the prover-side protocol logic: deriving the
// secret exponent from credentials and walking the register / challenge /
// answer flow against the verifier.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

// Api is the transport surface the prover needs. *client.GRPCClient
// satisfies it; tests provide fakes.
type Api interface {
	Register(ctx context.Context, userName string, y1, y2 []byte) error
	CreateChallenge(ctx context.Context, userName string, r1, r2 []byte) (string, []byte, error)
	VerifyAnswer(ctx context.Context, authID string, answer []byte) (string, error)
	Close() error
}

type AuthService struct {
	api    Api
	params *zkp.Params
	rnd    zkp.Source
}

func NewAuthService(api Api, params *zkp.Params, rnd zkp.Source) *AuthService {
	return &AuthService{api: api, params: params, rnd: rnd}
}

// Register derives the secret exponent from the credentials and registers
// the public commitment with the verifier. The password is not transmitted.
func (s *AuthService) Register(ctx context.Context, userName string, password []byte) error {
	x := zkp.SecretFromPassword(s.params, userName, password)

	y1, y2 := s.params.ComputePair(x)

	return s.api.Register(ctx, userName, zkp.IntToBytes(y1), zkp.IntToBytes(y2))
}

// Login runs one full proof round and returns the session ID issued by the
// verifier.
func (s *AuthService) Login(ctx context.Context, userName string, password []byte) (string, error) {
	x := zkp.SecretFromPassword(s.params, userName, password)

	k, err := s.rnd.Below(s.params.Q)
	if err != nil {
		return "", fmt.Errorf("drawing nonce: %w", err)
	}
	r1, r2 := s.params.ComputePair(k)

	authID, cBytes, err := s.api.CreateChallenge(ctx, userName, zkp.IntToBytes(r1), zkp.IntToBytes(r2))
	if err != nil {
		return "", err
	}

	answer := s.params.Solve(k, zkp.IntFromBytes(cBytes), x)

	return s.api.VerifyAnswer(ctx, authID, zkp.IntToBytes(answer))
}

func (s *AuthService) Close() error {
	return s.api.Close()
}
