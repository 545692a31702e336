// Package auth implements the verifier-side protocol service. It sits
// between the transport and the registry: it decodes and range-checks the
// wire byte encodings, delegates the bookkeeping to the registry and logs
// outcomes. All group math lives in the zkp package.
package auth

import (
	"context"
	"fmt"
	"math/big"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/server/registry"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

type Service struct {
	params *zkp.Params
	reg    *registry.Registry
	logger logging.Logger
}

func NewService(params *zkp.Params, reg *registry.Registry, l logging.Logger) *Service {
	return &Service{
		params: params,
		reg:    reg,
		logger: l.With("module", "auth_service"),
	}
}

// Register stores the public commitment (y1, y2) for username. y1 and y2
// must decode to group elements in [1, p).
func (s *Service) Register(ctx context.Context, username string, y1, y2 []byte) error {
	if username == "" {
		return fmt.Errorf("%w: empty username", common.ErrInvalidInput)
	}

	cy1, err := s.decodeGroupElement(y1)
	if err != nil {
		return err
	}
	cy2, err := s.decodeGroupElement(y2)
	if err != nil {
		return err
	}

	if err := s.reg.Register(username, registry.Commitment{Y1: cy1, Y2: cy2}); err != nil {
		return err
	}

	s.logger.Info(ctx, "user registered", "username", username)
	return nil
}

// CreateChallenge opens an authentication attempt for username with the
// round commitment (r1, r2) and returns the auth ID together with the
// encoded challenge.
func (s *Service) CreateChallenge(ctx context.Context, username string, r1, r2 []byte) (string, []byte, error) {
	cr1, err := s.decodeGroupElement(r1)
	if err != nil {
		return "", nil, err
	}
	cr2, err := s.decodeGroupElement(r2)
	if err != nil {
		return "", nil, err
	}

	authID, c, err := s.reg.BeginChallenge(username, cr1, cr2)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info(ctx, "challenge issued", "username", username, "auth_id", authID)
	return authID, zkp.IntToBytes(c), nil
}

// VerifyAnswer resolves the attempt identified by authID with the encoded
// response and returns a session ID on success.
func (s *Service) VerifyAnswer(ctx context.Context, authID string, answer []byte) (string, error) {
	resp, err := s.decodeScalar(answer)
	if err != nil {
		return "", err
	}

	sessionID, err := s.reg.FinishChallenge(authID, resp)
	if err != nil {
		s.logger.Warn(ctx, "authentication failed", "auth_id", authID, "reason", err.Error())
		return "", err
	}

	s.logger.Info(ctx, "authentication succeeded", "auth_id", authID)
	return sessionID, nil
}

var one = big.NewInt(1)

// decodeGroupElement decodes a big-endian byte sequence and checks it lies
// in [1, p).
func (s *Service) decodeGroupElement(b []byte) (*big.Int, error) {
	v := zkp.IntFromBytes(b)
	if v.Cmp(one) < 0 || v.Cmp(s.params.P) >= 0 {
		return nil, fmt.Errorf("%w: value outside group range", common.ErrInvalidInput)
	}
	return v, nil
}

// decodeScalar decodes a big-endian byte sequence and checks it lies in
// [0, q). Zero is a legal residue and encodes to an empty sequence.
func (s *Service) decodeScalar(b []byte) (*big.Int, error) {
	v := zkp.IntFromBytes(b)
	if v.Cmp(s.params.Q) >= 0 {
		return nil, fmt.Errorf("%w: scalar outside order range", common.ErrInvalidInput)
	}
	return v, nil
}
