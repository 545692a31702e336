package auth

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/server/registry"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

func toyParams() *zkp.Params {
	return &zkp.Params{
		P:     big.NewInt(23),
		Q:     big.NewInt(11),
		Alpha: big.NewInt(4),
		Beta:  big.NewInt(9),
	}
}

// fixedChallengeSource pins the challenge value so reject paths are
// deterministic on the toy group.
type fixedChallengeSource struct {
	zkp.Source
	c int64
}

func (s fixedChallengeSource) Below(*big.Int) (*big.Int, error) {
	return big.NewInt(s.c), nil
}

func newService(src zkp.Source, cfg registry.Config) *Service {
	zp := toyParams()
	return NewService(zp, registry.New(zp, src, cfg), logging.Nop{})
}

func encodePair(zp *zkp.Params, exp *big.Int) ([]byte, []byte) {
	a, b := zp.ComputePair(exp)
	return zkp.IntToBytes(a), zkp.IntToBytes(b)
}

func TestService_FullFlow(t *testing.T) {
	ctx := context.Background()
	zp := toyParams()
	svc := newService(zkp.CryptoSource{}, registry.Config{})

	x := big.NewInt(6)
	y1, y2 := encodePair(zp, x)
	require.NoError(t, svc.Register(ctx, "alice", y1, y2))

	k := big.NewInt(3)
	r1, r2 := encodePair(zp, k)
	authID, cb, err := svc.CreateChallenge(ctx, "alice", r1, r2)
	require.NoError(t, err)
	require.NotEmpty(t, authID)

	c := zkp.IntFromBytes(cb)
	answer := zkp.IntToBytes(zp.Solve(k, c, x))

	session, err := svc.VerifyAnswer(ctx, authID, answer)
	require.NoError(t, err)
	assert.NotEmpty(t, session)
}

// register with x=5, answer with x'=6
func TestService_WrongSecretRejected(t *testing.T) {
	ctx := context.Background()
	zp := toyParams()
	svc := newService(fixedChallengeSource{Source: zkp.CryptoSource{}, c: 2}, registry.Config{})

	y1, y2 := encodePair(zp, big.NewInt(5))
	require.NoError(t, svc.Register(ctx, "alice", y1, y2))

	k := big.NewInt(3)
	r1, r2 := encodePair(zp, k)
	authID, cb, err := svc.CreateChallenge(ctx, "alice", r1, r2)
	require.NoError(t, err)

	answer := zkp.IntToBytes(zp.Solve(k, zkp.IntFromBytes(cb), big.NewInt(6)))

	_, err = svc.VerifyAnswer(ctx, authID, answer)
	require.ErrorIs(t, err, common.ErrBadSolution)
}

func TestService_Register_InvalidInput(t *testing.T) {
	ctx := context.Background()
	zp := toyParams()
	svc := newService(zkp.CryptoSource{}, registry.Config{})

	valid, _ := encodePair(zp, big.NewInt(6))

	tests := []struct {
		name     string
		username string
		y1, y2   []byte
	}{
		{"empty username", "", valid, valid},
		{"empty y1", "alice", nil, valid},
		{"zero y1", "alice", zkp.IntToBytes(big.NewInt(0)), valid},
		{"y2 equals modulus", "alice", valid, zkp.IntToBytes(big.NewInt(23))},
		{"y2 above modulus", "alice", valid, zkp.IntToBytes(big.NewInt(100))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(ctx, tt.username, tt.y1, tt.y2)
			require.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestService_CreateChallenge_UnknownUser(t *testing.T) {
	zp := toyParams()
	svc := newService(zkp.CryptoSource{}, registry.Config{})

	r1, r2 := encodePair(zp, big.NewInt(3))
	_, _, err := svc.CreateChallenge(context.Background(), "ghost", r1, r2)
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestService_VerifyAnswer_InvalidScalar(t *testing.T) {
	ctx := context.Background()
	zp := toyParams()
	svc := newService(zkp.CryptoSource{}, registry.Config{})

	y1, y2 := encodePair(zp, big.NewInt(6))
	require.NoError(t, svc.Register(ctx, "alice", y1, y2))
	r1, r2 := encodePair(zp, big.NewInt(3))
	authID, _, err := svc.CreateChallenge(ctx, "alice", r1, r2)
	require.NoError(t, err)

	// s >= q is rejected before touching the registry
	_, err = svc.VerifyAnswer(ctx, authID, zkp.IntToBytes(big.NewInt(11)))
	require.ErrorIs(t, err, common.ErrInvalidInput)

	// the pending entry is still answerable afterwards
	_, err = svc.VerifyAnswer(ctx, authID, zkp.IntToBytes(big.NewInt(100)))
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestService_VerifyAnswer_UnknownAuthID(t *testing.T) {
	svc := newService(zkp.CryptoSource{}, registry.Config{})

	_, err := svc.VerifyAnswer(context.Background(), "nope", zkp.IntToBytes(big.NewInt(1)))
	require.ErrorIs(t, err, common.ErrChallengeNotFound)
}

func TestService_StrictMode(t *testing.T) {
	ctx := context.Background()
	zp := toyParams()
	svc := newService(zkp.CryptoSource{}, registry.Config{Strict: true})

	y1, y2 := encodePair(zp, big.NewInt(6))
	require.NoError(t, svc.Register(ctx, "alice", y1, y2))
	require.ErrorIs(t, svc.Register(ctx, "alice", y1, y2), common.ErrUserExists)
}
