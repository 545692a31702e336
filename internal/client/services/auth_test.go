package services

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

// fakeVerifier implements Api with real verifier behavior over the shared
// group, so the prover math can be checked end to end without a server.
type fakeVerifier struct {
	params *zkp.Params

	y1, y2 *big.Int
	r1, r2 *big.Int
	c      *big.Int

	authID    string
	sessionID string

	closed bool
}

func (f *fakeVerifier) Register(ctx context.Context, userName string, y1, y2 []byte) error {
	f.y1 = zkp.IntFromBytes(y1)
	f.y2 = zkp.IntFromBytes(y2)
	return nil
}

func (f *fakeVerifier) CreateChallenge(ctx context.Context, userName string, r1, r2 []byte) (string, []byte, error) {
	if f.y1 == nil {
		return "", nil, common.ErrUserNotFound
	}
	f.r1 = zkp.IntFromBytes(r1)
	f.r2 = zkp.IntFromBytes(r2)
	return f.authID, zkp.IntToBytes(f.c), nil
}

func (f *fakeVerifier) VerifyAnswer(ctx context.Context, authID string, answer []byte) (string, error) {
	if authID != f.authID {
		return "", common.ErrChallengeNotFound
	}
	if !f.params.Verify(f.r1, f.r2, f.y1, f.y2, f.c, zkp.IntFromBytes(answer)) {
		return "", common.ErrBadSolution
	}
	return f.sessionID, nil
}

func (f *fakeVerifier) Close() error {
	f.closed = true
	return nil
}

func newFake() *fakeVerifier {
	return &fakeVerifier{
		params:    zkp.DefaultParams(),
		c:         big.NewInt(42),
		authID:    "attempt1",
		sessionID: "session1",
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	fake := newFake()
	svc := NewAuthService(fake, zkp.DefaultParams(), zkp.CryptoSource{})

	require.NoError(t, svc.Register(ctx, "alice", []byte("hunter2")))
	require.NotNil(t, fake.y1)
	require.NotNil(t, fake.y2)

	session, err := svc.Login(ctx, "alice", []byte("hunter2"))
	require.NoError(t, err)
	assert.Equal(t, "session1", session)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	fake := newFake()
	svc := NewAuthService(fake, zkp.DefaultParams(), zkp.CryptoSource{})

	require.NoError(t, svc.Register(ctx, "alice", []byte("hunter2")))

	_, err := svc.Login(ctx, "alice", []byte("letmein"))
	require.ErrorIs(t, err, common.ErrBadSolution)
}

func TestAuthService_LoginUnregistered(t *testing.T) {
	fake := newFake()
	svc := NewAuthService(fake, zkp.DefaultParams(), zkp.CryptoSource{})

	_, err := svc.Login(context.Background(), "ghost", []byte("hunter2"))
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestAuthService_RegistrationCommitmentMatchesDerivation(t *testing.T) {
	ctx := context.Background()
	fake := newFake()
	params := zkp.DefaultParams()
	svc := NewAuthService(fake, params, zkp.CryptoSource{})

	require.NoError(t, svc.Register(ctx, "alice", []byte("hunter2")))

	x := zkp.SecretFromPassword(params, "alice", []byte("hunter2"))
	y1, y2 := params.ComputePair(x)
	assert.Zero(t, fake.y1.Cmp(y1))
	assert.Zero(t, fake.y2.Cmp(y2))
}

func TestAuthService_Close(t *testing.T) {
	fake := newFake()
	svc := NewAuthService(fake, zkp.DefaultParams(), zkp.CryptoSource{})

	require.NoError(t, svc.Close())
	assert.True(t, fake.closed)
}
