// Package registry holds the verifier-side state of the protocol: the
// registered commitments per user and the in-flight authentication attempts
// keyed by auth ID. It is the single shared mutable resource of the server;
// one mutex guards both maps.
package registry

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

// Commitment is the registered public pair (alpha^x, beta^x) mod p.
type Commitment struct {
	Y1 *big.Int
	Y2 *big.Int
}

// pendingChallenge is one issued, not yet answered authentication attempt.
type pendingChallenge struct {
	username string
	r1, r2   *big.Int
	c        *big.Int
	issuedAt time.Time
}

// Config tunes registry behavior.
type Config struct {
	// Strict rejects re-registration of an existing username instead of
	// overwriting the stored commitment.
	Strict bool

	// ChallengeTTL bounds how long an unanswered challenge stays valid.
	// Zero disables expiry.
	ChallengeTTL time.Duration

	// IDLength is the length of generated auth and session IDs.
	IDLength int
}

const defaultIDLength = 16

// Registry maps usernames to commitments and auth IDs to pending
// challenges. Safe for concurrent use.
type Registry struct {
	params *zkp.Params
	rnd    zkp.Source
	cfg    Config

	mu      sync.Mutex
	users   map[string]Commitment
	pending map[string]pendingChallenge
}

func New(params *zkp.Params, rnd zkp.Source, cfg Config) *Registry {
	if cfg.IDLength <= 0 {
		cfg.IDLength = defaultIDLength
	}
	return &Registry{
		params:  params,
		rnd:     rnd,
		cfg:     cfg,
		users:   make(map[string]Commitment),
		pending: make(map[string]pendingChallenge),
	}
}

// Register stores the commitment for username. By default an existing record
// is overwritten; in strict mode re-registration fails with ErrUserExists.
func (r *Registry) Register(username string, c Commitment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; ok && r.cfg.Strict {
		return common.ErrUserExists
	}
	r.users[username] = c
	return nil
}

// BeginChallenge opens an authentication attempt for username with the round
// commitment (r1, r2). It draws a fresh challenge and a fresh auth ID and
// returns both. Concurrent attempts for the same user each get their own
// pending entry.
func (r *Registry) BeginChallenge(username string, r1, r2 *big.Int) (string, *big.Int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; !ok {
		return "", nil, common.ErrUserNotFound
	}

	c, err := r.rnd.Below(r.params.Q)
	if err != nil {
		return "", nil, fmt.Errorf("drawing challenge: %w", err)
	}

	authID, err := r.freshAuthID()
	if err != nil {
		return "", nil, err
	}

	r.pending[authID] = pendingChallenge{
		username: username,
		r1:       r1,
		r2:       r2,
		c:        c,
		issuedAt: time.Now(),
	}

	return authID, c, nil
}

// FinishChallenge answers the attempt identified by authID with the response
// s. The pending entry is consumed no matter the outcome, so each issued
// challenge can be answered at most once. On success a fresh session ID is
// returned; a failed proof yields ErrBadSolution, an unknown, expired or
// already-consumed authID yields ErrChallengeNotFound.
func (r *Registry) FinishChallenge(authID string, s *big.Int) (string, error) {
	r.mu.Lock()
	pc, ok := r.pending[authID]
	if ok {
		delete(r.pending, authID)
	}
	commitment, registered := r.users[pc.username]
	r.mu.Unlock()

	if !ok || r.isExpired(pc, time.Now()) || !registered {
		return "", common.ErrChallengeNotFound
	}

	// the exponentiations run outside the lock; the entry is already consumed
	if !r.params.Verify(pc.r1, pc.r2, commitment.Y1, commitment.Y2, pc.c, s) {
		return "", common.ErrBadSolution
	}

	sessionID, err := r.rnd.OpaqueID(r.cfg.IDLength)
	if err != nil {
		return "", fmt.Errorf("generating session id: %w", err)
	}
	return sessionID, nil
}

// PendingCount reports the number of open attempts. Used by tests and the
// reaper log line.
func (r *Registry) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// StartReaper launches a background sweep that drops expired pending entries
// every interval until ctx is canceled. It is a no-op when ChallengeTTL is
// zero.
func (r *Registry) StartReaper(ctx context.Context, interval time.Duration) {
	if r.cfg.ChallengeTTL <= 0 || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.sweep(time.Now())
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (r *Registry) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, pc := range r.pending {
		if r.isExpired(pc, now) {
			delete(r.pending, id)
		}
	}
}

func (r *Registry) isExpired(pc pendingChallenge, now time.Time) bool {
	return r.cfg.ChallengeTTL > 0 && now.Sub(pc.issuedAt) > r.cfg.ChallengeTTL
}

func (r *Registry) freshAuthID() (string, error) {
	for {
		id, err := r.rnd.OpaqueID(r.cfg.IDLength)
		if err != nil {
			return "", fmt.Errorf("generating auth id: %w", err)
		}
		if _, taken := r.pending[id]; !taken {
			return id, nil
		}
	}
}
