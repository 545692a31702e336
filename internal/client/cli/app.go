// Package cli implements the interactive prover client: a small REPL that
// registers users and runs the proof-based login against the verifier.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/client/config"
	"github.com/dmitrijs2005/zkpauth/internal/client/services"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

// authAPI is the slice of the prover service the CLI needs.
type authAPI interface {
	Register(ctx context.Context, userName string, password []byte) error
	Login(ctx context.Context, userName string, password []byte) (string, error)
	Close() error
}

type App struct {
	config      *config.Config
	authService authAPI
	userName    string
	sessionID   string
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewAuthClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(apiClient, zkp.DefaultParams(), zkp.CryptoSource{})

	return &App{config: c, authService: as, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isAuthenticated() bool {
	return a.sessionID != ""
}

func (a *App) status() string {
	if a.isAuthenticated() {
		return a.userName
	}
	return "not authenticated"
}
