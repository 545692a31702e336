package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-t int      challenge time-to-live, seconds
//	-r int      reap interval, seconds
//	-s          strict registration mode
//	-l int      auth/session ID length
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-r", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")

	challengeTTL := fs.Int("t", int(config.ChallengeTTL.Seconds()), "challenge time-to-live (in seconds)")
	reapInterval := fs.Int("r", int(config.ReapInterval.Seconds()), "expired challenge reap interval (in seconds)")

	fs.BoolVar(&config.StrictRegistration, "s", config.StrictRegistration, "reject re-registration of existing users")
	fs.IntVar(&config.OpaqueIDLength, "l", config.OpaqueIDLength, "auth/session ID length")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ChallengeTTL = time.Duration(*challengeTTL) * time.Second
	config.ReapInterval = time.Duration(*reapInterval) * time.Second
}
