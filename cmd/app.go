// Package cmd implements the stocksim command-line application.
package cmd

import (
	"flag"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/etnz/stocksim"
	"github.com/etnz/stocksim/credentials"
	"github.com/google/subcommands"
)

const (
	EnvUsersFile = "STOCKSIM_USERS_FILE"
	EnvSeed      = "STOCKSIM_SEED"
	EnvVerbose   = "STOCKSIM_VERBOSE"
)

// Commands lists the subcommands, a main package registers them into its commander.
var Commands = []subcommands.Command{
	&playCmd{},
	&signupCmd{},
	&usersCmd{},
	&marketCmd{},
}

// DefaultCommand is run when no subcommand is given.
const DefaultCommand = "play"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var usersFile = flag.String("users-file", envString(EnvUsersFile, credentials.DefaultPath), "Path to the credential store. Env: "+EnvUsersFile)
var seed = flag.Uint64("seed", envUint(EnvSeed, 0), "Seed of the price moves, 0 for a time based seed. Env: "+EnvSeed)

// standard streams of the commands.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Verbose enables diagnostic logs on stderr.
var Verbose = flag.Bool("v", envBool(EnvVerbose, false), "Verbose diagnostics on stderr. Env: "+EnvVerbose)

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envUint(key string, def uint64) uint64 {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

// Logger returns the diagnostic logger, discarding everything unless verbose.
func Logger() *log.Logger {
	if *Verbose {
		return log.New(stderr, "stocksim: ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

// Verbosef logs a diagnostic message when verbose.
func Verbosef(format string, args ...any) { Logger().Printf(format, args...) }

// NewRand returns the price moves source for seed, time based when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// OpenMarket opens the market on the app credential store.
func OpenMarket() (*stocksim.Market, error) {
	if err := credentials.SelfTest(); err != nil {
		return nil, err
	}
	Verbosef("loading credential store %q", *usersFile)
	m, err := stocksim.OpenMarket(*usersFile, NewRand(*seed), credentials.WithLogger(Logger()))
	if err != nil {
		return nil, err
	}
	Verbosef("%d account(s) loaded", m.Users().Len())
	return m, nil
}
