// Package credentials implements the persisted credential store of the simulator.
//
// The store is a text file, one record per line:
//
//	<username>,<sha256 hex of the password>,<starting cash>
//
// There is no header and the order of lines is not meaningful.
package credentials

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"io"
	"log"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPath is the store location when none is configured.
const DefaultPath = ".users.dat"

// HashLen is the length of a hashed password.
const HashLen = 2 * sha256.Size

var (
	// ErrExists is returned by Add when the username is already registered.
	ErrExists = errors.New("record already exists")
	// ErrMalformed is returned when the store cannot be read.
	ErrMalformed = errors.New("malformed credential store")
)

// Record is a single persisted account.
type Record struct {
	Username string
	Hash     string
	Cash     decimal.Decimal
}

// Hash returns the lower case hex SHA-256 of the UTF-8 bytes of password.
//
// The scheme is unsalted, it is kept for compatibility with existing stores.
func Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// NewRecord creates a record, hashing password.
func NewRecord(username, password string, cash decimal.Decimal) Record {
	return Record{Username: username, Hash: Hash(password), Cash: cash}
}

// Matches reports whether password hashes to the stored hash.
func (r Record) Matches(password string) bool {
	return subtle.ConstantTimeCompare([]byte(r.Hash), []byte(Hash(password))) == 1
}

// SelfTest checks that hashing works as expected.
func SelfTest() error {
	// sha256("abc") from FIPS 180-2.
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := Hash("abc"); got != want {
		return errors.New("sha-256 is not available: self test failed")
	}
	return nil
}

// validHash reports whether h looks like a value produced by Hash.
func validHash(h string) bool {
	if len(h) != HashLen {
		return false
	}
	return strings.IndexFunc(h, func(r rune) bool {
		return !('0' <= r && r <= '9' || 'a' <= r && r <= 'f')
	}) < 0
}

// Store is the in-memory credential map bound to its file.
// It is meant to be used by a single goroutine of a single process.
type Store struct {
	path    string
	records map[string]Record
	logger  *log.Logger
}

// New returns an empty store bound to path.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{
		path:    path,
		records: make(map[string]Record),
		logger:  log.New(io.Discard, "", 0),
	}
}

// Path returns the file the store reads from and writes to.
func (s *Store) Path() string { return s.path }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Get returns the record for username.
func (s *Store) Get(username string) (Record, bool) {
	r, ok := s.records[username]
	return r, ok
}

// Add registers r in memory. It does not save the store.
func (s *Store) Add(r Record) error {
	if _, exists := s.records[r.Username]; exists {
		return ErrExists
	}
	s.records[r.Username] = r
	return nil
}

// Records returns all the records sorted by username.
func (s *Store) Records() []Record {
	list := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		list = append(list, r)
	}
	slices.SortFunc(list, func(a, b Record) int { return strings.Compare(a.Username, b.Username) })
	return list
}
