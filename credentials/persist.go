package credentials

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/shopspring/decimal"
)

// fieldSep separates the fields of a line, usernames cannot contain it.
const fieldSep = ","

// filePerm is the permission of a newly created store, hashes are not world readable.
const filePerm = 0600

// Option configures Load.
type Option func(*Store)

// WithLogger reports skipped lines to l. By default they are discarded.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Load reads the store at path.
//
// A missing file is an empty store. Any other read failure is returned wrapped in ErrMalformed,
// so that an existing but unreadable store is never silently replaced by an empty one.
func Load(path string, opts ...Option) (*Store, error) {
	s := New(path)
	for _, opt := range opts {
		opt(s)
	}
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %q: %w", ErrMalformed, s.path, err)
	}
	defer f.Close()

	if err := s.decode(f); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMalformed, s.path, err)
	}
	return s, nil
}

// decode reads records from r into the store. Later lines win over earlier ones.
//
// Lines that do not have exactly three fields are skipped. Lines with an invalid hash or cash amount
// are skipped with a warning. Lines have no length limit.
func (s *Store) decode(r io.Reader) error {
	br := bufio.NewReader(r)
	for i := 1; ; i++ {
		txt, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if txt != "" {
			s.decodeLine(i, strings.TrimRight(txt, "\r\n"))
		}
		if err != nil {
			return nil
		}
	}
}

// decodeLine loads the i-th line of the store.
func (s *Store) decodeLine(i int, txt string) {
	parts := strings.Split(txt, fieldSep)
	if len(parts) != 3 {
		return
	}
	username, hash := parts[0], parts[1]
	if !validHash(hash) {
		s.logger.Printf("warning, %s:%d: skipping %q, the password hash is not %d lower case hex digits", s.path, i, username, HashLen)
		return
	}
	cash, err := decimal.NewFromString(parts[2])
	if err != nil {
		s.logger.Printf("warning, %s:%d: skipping %q, invalid cash balance: %v", s.path, i, username, err)
		return
	}
	s.records[username] = Record{Username: username, Hash: hash, Cash: cash}
}

// Encode writes records to w in the store line format.
func Encode(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, "%s%s%s%s%s\n", r.Username, fieldSep, r.Hash, fieldSep, r.Cash.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save rewrites the whole store.
//
// Records are written to a temporary file in the same folder which is then renamed over the store,
// a crash during Save leaves either the old or the new content.
func (s *Store) Save() error {
	pf, err := renameio.NewPendingFile(s.path, renameio.WithPermissions(filePerm), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("cannot create temporary file for %q: %w", s.path, err)
	}
	defer pf.Cleanup()

	if err := Encode(pf, s.Records()); err != nil {
		return fmt.Errorf("cannot write %q: %w", s.path, err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("cannot replace %q: %w", s.path, err)
	}
	return nil
}
