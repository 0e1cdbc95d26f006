package stocksim

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/stocksim/credentials"
)

func TestMarket_Roster(t *testing.T) {
	m := newTestMarket(t)
	want := []string{
		"Alphabet Inc. (GOOGL): $140.50",
		"Apple Inc. (AAPL): $175.22",
		"Microsoft Corp. (MSFT): $370.90",
		"Amazon.com, Inc. (AMZN): $155.46",
		"Tesla, Inc. (TSLA): $245.88",
	}
	if m.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", m.Len(), len(want))
	}
	for i, s := range m.Stocks() {
		if got := s.String(); got != want[i] {
			t.Errorf("Stocks()[%d] = %q, want %q", i, got, want[i])
		}
	}
}

func TestMarket_Lookup(t *testing.T) {
	m := newTestMarket(t)
	googl := mustLookup(t, m, "GOOGL")
	for _, symbol := range []string{"googl", "GoOgL", " GOOGL "} {
		s, ok := m.Lookup(symbol)
		if !ok || s != googl {
			t.Errorf("Lookup(%q) = %v, %v, want the GOOGL stock", symbol, s, ok)
		}
	}
	if googl.Name() != "Alphabet Inc." {
		t.Errorf("GOOGL name = %q, want Alphabet Inc.", googl.Name())
	}
	for _, symbol := range []string{"", "GOOG", "IBM"} {
		if s, ok := m.Lookup(symbol); ok {
			t.Errorf("Lookup(%q) = %v, want not found", symbol, s)
		}
	}
}

func TestMarket_AdvanceDay(t *testing.T) {
	store := credentials.New(filepath.Join(t.TempDir(), "users"))
	// one sample per stock, in roster order.
	m := NewMarket(store, newSeq(0, 0.5, 0.75, 0.25, 0.5))
	m.AdvanceDay()

	want := []Money{USD(133.475), USD(175.22), USD(380.1725), USD(151.5735), USD(245.88)}
	for i, s := range m.Stocks() {
		if !s.Price().Equal(want[i]) {
			t.Errorf("%s price = %v, want %v", s.Symbol(), s.Price().Decimal(), want[i].Decimal())
		}
	}
}

func TestMarket_SignupLogin(t *testing.T) {
	m := newTestMarket(t)
	if err := m.Signup("alice", "hunter2", USD(10000)); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	u, err := m.Login("alice", "hunter2")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if u.Username() != "alice" || !u.Portfolio().Cash().Equal(USD(10000)) {
		t.Errorf("Login() = %q with %v, want alice with $10,000.00", u.Username(), u.Portfolio().Cash())
	}

	for _, tc := range []struct{ username, password string }{
		{"alice", "hunter3"},
		{"alice", ""},
		{"Alice", "hunter2"},
		{"mallory", "hunter2"},
	} {
		if _, err := m.Login(tc.username, tc.password); !errors.Is(err, ErrAuthFailed) {
			t.Errorf("Login(%q, %q) error = %v, want ErrAuthFailed", tc.username, tc.password, err)
		}
	}
}

func TestMarket_LoginStartsFresh(t *testing.T) {
	m := newTestMarket(t)
	m.Signup("alice", "pw", USD(1000))
	u, _ := m.Login("alice", "pw")
	u.Buy(mustLookup(t, m, "AAPL"), 2)

	again, err := m.Login("alice", "pw")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if !again.Portfolio().Cash().Equal(USD(1000)) || !again.Portfolio().IsEmpty() {
		t.Errorf("second login got %v and %v, want the starting cash and no holdings", again.Portfolio().Cash(), again.Portfolio().Holdings())
	}
}

func TestMarket_SignupErrors(t *testing.T) {
	m := newTestMarket(t)
	if err := m.Signup("bob", "x", USD(500)); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	testCases := []struct {
		name     string
		username string
		password string
		cash     Money
		want     error
	}{
		{"existing user", "bob", "y", USD(999), ErrUserExists},
		{"empty username", "", "y", USD(1), ErrInvalidUsername},
		{"blank username", "  ", "y", USD(1), ErrInvalidUsername},
		{"comma", "a,b", "y", USD(1), ErrInvalidUsername},
		{"newline", "a\nb", "y", USD(1), ErrInvalidUsername},
		{"empty password", "dave", "", USD(1), ErrInvalidPassword},
		{"negative cash", "dave", "y", USD(-1), ErrInvalidAmount},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := m.Signup(tc.username, tc.password, tc.cash); !errors.Is(err, tc.want) {
				t.Errorf("Signup() error = %v, want %v", err, tc.want)
			}
		})
	}

	rec, ok := m.Users().Get("bob")
	if !ok || rec.Hash != credentials.Hash("x") || !rec.Cash.Equal(USD(500).Decimal()) {
		t.Errorf("bob record = %+v, want the original one", rec)
	}
	if m.Users().Len() != 1 {
		t.Errorf("store has %d records, want 1", m.Users().Len())
	}
}

func TestMarket_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".users.dat")
	m, err := OpenMarket(path, newSeq(0.5))
	if err != nil {
		t.Fatalf("OpenMarket() on a missing store: %v", err)
	}
	if m.Users().Len() != 0 {
		t.Fatalf("missing store loaded %d records, want 0", m.Users().Len())
	}
	if err := m.Signup("alice", "hunter2", USD(10000)); err != nil {
		t.Fatal(err)
	}
	if err := m.Signup("bob", "x", USD(500.25)); err != nil {
		t.Fatal(err)
	}

	reloaded, err := OpenMarket(path, newSeq(0.5))
	if err != nil {
		t.Fatalf("OpenMarket() reload: %v", err)
	}
	for _, tc := range []struct {
		username, password string
		cash               Money
	}{
		{"alice", "hunter2", USD(10000)},
		{"bob", "x", USD(500.25)},
	} {
		u, err := reloaded.Login(tc.username, tc.password)
		if err != nil {
			t.Errorf("Login(%q) after reload: %v", tc.username, err)
			continue
		}
		if !u.Portfolio().Cash().Equal(tc.cash) {
			t.Errorf("%s cash after reload = %v, want %v", tc.username, u.Portfolio().Cash(), tc.cash)
		}
	}
}

func TestMarket_SignupNotPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", ".users.dat")
	m := NewMarket(credentials.New(path), newSeq(0.5))

	err := m.Signup("alice", "pw", USD(10))
	if !errors.Is(err, ErrNotPersisted) {
		t.Fatalf("Signup() error = %v, want ErrNotPersisted", err)
	}
	if _, err := m.Login("alice", "pw"); err != nil {
		t.Errorf("Login() after an unsaved signup: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("store file exists after a failed save: %v", err)
	}
}

func TestOpenMarket_Unreadable(t *testing.T) {
	// a folder cannot be read as a store.
	_, err := OpenMarket(t.TempDir(), newSeq(0.5))
	if !errors.Is(err, credentials.ErrMalformed) {
		t.Errorf("OpenMarket() on a folder error = %v, want ErrMalformed", err)
	}
}
