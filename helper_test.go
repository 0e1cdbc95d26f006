package stocksim

import (
	"path/filepath"
	"testing"

	"github.com/etnz/stocksim/credentials"
)

// seqRand returns the values in order, cycling.
type seqRand struct {
	values []float64
	i      int
}

func (r *seqRand) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func newSeq(values ...float64) *seqRand { return &seqRand{values: values} }

// USD is a helper for test to create money from const.
func USD(v float64) Money { return M(v) }

// newTestMarket returns a market with an empty store in a temp folder.
func newTestMarket(t *testing.T) *Market {
	t.Helper()
	store := credentials.New(filepath.Join(t.TempDir(), ".users.dat"))
	return NewMarket(store, newSeq(0.5))
}

// mustLookup returns the roster stock for symbol.
func mustLookup(t *testing.T, m *Market, symbol string) *Stock {
	t.Helper()
	s, ok := m.Lookup(symbol)
	if !ok {
		t.Fatalf("Lookup(%q) not found", symbol)
	}
	return s
}
