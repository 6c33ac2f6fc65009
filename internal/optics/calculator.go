package optics

import (
	"runtime"
	"sync"

	"github.com/wildstyl3r/xrop/internal/atomic"
	"github.com/wildstyl3r/xrop/internal/nist"
)

// Tabulated reference data cover 30 eV to 30 keV; Batch rejects anything
// outside.
const (
	MinEnergyKeV = 0.03
	MaxEnergyKeV = 30.
)

// Calculator computes optical properties against one reference-data
// directory. It owns the atomic-data and scattering-table caches; both are
// shared by every computation made through it and live until CacheClear.
type Calculator struct {
	dataDir string
	threads int

	mu     sync.RWMutex
	atoms  map[string]atomic.Record
	tables map[string]*nist.Table
}

func New(dataDir string) *Calculator {
	return &Calculator{
		dataDir: dataDir,
		threads: runtime.NumCPU(),
		atoms:   map[string]atomic.Record{},
		tables:  map[string]*nist.Table{},
	}
}

func (c *Calculator) Threads() int {
	return c.threads
}

func (c *Calculator) SetThreads(threads int) {
	if threads > 0 {
		c.threads = threads
	}
}

func (c *Calculator) atomicData(symbol string) (atomic.Record, error) {
	c.mu.RLock()
	rec, cached := c.atoms[symbol]
	c.mu.RUnlock()
	if cached {
		return rec, nil
	}
	rec, err := atomic.Lookup(symbol)
	if err != nil {
		return atomic.Record{}, err
	}
	c.mu.Lock()
	c.atoms[symbol] = rec
	c.mu.Unlock()
	return rec, nil
}

func (c *Calculator) table(symbol string) (*nist.Table, error) {
	c.mu.RLock()
	table, cached := c.tables[symbol]
	c.mu.RUnlock()
	if cached {
		return table, nil
	}
	table, err := nist.Load(c.dataDir, symbol)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.tables[symbol] = table
	c.mu.Unlock()
	return table, nil
}

// CacheClear evicts both caches. Results never depend on cache state, only
// the cost of the next computation does. Not meant to run concurrently with
// in-flight computations.
func (c *Calculator) CacheClear() {
	c.mu.Lock()
	c.atoms = map[string]atomic.Record{}
	c.tables = map[string]*nist.Table{}
	c.mu.Unlock()
}
