package atomic

import "fmt"

// Record is the resolved data for one element.
type Record struct {
	Number int     // Z
	Mass   float64 // [amu]
}

// NotFoundError reports a symbol absent from the periodic table.
type NotFoundError struct {
	Symbol string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("element %q not present in the periodic table", e.Symbol)
}

// Lookup resolves a symbol by exact match against the ordered table; the
// atomic number is the 1-based position of the entry.
func Lookup(symbol string) (Record, error) {
	for i := range periodicTable {
		if periodicTable[i].symbol == symbol {
			return Record{Number: i + 1, Mass: periodicTable[i].mass}, nil
		}
	}
	return Record{}, NotFoundError{Symbol: symbol}
}
