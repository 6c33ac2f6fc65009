package nist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Table holds one element's tabulated scattering factors. Rows come from the
// data file already ascending in energy and are not re-sorted.
type Table struct {
	Energy []float64 // [eV]
	F1     []float64
	F2     []float64
}

// DataUnavailableError reports a valid element symbol with no readable
// scattering table behind it.
type DataUnavailableError struct {
	Symbol string
	Err    error
}

func (e DataUnavailableError) Error() string {
	return fmt.Sprintf("no scattering table for element %q: %v", e.Symbol, e.Err)
}

func (e DataUnavailableError) Unwrap() error { return e.Err }

// Load reads <dir>/<symbol>.nff, symbol lowercased. Lines starting with '#'
// and non-numeric header lines are skipped; data rows are three
// whitespace-separated columns: energy [eV], f1, f2.
func Load(dir, symbol string) (*Table, error) {
	path := filepath.Join(dir, strings.ToLower(symbol)+".nff")
	file, err := os.Open(path)
	if err != nil {
		return nil, DataUnavailableError{Symbol: symbol, Err: err}
	}
	defer file.Close()

	table := &Table{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 3 || strings.HasPrefix(parts[0], "#") {
			continue
		}
		energy, errE := strconv.ParseFloat(parts[0], 64)
		f1, err1 := strconv.ParseFloat(parts[1], 64)
		f2, err2 := strconv.ParseFloat(parts[2], 64)
		if errE != nil || err1 != nil || err2 != nil {
			continue
		}
		table.Energy = append(table.Energy, energy)
		table.F1 = append(table.F1, f1)
		table.F2 = append(table.F2, f2)
	}
	if err := scanner.Err(); err != nil {
		return nil, DataUnavailableError{Symbol: symbol, Err: err}
	}
	if len(table.Energy) == 0 {
		return nil, DataUnavailableError{Symbol: symbol, Err: errors.New("no data rows")}
	}
	return table, nil
}
