package nist

import (
	"errors"
	"testing"
)

func TestLoad(t *testing.T) {
	table, err := Load("testdata", "Si")
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Energy) != 9 || len(table.F1) != 9 || len(table.F2) != 9 {
		t.Fatalf("got %d/%d/%d rows, want 9", len(table.Energy), len(table.F1), len(table.F2))
	}
	if table.Energy[0] != 30. || table.Energy[8] != 30000. {
		t.Errorf("energy range [%g, %g], want [30, 30000]", table.Energy[0], table.Energy[8])
	}
	if table.F1[5] != 14.05 || table.F2[5] != 0.603 {
		t.Errorf("row 5 = (%g, %g), want (14.05, 0.603)", table.F1[5], table.F2[5])
	}
	for i := 1; i < len(table.Energy); i++ {
		if table.Energy[i] <= table.Energy[i-1] {
			t.Errorf("energy not ascending at row %d: %g after %g", i, table.Energy[i], table.Energy[i-1])
		}
	}
}

func TestLoadLowercasesSymbol(t *testing.T) {
	upper, err := Load("testdata", "SI")
	if err != nil {
		t.Fatal(err)
	}
	lower, err := Load("testdata", "si")
	if err != nil {
		t.Fatal(err)
	}
	if len(upper.Energy) != len(lower.Energy) {
		t.Errorf("case variants load different tables: %d vs %d rows", len(upper.Energy), len(lower.Energy))
	}
}

func TestLoadMissingElement(t *testing.T) {
	_, err := Load("testdata", "Pu")
	var unavailable DataUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("got %v, want DataUnavailableError", err)
	}
	if unavailable.Symbol != "Pu" {
		t.Errorf("error names %q, want Pu", unavailable.Symbol)
	}
}
