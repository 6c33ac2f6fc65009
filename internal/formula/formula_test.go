package formula

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		formula string
		want    []Term
	}{
		{"SiO2", []Term{{"Si", 1}, {"O", 2}}},
		{"H2O", []Term{{"H", 2}, {"O", 1}}},
		{"CO", []Term{{"C", 1}, {"O", 1}}},
		{"Co", []Term{{"Co", 1}}},
		{"Al2O3", []Term{{"Al", 2}, {"O", 3}}},
		{"B4C", []Term{{"B", 4}, {"C", 1}}},
		{"La0.7Sr0.3MnO3", []Term{{"La", 0.7}, {"Sr", 0.3}, {"Mn", 1}, {"O", 3}}},
		{"H.25O", []Term{{"H", 0.25}, {"O", 1}}},
		{"Si1.5", []Term{{"Si", 1.5}}},
	}
	for _, c := range cases {
		got, err := Parse(c.formula)
		if err != nil {
			t.Errorf("Parse(%q): %v", c.formula, err)
			continue
		}
		if len(got) != len(c.want) {
			t.Errorf("Parse(%q) = %v, want %v", c.formula, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("Parse(%q)[%d] = %v, want %v", c.formula, i, got[i], c.want[i])
			}
		}
	}
}

func TestParseKeepsDuplicateTerms(t *testing.T) {
	got, err := Parse("CH3CH2OH")
	if err != nil {
		t.Fatal(err)
	}
	want := []Term{{"C", 1}, {"H", 3}, {"C", 1}, {"H", 2}, {"O", 1}, {"H", 1}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("term %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, formula := range []string{"", "2", "123.4", "abc"} {
		_, err := Parse(formula)
		var parseErr ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Parse(%q) = %v, want ParseError", formula, err)
		}
	}
}
