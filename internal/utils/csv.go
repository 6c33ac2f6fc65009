package utils

import (
	"encoding/csv"
	"os"
	"sort"

	"github.com/facette/natsort"
)

// CSV rows ordered naturally by their first column.
type CSV [][]string

func (data CSV) Less(i, j int) bool {
	return natsort.Compare(data[i][0], data[j][0])
}

func (data CSV) Len() int {
	return len(data)
}
func (data CSV) Swap(i, j int) {
	data[i], data[j] = data[j], data[i]
}

// WriteCSV saves a header row plus data rows to path, sorting the rows
// naturally when asked.
func WriteCSV(path string, columns []string, rows CSV, sorted bool) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if sorted {
		sort.Sort(rows)
	}
	w := csv.NewWriter(file)
	if err := w.Write(columns); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}
