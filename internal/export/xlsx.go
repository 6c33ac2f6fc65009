package export

import (
	"sort"

	"github.com/facette/natsort"
	"github.com/xuri/excelize/v2"

	"github.com/wildstyl3r/xrop/internal/optics"
)

var columns = []interface{}{
	"energy (keV)", "wavelength (A)", "delta", "beta", "f1", "f2",
	"critical angle (deg)", "attenuation length (cm)", "re SLD (A^-2)", "im SLD (A^-2)",
}

// Workbook saves one sheet per material, naturally ordered by formula.
func Workbook(path string, results map[string]*optics.MaterialResult) error {
	book := excelize.NewFile()
	defer book.Close()

	formulas := make([]string, 0, len(results))
	for f := range results {
		formulas = append(formulas, f)
	}
	sort.Slice(formulas, func(i, j int) bool {
		return natsort.Compare(formulas[i], formulas[j])
	})

	for _, f := range formulas {
		res := results[f]
		if _, err := book.NewSheet(f); err != nil {
			return err
		}
		if err := book.SetSheetRow(f, "A1", &columns); err != nil {
			return err
		}
		for i := range res.Energy {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			row := []interface{}{
				res.Energy[i], res.Wavelength[i], res.Dispersion[i], res.Absorption[i],
				res.F1[i], res.F2[i], res.CriticalAngle[i], res.AttenuationLength[i],
				res.ReSLD[i], res.ImSLD[i],
			}
			if err := book.SetSheetRow(f, cell, &row); err != nil {
				return err
			}
		}
	}
	if err := book.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return book.SaveAs(path)
}
