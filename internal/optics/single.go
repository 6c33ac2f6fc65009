package optics

import (
	"github.com/wildstyl3r/xrop/internal/constants"
	"github.com/wildstyl3r/xrop/internal/formula"
	"github.com/wildstyl3r/xrop/internal/interp"
)

// SingleMaterial runs the full pipeline for one material: parse the formula,
// resolve atomic data, interpolate each element's scattering factors over the
// requested energies and accumulate the optical coefficients. Energies are
// not range-checked here; that is Batch's job.
//
// Fails with formula.ParseError, atomic.NotFoundError or
// nist.DataUnavailableError.
func (c *Calculator) SingleMaterial(materialFormula string, energiesKeV []float64, density float64) (*MaterialResult, error) {
	terms, err := formula.Parse(materialFormula)
	if err != nil {
		return nil, err
	}

	var molecularWeight, electronCount float64
	for _, term := range terms {
		rec, err := c.atomicData(term.Symbol)
		if err != nil {
			return nil, err
		}
		molecularWeight += term.Count * rec.Mass
		electronCount += term.Count * float64(rec.Number)
	}

	n := len(energiesKeV)
	energyEV := make([]float64, n)
	wavelengthM := make([]float64, n)
	for i, e := range energiesKeV {
		energyEV[i] = e * constants.KeV2eV
		wavelengthM[i] = constants.HCOverE / e
	}

	factors := make([]termFactors, 0, len(terms))
	for _, term := range terms {
		table, err := c.table(term.Symbol)
		if err != nil {
			return nil, err
		}
		f1, err := interp.New(table.Energy, table.F1)
		if err != nil {
			return nil, err
		}
		f2, err := interp.New(table.Energy, table.F2)
		if err != nil {
			return nil, err
		}
		factors = append(factors, termFactors{count: term.Count, f1: f1, f2: f2})
	}

	acc := accumulate(energyEV, wavelengthM, density, molecularWeight, factors)

	res := &MaterialResult{
		Formula:         materialFormula,
		MolecularWeight: molecularWeight,
		ElectronCount:   electronCount,
		MassDensity:     density,
		Energy:          append([]float64(nil), energiesKeV...),
		Dispersion:      acc.dispersion,
		Absorption:      acc.absorption,
		F1:              acc.f1,
		F2:              acc.f2,
	}
	derive(res, wavelengthM)
	return res, nil
}
