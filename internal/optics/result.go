package optics

// MaterialResult holds everything computed for one material. The per-energy
// slices are parallel: index i of each refers to Energy[i]. A result is never
// modified after SingleMaterial returns it.
type MaterialResult struct {
	Formula         string
	MolecularWeight float64 // [g/mol]
	ElectronCount   float64 // per formula unit
	MassDensity     float64 // [g/cm^3]
	ElectronDensity float64 // [electrons/A^3]

	Energy            []float64 // [keV]
	Wavelength        []float64 // [A]
	Dispersion        []float64 // delta
	Absorption        []float64 // beta
	F1                []float64
	F2                []float64
	CriticalAngle     []float64 // [deg]
	AttenuationLength []float64 // [cm]
	ReSLD             []float64 // [A^-2]
	ImSLD             []float64 // [A^-2]
}
