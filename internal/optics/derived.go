package optics

import (
	"math"

	"github.com/wildstyl3r/xrop/internal/constants"
)

// derive fills in the quantities that follow from the accumulated
// coefficients. Dispersion can go negative near an absorption edge, which
// leaves NaN in the critical angle; absorption near zero blows up the
// attenuation length. Both are reported as-is.
func derive(res *MaterialResult, wavelengthM []float64) {
	res.ElectronDensity = 1e6 * res.MassDensity / res.MolecularWeight * constants.Avogadro * res.ElectronCount / 1e30

	n := len(res.Energy)
	res.Wavelength = make([]float64, n)
	res.CriticalAngle = make([]float64, n)
	res.AttenuationLength = make([]float64, n)
	res.ReSLD = make([]float64, n)
	res.ImSLD = make([]float64, n)
	for i := range res.Energy {
		res.Wavelength[i] = wavelengthM[i] * 1e10
		res.CriticalAngle[i] = math.Sqrt(2.*res.Dispersion[i]) * 180. / math.Pi
		res.AttenuationLength[i] = wavelengthM[i] / res.Absorption[i] / (4. * math.Pi) * 100.
		w2 := wavelengthM[i] * wavelengthM[i]
		res.ReSLD[i] = res.Dispersion[i] * (2. * math.Pi / 1e20) / w2
		res.ImSLD[i] = res.Absorption[i] * (2. * math.Pi / 1e20) / w2
	}
}
