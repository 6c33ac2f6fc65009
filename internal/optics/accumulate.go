package optics

import (
	"math"

	"github.com/wildstyl3r/xrop/internal/constants"
	"github.com/wildstyl3r/xrop/internal/interp"
)

// scaled by density/MW this turns per-atom scattering factors into
// refractive-index decrements
const accumulatorConst = constants.ThomsonScatteringLength * constants.Avogadro * 1e6 / (2. * math.Pi)

type termFactors struct {
	count  float64
	f1, f2 *interp.Interpolant
}

type coefficients struct {
	dispersion []float64
	absorption []float64
	f1         []float64
	f2         []float64
}

// accumulate superposes every term's interpolated scattering factors over the
// shared energy axis, term-major. The sum is linear, so term order matters
// only at rounding level.
func accumulate(energyEV, wavelengthM []float64, density, molecularWeight float64, terms []termFactors) coefficients {
	n := len(energyEV)
	out := coefficients{
		dispersion: make([]float64, n),
		absorption: make([]float64, n),
		f1:         make([]float64, n),
		f2:         make([]float64, n),
	}
	prefactor := accumulatorConst * density / molecularWeight
	for _, term := range terms {
		for i := range energyEV {
			f1 := term.f1.At(energyEV[i])
			f2 := term.f2.At(energyEV[i])
			w2 := wavelengthM[i] * wavelengthM[i]
			out.dispersion[i] += w2 * prefactor * term.count * f1
			out.absorption[i] += w2 * prefactor * term.count * f2
			out.f1[i] += term.count * f1
			out.f2[i] += term.count * f2
		}
	}
	return out
}
