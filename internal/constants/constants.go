package constants

const ThomsonScatteringLength float64 = 2.8179403262e-15 // [m]
const Avogadro float64 = 6.02214076e23                   // [mol^-1]
const HCOverE float64 = 1.23984198e-9                    // [m keV] photon wavelength times energy
const KeV2eV float64 = 1.e3
