package thermal

import "math"

// Physical constants shared by all formulas.
const (
	// Boltzmann is the Boltzmann constant in J/K (2019 SI exact value).
	Boltzmann = 1.380649e-23

	// RefPressure is the underwater-acoustics reference pressure of
	// 1 µPa, in Pa. Levels returned by this package are dB re 1 µPa.
	RefPressure = 1e-6
)

// LevelFromMeanSquare converts a mean-square pressure in Pa² to a level
// in dB re 1 µPa. Returns -Inf for zero and NaN for negative input.
func LevelFromMeanSquare(meanSquare float64) float64 {
	return 10 * math.Log10(meanSquare/(RefPressure*RefPressure))
}

// PointMeanSquare returns the thermal-noise mean-square pressure in Pa²
// at a point receiver (Mellen):
//
//	p² = 4π·kB·T·ρ·f²·Δf / c
//
// tempK is the temperature in kelvin, density in kg/m³, soundSpeed in
// m/s, freqHz the center frequency in Hz and bandwidthHz the analysis
// bandwidth in Hz.
func PointMeanSquare(tempK, density, soundSpeed, freqHz, bandwidthHz float64) float64 {
	return 4 * math.Pi * Boltzmann * tempK * density * freqHz * freqHz * bandwidthHz / soundSpeed
}

// PointLevel returns the Mellen point-receiver thermal-noise level in
// dB re 1 µPa for a band bandwidthHz wide centered at freqHz.
func PointLevel(tempK, density, soundSpeed, freqHz, bandwidthHz float64) float64 {
	return LevelFromMeanSquare(PointMeanSquare(tempK, density, soundSpeed, freqHz, bandwidthHz))
}

// SphereMeanSquare returns the thermal-noise mean-square pressure in Pa²
// averaged over the surface of a sphere of the given radius in m
// (Callen–Welton):
//
//	p² = 4π·kB·T·ρ·f²·Δf / (c·(1+(k·a)²)),  k = 2πf/c
//
// As radius → 0 this converges to [PointMeanSquare].
func SphereMeanSquare(tempK, density, soundSpeed, freqHz, bandwidthHz, radius float64) float64 {
	ka := waveNumber(freqHz, soundSpeed) * radius
	return PointMeanSquare(tempK, density, soundSpeed, freqHz, bandwidthHz) / (1 + ka*ka)
}

// SphereLevel returns the Callen–Welton sphere-averaged thermal-noise
// level in dB re 1 µPa.
func SphereLevel(tempK, density, soundSpeed, freqHz, bandwidthHz, radius float64) float64 {
	return LevelFromMeanSquare(SphereMeanSquare(tempK, density, soundSpeed, freqHz, bandwidthHz, radius))
}

// PistonMeanSquare returns the thermal-noise mean-square pressure in Pa²
// averaged over a rigid circular piston of the given radius in m in an
// infinite baffle (Sivian–White):
//
//	p² = 4·kB·T·ρ·c·Δf / (π·a²) · (1 − J₁(2ka)/(ka)),  k = 2πf/c
func PistonMeanSquare(tempK, density, soundSpeed, freqHz, bandwidthHz, radius float64) float64 {
	ka := waveNumber(freqHz, soundSpeed) * radius
	resistance := 1 - math.J1(2*ka)/ka

	return 4 * Boltzmann * tempK * density * soundSpeed * bandwidthHz / (math.Pi * radius * radius) * resistance
}

// PistonLevel returns the Sivian–White piston-averaged thermal-noise
// level in dB re 1 µPa.
func PistonLevel(tempK, density, soundSpeed, freqHz, bandwidthHz, radius float64) float64 {
	return LevelFromMeanSquare(PistonMeanSquare(tempK, density, soundSpeed, freqHz, bandwidthHz, radius))
}

// waveNumber returns k = 2πf/c.
func waveNumber(freqHz, soundSpeed float64) float64 {
	return 2 * math.Pi * freqHz / soundSpeed
}
