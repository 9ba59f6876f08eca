package thermal

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// PointSpectrum evaluates [PointLevel] elementwise over freqs with all
// other parameters fixed, returning one level in dB re 1 µPa per
// frequency. The frequency-squared and scaling steps use SIMD block
// operations when available; results match scalar evaluation bit-for-bit
// up to floating-point association.
func PointSpectrum(freqs []float64, tempK, density, soundSpeed, bandwidthHz float64) []float64 {
	if len(freqs) == 0 {
		return nil
	}

	out := make([]float64, len(freqs))
	vecmath.MulBlock(out, freqs, freqs)
	vecmath.ScaleBlockInPlace(out, 4*math.Pi*Boltzmann*tempK*density*bandwidthHz/soundSpeed)

	for i, ms := range out {
		out[i] = LevelFromMeanSquare(ms)
	}

	return out
}

// SphereSpectrum evaluates [SphereLevel] elementwise over freqs with all
// other parameters fixed.
func SphereSpectrum(freqs []float64, tempK, density, soundSpeed, bandwidthHz, radius float64) []float64 {
	if len(freqs) == 0 {
		return nil
	}

	out := make([]float64, len(freqs))
	vecmath.MulBlock(out, freqs, freqs)
	vecmath.ScaleBlockInPlace(out, 4*math.Pi*Boltzmann*tempK*density*bandwidthHz/soundSpeed)

	// Per-element aperture correction 1/(1+(k·a)²) with k = 2πf/c.
	kaPerHz := 2 * math.Pi * radius / soundSpeed
	for i, ms := range out {
		ka := kaPerHz * freqs[i]
		out[i] = LevelFromMeanSquare(ms / (1 + ka*ka))
	}

	return out
}

// PistonSpectrum evaluates [PistonLevel] elementwise over freqs with all
// other parameters fixed.
func PistonSpectrum(freqs []float64, tempK, density, soundSpeed, bandwidthHz, radius float64) []float64 {
	if len(freqs) == 0 {
		return nil
	}

	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = PistonLevel(tempK, density, soundSpeed, f, bandwidthHz, radius)
	}

	return out
}

// Frequencies returns n frequencies from fromHz to toHz inclusive,
// linearly or logarithmically spaced. A logarithmic axis with a
// non-positive fromHz produces NaN entries; callers own input validity.
// Returns nil for n <= 0 and [fromHz] for n == 1.
func Frequencies(fromHz, toHz float64, n int, logarithmic bool) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = fromHz
		return out
	}

	if logarithmic {
		lnFrom := math.Log(fromHz)
		step := (math.Log(toHz) - lnFrom) / float64(n-1)
		for i := range out {
			out[i] = math.Exp(lnFrom + float64(i)*step)
		}
	} else {
		step := (toHz - fromHz) / float64(n-1)
		for i := range out {
			out[i] = fromHz + float64(i)*step
		}
	}

	// Pin both endpoints exactly; exp/log round trips and the
	// incremental form both leave residual rounding there.
	out[0] = fromHz
	out[n-1] = toHz

	return out
}
