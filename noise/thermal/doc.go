// Package thermal computes acoustic thermal-noise pressure levels from
// closed-form physics equations.
//
// Thermal noise is the pressure fluctuation caused by the random motion
// of the molecules of the medium itself. It sets the absolute lower
// bound for any acoustic measurement: no hydrophone or microphone can
// resolve signals below the thermal floor of the water or air around it.
// Three classical derivations are provided.
//
// [PointLevel] is Mellen's point-receiver result (Mellen, JASA 1952).
// The mean-square pressure in a band Δf around frequency f is
//
//	p² = 4π·kB·T·ρ·f²·Δf / c
//
// [SphereLevel] is the Callen–Welton fluctuation-dissipation result
// averaged over the surface of a sphere of radius a. With the
// wavenumber k = 2πf/c,
//
//	p² = 4π·kB·T·ρ·f²·Δf / (c·(1+(k·a)²))
//
// For k·a → 0 this reduces to the point formula; for k·a ≫ 1 the finite
// aperture averages out the short-wavelength fluctuations.
//
// [PistonLevel] is the Sivian–White result for a rigid circular piston
// in an infinite baffle (Sivian & White, JASA 1933),
//
//	p² = 4·kB·T·ρ·c·Δf / (π·a²) · (1 − J₁(2ka)/(ka))
//
// where J₁ is the Bessel function of the first kind, order 1.
//
// Levels are expressed in dB re 1 µPa via the shared conversion
// [LevelFromMeanSquare]. All functions are pure and total: invalid
// physical inputs (zero sound speed, zero radius) propagate as Inf or
// NaN rather than panicking.
//
// # Usage
//
// Scalar evaluation for seawater at 4 °C, 1 kHz, 1 Hz band:
//
//	nl := thermal.PointLevel(277.15, 1027.3, 1500, 1000, 1)
//
// Spectrum evaluation across a frequency axis:
//
//	freqs := thermal.Frequencies(10, 100e3, 512, true)
//	levels := thermal.PointSpectrum(freqs, 277.15, 1027.3, 1500, 1)
//
// For string-keyed method selection (e.g. driven by user input) see
// [ParseMethod], [Evaluate] and [EvaluateAll].
package thermal
