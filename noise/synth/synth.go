package synth

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	algofft "github.com/cwbudde/algo-fft"
)

// Errors returned by the generator.
var (
	ErrInvalidSampleRate = errors.New("synth: sample rate must be positive")
	ErrInvalidSamples    = errors.New("synth: sample count must be positive")
	ErrNilSpectrum       = errors.New("synth: spectrum function must not be nil")
)

// SpectrumFunc returns a noise level in dB re 1 µPa for a 1 Hz band at
// the given frequency. The thermal package's level functions curry
// directly into this shape.
type SpectrumFunc func(freqHz float64) float64

// Generator creates deterministic noise realizations from a seed.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured generator. The default seed is 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Realization synthesizes a real pressure time series (Pa) of the given
// length whose one-sided PSD follows shape.
//
// The FFT size is the next power of two at or above samples; the result
// is truncated back to samples. Bin k at frequency k·fs/N receives an
// expected power of psd(f)·Δf with Δf = fs/N, so the sample variance of
// a long realization approaches the band-integrated mean-square
// pressure of the model. The DC bin is left empty.
func (g *Generator) Realization(shape SpectrumFunc, sampleRate float64, samples int) ([]float64, error) {
	if shape == nil {
		return nil, ErrNilSpectrum
	}

	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	if samples <= 0 {
		return nil, ErrInvalidSamples
	}

	fftSize := nextPowerOf2(samples)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("synth: failed to create FFT plan: %w", err)
	}

	binWidth := sampleRate / float64(fftSize)
	n := float64(fftSize)
	rng := rand.New(rand.NewSource(g.seed))

	spec := make([]complex128, fftSize)
	for k := 1; k < fftSize/2; k++ {
		// Band power for this bin, converted from dB re 1 µPa.
		p2 := bandMeanSquare(shape, float64(k)*binWidth, binWidth)

		// Complex Gaussian with E|X|² = 2A²; together with the
		// mirrored conjugate bin and the 1/N of the inverse
		// transform, A = (N/2)·√p2 makes the pair contribute
		// exactly p2 to the expected signal power.
		amp := n / 2 * math.Sqrt(p2)
		spec[k] = complex(amp*rng.NormFloat64(), amp*rng.NormFloat64())
		spec[fftSize-k] = cmplx.Conj(spec[k])
	}

	// Nyquist bin is its own conjugate, so it stays real and is
	// counted once.
	if fftSize >= 2 {
		p2 := bandMeanSquare(shape, sampleRate/2, binWidth)
		spec[fftSize/2] = complex(n*math.Sqrt(p2)*rng.NormFloat64(), 0)
	}

	timeData := make([]complex128, fftSize)
	if err := plan.Inverse(timeData, spec); err != nil {
		return nil, fmt.Errorf("synth: inverse FFT failed: %w", err)
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = real(timeData[i])
	}

	return out, nil
}

// bandMeanSquare converts a 1 Hz-band level at freqHz into the linear
// mean-square pressure of a band binWidth wide. Non-finite levels
// (e.g. -Inf at a spectrum's low edge) map to zero power.
func bandMeanSquare(shape SpectrumFunc, freqHz, binWidth float64) float64 {
	level := shape(freqHz)
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return 0
	}

	return 1e-12 * math.Pow(10, level/10) * binWidth
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
