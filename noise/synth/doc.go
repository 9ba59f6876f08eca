// Package synth generates time-domain Gaussian noise realizations whose
// one-sided power spectral density follows a prescribed level spectrum.
//
// The intended use is auralization and fixture synthesis for the
// thermal-noise formulas in noise/thermal: pass one of the spectrum
// functions and get back a pressure time series (in Pa) whose band
// powers match the analytic model.
//
//	gen := synth.NewGenerator(synth.WithSeed(42))
//	sea := thermal.Seawater()
//	x, err := gen.Realization(func(f float64) float64 {
//	    return thermal.PointLevel(sea.Temperature, sea.Density, sea.SoundSpeed, f, 1)
//	}, 192000, 1<<16)
//
// Synthesis happens in the frequency domain: every positive-frequency
// bin receives an independent complex Gaussian sample scaled so its
// expected power equals the model's band power, conjugate symmetry is
// enforced, and a single inverse FFT produces the real time series.
// Realizations are deterministic for a fixed seed.
package synth
