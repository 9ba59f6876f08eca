package thermal

// Medium bundles the bulk properties of the propagation medium.
type Medium struct {
	Temperature float64 // kelvin
	Density     float64 // kg/m³
	SoundSpeed  float64 // m/s
}

// Seawater returns reference conditions for cold seawater
// (4 °C, salinity ≈ 35 PSU at atmospheric pressure).
func Seawater() Medium {
	return Medium{
		Temperature: 277.15,
		Density:     1027.3,
		SoundSpeed:  1500.0,
	}
}

// Air returns reference conditions for dry air at 20 °C and 1 atm.
func Air() Medium {
	return Medium{
		Temperature: 293.15,
		Density:     1.2041,
		SoundSpeed:  343.2,
	}
}

// Params returns a dispatch parameter bundle for this medium at the
// given frequency and bandwidth, with no radius set.
func (m Medium) Params(freqHz, bandwidthHz float64) Params {
	return Params{
		Temperature: m.Temperature,
		Density:     m.Density,
		SoundSpeed:  m.SoundSpeed,
		Frequency:   freqHz,
		Bandwidth:   bandwidthHz,
	}
}

// ParamsWithRadius is [Medium.Params] with a receiver radius in m,
// enabling the sphere- and piston-averaged methods.
func (m Medium) ParamsWithRadius(freqHz, bandwidthHz, radius float64) Params {
	p := m.Params(freqHz, bandwidthHz)
	p.Radius = radius

	return p
}
