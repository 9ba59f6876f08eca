package thermal

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by Params validation and method dispatch.
var (
	ErrInvalidTemperature = errors.New("thermal: temperature must be positive")
	ErrInvalidDensity     = errors.New("thermal: density must be positive")
	ErrInvalidSoundSpeed  = errors.New("thermal: sound speed must be positive")
	ErrInvalidFrequency   = errors.New("thermal: frequency must be non-negative")
	ErrInvalidBandwidth   = errors.New("thermal: bandwidth must be non-negative")
	ErrRadiusRequired     = errors.New("thermal: method requires a positive radius")
	ErrUnknownMethod      = errors.New("thermal: unknown method")
)

// Method identifies a thermal-noise derivation.
type Method int

const (
	// MethodMellen is the point-receiver formula ([PointLevel]).
	MethodMellen Method = iota

	// MethodCallenWelton is the sphere-averaged formula ([SphereLevel]).
	MethodCallenWelton

	// MethodSivianWhite is the piston-averaged formula ([PistonLevel]).
	MethodSivianWhite

	methodCount // sentinel
)

var methodNames = [methodCount]string{
	"Mellen", "Callen-Welton", "Sivian-White",
}

// String returns the canonical name of the method.
func (m Method) String() string {
	if m >= 0 && m < methodCount {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Valid reports whether m is a known method.
func (m Method) Valid() bool {
	return m >= 0 && m < methodCount
}

// RequiresRadius reports whether the method needs a receiver radius.
func (m Method) RequiresRadius() bool {
	return m == MethodCallenWelton || m == MethodSivianWhite
}

// Methods returns all known methods in declaration order.
func Methods() []Method {
	return []Method{MethodMellen, MethodCallenWelton, MethodSivianWhite}
}

// ParseMethod resolves a method name, ignoring case, whitespace and
// punctuation: "Callen-Welton", "callen welton" and "CALLENWELTON" all
// resolve to [MethodCallenWelton]. The receiver geometry names "point",
// "sphere" and "piston" are accepted as aliases.
func ParseMethod(name string) (Method, error) {
	switch canonicalName(name) {
	case "mellen", "point":
		return MethodMellen, nil
	case "callenwelton", "sphere":
		return MethodCallenWelton, nil
	case "sivianwhite", "piston":
		return MethodSivianWhite, nil
	}

	return methodCount, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// canonicalName lowercases and strips every non-alphanumeric rune.
func canonicalName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Params bundles the physical inputs for method dispatch.
//
// Radius is optional: leave it zero for point-receiver evaluation and
// [EvaluateAll] will skip the methods that need it.
type Params struct {
	Temperature float64 // kelvin
	Density     float64 // kg/m³
	SoundSpeed  float64 // m/s
	Frequency   float64 // Hz
	Bandwidth   float64 // Hz
	Radius      float64 // m, optional
}

// Validate checks the positivity constraints on the physical inputs.
// A zero radius is allowed; it only restricts which methods apply.
func (p Params) Validate() error {
	if p.Temperature <= 0 {
		return ErrInvalidTemperature
	}

	if p.Density <= 0 {
		return ErrInvalidDensity
	}

	if p.SoundSpeed <= 0 {
		return ErrInvalidSoundSpeed
	}

	if p.Frequency < 0 {
		return ErrInvalidFrequency
	}

	if p.Bandwidth < 0 {
		return ErrInvalidBandwidth
	}

	return nil
}

// Evaluate computes the noise level in dB re 1 µPa for the given method.
// Returns ErrRadiusRequired for the sphere and piston methods when
// p.Radius is not positive.
func Evaluate(m Method, p Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	if m.RequiresRadius() && p.Radius <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrRadiusRequired, m)
	}

	switch m {
	case MethodMellen:
		return PointLevel(p.Temperature, p.Density, p.SoundSpeed, p.Frequency, p.Bandwidth), nil
	case MethodCallenWelton:
		return SphereLevel(p.Temperature, p.Density, p.SoundSpeed, p.Frequency, p.Bandwidth, p.Radius), nil
	case MethodSivianWhite:
		return PistonLevel(p.Temperature, p.Density, p.SoundSpeed, p.Frequency, p.Bandwidth, p.Radius), nil
	}

	return 0, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
}

// EvaluateAll computes the noise level for every method applicable to p.
// Methods that need a radius are included only when p.Radius is
// positive; the radius check is explicit, not inferred from evaluation
// failures.
func EvaluateAll(p Params) (map[Method]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := make(map[Method]float64, methodCount)
	for _, m := range Methods() {
		if m.RequiresRadius() && p.Radius <= 0 {
			continue
		}

		level, err := Evaluate(m, p)
		if err != nil {
			return nil, err
		}
		out[m] = level
	}

	return out, nil
}
