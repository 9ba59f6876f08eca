package thermal

import (
	"errors"
	"math"
	"testing"
)

func TestParseMethod(t *testing.T) {
	cases := []struct {
		in   string
		want Method
	}{
		{"mellen", MethodMellen},
		{"Mellen", MethodMellen},
		{"point", MethodMellen},
		{"callen-welton", MethodCallenWelton},
		{"Callen Welton", MethodCallenWelton},
		{"CALLENWELTON", MethodCallenWelton},
		{"sphere", MethodCallenWelton},
		{"sivian-white", MethodSivianWhite},
		{"Sivian_White", MethodSivianWhite},
		{"sivian.white", MethodSivianWhite},
		{"piston", MethodSivianWhite},
	}

	for _, tc := range cases {
		got, err := ParseMethod(tc.in)
		if err != nil {
			t.Errorf("ParseMethod(%q): %v", tc.in, err)
			continue
		}

		if got != tc.want {
			t.Errorf("ParseMethod(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseMethodUnknown(t *testing.T) {
	_, err := ParseMethod("knudsen")
	if !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("ParseMethod(unknown) error = %v, want ErrUnknownMethod", err)
	}
}

func TestMethodString(t *testing.T) {
	cases := map[Method]string{
		MethodMellen:       "Mellen",
		MethodCallenWelton: "Callen-Welton",
		MethodSivianWhite:  "Sivian-White",
		Method(99):         "Method(99)",
	}

	for m, want := range cases {
		if got := m.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(m), got, want)
		}
	}

	if Method(99).Valid() {
		t.Error("Method(99).Valid() = true")
	}
}

func TestEvaluateMatchesDirectCalls(t *testing.T) {
	p := Seawater().ParamsWithRadius(refFreq, refBand, 0.01)

	cases := []struct {
		m    Method
		want float64
	}{
		{MethodMellen, PointLevel(p.Temperature, p.Density, p.SoundSpeed, p.Frequency, p.Bandwidth)},
		{MethodCallenWelton, SphereLevel(p.Temperature, p.Density, p.SoundSpeed, p.Frequency, p.Bandwidth, p.Radius)},
		{MethodSivianWhite, PistonLevel(p.Temperature, p.Density, p.SoundSpeed, p.Frequency, p.Bandwidth, p.Radius)},
	}

	for _, tc := range cases {
		got, err := Evaluate(tc.m, p)
		if err != nil {
			t.Fatalf("Evaluate(%v): %v", tc.m, err)
		}

		if got != tc.want {
			t.Errorf("Evaluate(%v) = %g, want %g", tc.m, got, tc.want)
		}
	}
}

func TestEvaluateRadiusRequired(t *testing.T) {
	p := Seawater().Params(refFreq, refBand)

	for _, m := range []Method{MethodCallenWelton, MethodSivianWhite} {
		_, err := Evaluate(m, p)
		if !errors.Is(err, ErrRadiusRequired) {
			t.Errorf("Evaluate(%v) without radius: error = %v, want ErrRadiusRequired", m, err)
		}
	}

	// The point method never needs a radius.
	if _, err := Evaluate(MethodMellen, p); err != nil {
		t.Errorf("Evaluate(Mellen) without radius: %v", err)
	}
}

func TestEvaluateUnknownMethod(t *testing.T) {
	_, err := Evaluate(Method(7), Seawater().Params(refFreq, refBand))
	if !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("Evaluate(Method(7)) error = %v, want ErrUnknownMethod", err)
	}
}

func TestEvaluateAllSkipsRadiusMethods(t *testing.T) {
	// Without a radius only the point method applies; the selection is
	// an explicit radius check, so no error is produced for the skipped
	// methods.
	got, err := EvaluateAll(Seawater().Params(refFreq, refBand))
	if err != nil {
		t.Fatalf("EvaluateAll: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("EvaluateAll without radius returned %d methods, want 1: %v", len(got), got)
	}

	if _, ok := got[MethodMellen]; !ok {
		t.Error("EvaluateAll without radius is missing the Mellen result")
	}
}

func TestEvaluateAllWithRadius(t *testing.T) {
	got, err := EvaluateAll(Seawater().ParamsWithRadius(refFreq, refBand, 0.01))
	if err != nil {
		t.Fatalf("EvaluateAll: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("EvaluateAll with radius returned %d methods, want 3: %v", len(got), got)
	}

	for m, nl := range got {
		if math.IsNaN(nl) || math.IsInf(nl, 0) {
			t.Errorf("%v level = %v, want finite", m, nl)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	valid := Seawater().Params(refFreq, refBand)
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"temperature", func(p *Params) { p.Temperature = 0 }, ErrInvalidTemperature},
		{"density", func(p *Params) { p.Density = -1 }, ErrInvalidDensity},
		{"sound speed", func(p *Params) { p.SoundSpeed = 0 }, ErrInvalidSoundSpeed},
		{"frequency", func(p *Params) { p.Frequency = -1 }, ErrInvalidFrequency},
		{"bandwidth", func(p *Params) { p.Bandwidth = -1 }, ErrInvalidBandwidth},
	}

	for _, tc := range cases {
		p := valid
		tc.mutate(&p)

		if err := p.Validate(); !errors.Is(err, tc.want) {
			t.Errorf("%s: Validate() = %v, want %v", tc.name, err, tc.want)
		}
	}

	// Zero frequency and bandwidth are allowed; the formulas handle the
	// degenerate -Inf level themselves.
	p := valid
	p.Frequency = 0
	p.Bandwidth = 0

	if err := p.Validate(); err != nil {
		t.Errorf("zero frequency/bandwidth rejected: %v", err)
	}
}
