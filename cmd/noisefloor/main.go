// Command noisefloor prints acoustic thermal-noise levels over a
// frequency range.
//
// Usage:
//
//	noisefloor [flags] [method-name ...]
//
// Without arguments it prints every method applicable to the given
// parameters (the aperture-averaged methods need -radius).
//
// Examples:
//
//	noisefloor
//	noisefloor -radius 0.01
//	noisefloor -medium air -from 100 -to 20000 mellen
//	noisefloor -radius 0.02 callen-welton sivian-white
//	noisefloor -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-noise/noise/thermal"
)

func main() {
	medium := flag.String("medium", "seawater", "medium preset: seawater or air")
	temp := flag.Float64("temp", math.NaN(), "temperature in K (overrides preset)")
	density := flag.Float64("density", math.NaN(), "density in kg/m³ (overrides preset)")
	speed := flag.Float64("speed", math.NaN(), "sound speed in m/s (overrides preset)")
	radius := flag.Float64("radius", 0, "receiver radius in m (enables sphere/piston methods)")
	bandwidth := flag.Float64("bw", 1, "analysis bandwidth in Hz")
	from := flag.Float64("from", 100, "start frequency in Hz")
	to := flag.Float64("to", 100e3, "end frequency in Hz")
	points := flag.Int("points", 13, "number of frequencies")
	linear := flag.Bool("linear", false, "use a linear frequency axis instead of logarithmic")
	list := flag.Bool("list", false, "list available method names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: noisefloor [flags] [method-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints acoustic thermal-noise levels in dB re 1 uPa.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints every method the parameters allow.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  noisefloor -radius 0.01\n")
		fmt.Fprintf(os.Stderr, "  noisefloor -medium air -from 100 -to 20000 mellen\n")
		fmt.Fprintf(os.Stderr, "  noisefloor -list\n")
	}
	flag.Parse()

	if *list {
		for _, m := range thermal.Methods() {
			fmt.Println(m)
		}
		return
	}

	med, err := resolveMedium(*medium, *temp, *density, *speed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	methods, err := resolveMethods(flag.Args(), *radius)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *points <= 0 || *from <= 0 || *to < *from {
		fmt.Fprintf(os.Stderr, "error: invalid frequency axis (from %g to %g, %d points)\n", *from, *to, *points)
		os.Exit(1)
	}

	freqs := thermal.Frequencies(*from, *to, *points, !*linear)
	printTable(med, methods, freqs, *bandwidth, *radius)
}

func resolveMedium(name string, temp, density, speed float64) (thermal.Medium, error) {
	var med thermal.Medium
	switch name {
	case "seawater":
		med = thermal.Seawater()
	case "air":
		med = thermal.Air()
	default:
		return thermal.Medium{}, fmt.Errorf("unknown medium %q (use seawater or air)", name)
	}

	if !math.IsNaN(temp) {
		med.Temperature = temp
	}
	if !math.IsNaN(density) {
		med.Density = density
	}
	if !math.IsNaN(speed) {
		med.SoundSpeed = speed
	}

	return med, nil
}

func resolveMethods(names []string, radius float64) ([]thermal.Method, error) {
	if len(names) == 0 {
		var out []thermal.Method
		for _, m := range thermal.Methods() {
			if m.RequiresRadius() && radius <= 0 {
				continue
			}
			out = append(out, m)
		}
		return out, nil
	}

	out := make([]thermal.Method, 0, len(names))
	for _, name := range names {
		m, err := thermal.ParseMethod(name)
		if err != nil {
			return nil, fmt.Errorf("%v (use -list to see available)", err)
		}

		if m.RequiresRadius() && radius <= 0 {
			return nil, fmt.Errorf("method %s needs -radius", m)
		}

		out = append(out, m)
	}

	return out, nil
}

func printTable(med thermal.Medium, methods []thermal.Method, freqs []float64, bandwidth, radius float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "Frequency [Hz]\t")
	for _, m := range methods {
		fmt.Fprintf(tw, "%s [dB]\t", m)
	}
	fmt.Fprintln(tw)

	for _, f := range freqs {
		fmt.Fprintf(tw, "%.1f\t", f)
		for _, m := range methods {
			p := med.ParamsWithRadius(f, bandwidth, radius)

			level, err := thermal.Evaluate(m, p)
			if err != nil {
				fmt.Fprintf(tw, "-\t")
				continue
			}

			fmt.Fprintf(tw, "%.2f\t", level)
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
