// show-relaxed shows how numbers look wrapped for relaxed arithmetic at each
// precision, and how the relaxed operators compare with ordinary arithmetic,
// mostly for debugging.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pfcm/relaxed"
	"github.com/pfcm/relaxed/internal/prim"
)

var (
	precisionsFlag = flag.String("precisions", "", "comma separated list of `precisions` to show. Available precisions are: "+strings.Join(precisionKeys, ", ")+". Defaults to all precisions")
	opsFlag        = flag.String("ops", "", "comma separated list of `operations` to show. Available operations are: "+strings.Join(opKeys, ", ")+". Defaults to all operations")
)

var (
	precisionKeys = []string{"f32", "f64"}
	opKeys        = []string{"add", "sub", "mul", "div", "rem"}
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if n := flag.NArg(); n < 1 || n > 2 {
		fail("Need exactly one or two arguments.")
	}

	precisions, err := parseKeys(*precisionsFlag, precisionKeys, "precision")
	if err != nil {
		fail(err.Error())
	}
	ops, err := parseKeys(*opsFlag, opKeys, "op")
	if err != nil {
		fail(err.Error())
	}

	a, err := parse(flag.Arg(0))
	if err != nil {
		fail(err.Error())
	}
	w := tabwriter.NewWriter(os.Stdout, 11, 1, 1, ' ', 0)

	showConversions(w, precisions, a)

	if flag.NArg() == 2 {
		b, err := parse(flag.Arg(1))
		if err != nil {
			fail(err.Error())
		}
		fmt.Fprintln(w)
		showConversions(w, precisions, b)
		fmt.Fprintln(w)
		showOps(w, precisions, ops, a, b)
	}

	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

// parseKeys parses a comma separated subset of all. An empty list means all
// of them.
func parseKeys(list string, all []string, kind string) (map[string]bool, error) {
	known := make(map[string]bool)
	for _, k := range all {
		known[k] = true
	}
	if list == "" {
		return known, nil
	}
	result := make(map[string]bool)
	for _, k := range strings.Split(list, ",") {
		if !known[k] {
			return nil, fmt.Errorf("unknown %s %q", kind, k)
		}
		result[k] = true
	}
	return result, nil
}

// parse accepts anything strconv.ParseFloat does, including hex floats, Inf
// and NaN.
func parse(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

var conversions = map[string]func(io.Writer, float64){
	"f32": func(w io.Writer, x float64) { showConversion(w, "f32", float32(x)) },
	"f64": func(w io.Writer, x float64) { showConversion(w, "f64", x) },
}

var opRows = map[string]func(w io.Writer, op string, a, b float64){
	"f32": func(w io.Writer, op string, a, b float64) { showOp(w, "f32", op, float32(a), float32(b)) },
	"f64": func(w io.Writer, op string, a, b float64) { showOp(w, "f64", op, a, b) },
}

func showConversions(w io.Writer, precisions map[string]bool, x float64) {
	for _, p := range precisionKeys {
		if precisions[p] {
			conversions[p](w, x)
		}
	}
}

func showOps(w io.Writer, precisions, showOps map[string]bool, a, b float64) {
	fmt.Fprintln(w, "\top\trelaxed\tordinary\t")
	for _, p := range precisionKeys {
		if !precisions[p] {
			continue
		}
		for _, o := range opKeys {
			if showOps[o] {
				opRows[p](w, o, a, b)
			}
		}
	}
}

func showConversion[F relaxed.Precision](w io.Writer, name string, x F) {
	v := relaxed.New(x)
	fmt.Fprintf(w, "%s\t%v\t%e\t%s\t\n", name, v, v, bits(x))
}

func showOp[F relaxed.Precision](w io.Writer, name, op string, a, b F) {
	got := relaxedOps[F]()[op](relaxed.New(a), relaxed.New(b))
	want := ordinaryOps[F]()[op](a, b)
	note := ""
	switch {
	case !finite(a) || !finite(b):
		note = "unspecified: non-finite operand"
	case got.Get() != want && !(got.IsNaN() && math.IsNaN(float64(want))):
		note = "differs"
	}
	fmt.Fprintf(w, "%s\t%s\t%v\t%v\t%s\n", name, op, got, want, note)
}

func relaxedOps[F relaxed.Precision]() map[string]func(a, b relaxed.Float[F]) relaxed.Float[F] {
	return map[string]func(a, b relaxed.Float[F]) relaxed.Float[F]{
		"add": relaxed.Float[F].Add,
		"sub": relaxed.Float[F].Sub,
		"mul": relaxed.Float[F].Mul,
		"div": relaxed.Float[F].Div,
		"rem": relaxed.Float[F].Rem,
	}
}

func ordinaryOps[F relaxed.Precision]() map[string]func(a, b F) F {
	return map[string]func(a, b F) F{
		"add": func(a, b F) F { return F(a + b) },
		"sub": func(a, b F) F { return F(a - b) },
		"mul": func(a, b F) F { return F(a * b) },
		"div": func(a, b F) F { return F(a / b) },
		// fmod is exact, so doing it in float64 is fine for float32 too.
		"rem": func(a, b F) F { return F(math.Mod(float64(a), float64(b))) },
	}
}

func finite[F relaxed.Precision](x F) bool {
	return !math.IsInf(float64(x), 0) && !math.IsNaN(float64(x))
}

func bits[F relaxed.Precision](x F) string {
	if prim.Single[F]() {
		return fmt.Sprintf("0x%08x", math.Float32bits(float32(x)))
	}
	return fmt.Sprintf("0x%016x", math.Float64bits(float64(x)))
}

func fail(reason string) {
	usage(os.Stderr, reason)
	os.Exit(1)
}

func usage(w io.Writer, reason string) {
	fmt.Fprintln(w, reason)
	fmt.Fprint(w, help)
}

const help = `show-relaxed shows a number wrapped for relaxed arithmetic at
each precision.
Usage:
	show-relaxed [-precisions] [-ops] num [num]

Where num is a float literal in Go syntax, or Inf or NaN. If a second number
is provided, also shows the results of the relaxed operators between them
next to ordinary arithmetic.
`
