// Package gen generates the per-precision elementary functions in package
// prim, along with tests comparing them against the math libraries they
// wrap. Run it through cmd/gen-prim.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

// Func describes one generated function. Every parameter has the generic
// float type F.
type Func struct {
	// Name of the generated generic function.
	Name string
	// Doc is the body of the doc comment, without the leading name.
	Doc string
	// Params are the parameter names, in order.
	Params []string
	// F32 and F64 are the implementations for each precision, as they
	// should be written in the generated source.
	F32, F64 string
}

// Arity is the number of parameters.
func (f Func) Arity() int { return len(f.Params) }

// ParamList is the parameter list of the generic function, eg. "x, y F".
func (f Func) ParamList() string {
	return strings.Join(f.Params, ", ") + " F"
}

// Call renders a call to impl with every parameter converted to typ.
func (f Func) Call(impl, typ string) string {
	args := make([]string, len(f.Params))
	for i, p := range f.Params {
		args[i] = typ + "(" + p + ")"
	}
	return impl + "(" + strings.Join(args, ", ") + ")"
}

// Funcs is everything that gets generated. The float32 Round, Pow, Exp and
// Log go through float64 (see special.go), the rest have a direct math32
// counterpart.
var Funcs = []Func{
	{Name: "Floor", Doc: "returns the greatest integer value less than or equal to x.", Params: []string{"x"}, F32: "math32.Floor", F64: "math.Floor"},
	{Name: "Ceil", Doc: "returns the least integer value greater than or equal to x.", Params: []string{"x"}, F32: "math32.Ceil", F64: "math.Ceil"},
	{Name: "Round", Doc: "returns the nearest integer, rounding half away from zero.", Params: []string{"x"}, F32: "round32", F64: "math.Round"},
	{Name: "Trunc", Doc: "returns the integer value of x.", Params: []string{"x"}, F32: "math32.Trunc", F64: "math.Trunc"},
	{Name: "Abs", Doc: "returns x with the sign bit cleared.", Params: []string{"x"}, F32: "math32.Abs", F64: "math.Abs"},
	{Name: "Copysign", Doc: "returns a value with the magnitude of x and the sign of y.", Params: []string{"x", "y"}, F32: "math32.Copysign", F64: "math.Copysign"},
	{Name: "Pow", Doc: "returns x**y.", Params: []string{"x", "y"}, F32: "pow32", F64: "math.Pow"},
	{Name: "Sqrt", Doc: "returns the square root of x.", Params: []string{"x"}, F32: "math32.Sqrt", F64: "math.Sqrt"},
	{Name: "Exp", Doc: "returns e**x.", Params: []string{"x"}, F32: "exp32", F64: "math.Exp"},
	{Name: "Exp2", Doc: "returns 2**x.", Params: []string{"x"}, F32: "math32.Exp2", F64: "math.Exp2"},
	{Name: "Log", Doc: "returns the natural logarithm of x.", Params: []string{"x"}, F32: "log32", F64: "math.Log"},
	{Name: "Log2", Doc: "returns the binary logarithm of x.", Params: []string{"x"}, F32: "math32.Log2", F64: "math.Log2"},
	{Name: "Log10", Doc: "returns the decimal logarithm of x.", Params: []string{"x"}, F32: "math32.Log10", F64: "math.Log10"},
	{Name: "Sin", Doc: "returns the sine of the radian argument x.", Params: []string{"x"}, F32: "math32.Sin", F64: "math.Sin"},
	{Name: "Cos", Doc: "returns the cosine of the radian argument x.", Params: []string{"x"}, F32: "math32.Cos", F64: "math.Cos"},
}

// Elementary returns the formatted source of elementary.go.
func Elementary() ([]byte, error) {
	return execute(srcTmpl, Funcs)
}

// ElementaryTest returns the formatted source of elementary_test.go.
func ElementaryTest() ([]byte, error) {
	return execute(testTmpl, Funcs)
}

func execute(t *template.Template, funcs []Func) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, funcs); err != nil {
		return nil, fmt.Errorf("executing %s: %w", t.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w\n%s", t.Name(), err, buf.Bytes())
	}
	return src, nil
}

const header = `// Code generated by gen-prim. DO NOT EDIT.

`

var srcTmpl = template.Must(template.New("elementary.go").Parse(header + `package prim

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)
{{range .}}
// {{.Name}} {{.Doc}}
func {{.Name}}[F constraints.Float]({{.ParamList}}) F {
	if Single[F]() {
		return F({{.Call .F32 "float32"}})
	}
	return F({{.Call .F64 "float64"}})
}
{{end}}`))

var testTmpl = template.Must(template.New("elementary_test.go").Parse(header + `package prim

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
)
{{range .}}
func Test{{.Name}}(t *testing.T) {
{{- if eq .Arity 1}}
	for _, x := range samples64 {
		if got, want := {{.Name}}(x), {{.F64}}(x); !same64(got, want) {
			t.Errorf("{{.Name}}(%v) = %v, want: %v", x, got, want)
		}
	}
	for _, x := range samples32 {
		if got, want := {{.Name}}(x), {{.F32}}(x); !same32(got, want) {
			t.Errorf("{{.Name}}(float32(%v)) = %v, want: %v", x, got, want)
		}
	}
{{- else}}
	for _, x := range samples64 {
		for _, y := range samples64 {
			if got, want := {{.Name}}(x, y), {{.F64}}(x, y); !same64(got, want) {
				t.Errorf("{{.Name}}(%v, %v) = %v, want: %v", x, y, got, want)
			}
		}
	}
	for _, x := range samples32 {
		for _, y := range samples32 {
			if got, want := {{.Name}}(x, y), {{.F32}}(x, y); !same32(got, want) {
				t.Errorf("{{.Name}}(float32(%v), float32(%v)) = %v, want: %v", x, y, got, want)
			}
		}
	}
{{- end}}
}
{{end}}`))
