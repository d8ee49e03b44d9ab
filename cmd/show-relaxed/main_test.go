package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKeys(t *testing.T) {
	for _, c := range []struct {
		in   string
		want map[string]bool
		err  bool
	}{
		{"", map[string]bool{"add": true, "sub": true, "mul": true, "div": true, "rem": true}, false},
		{"add,rem", map[string]bool{"add": true, "rem": true}, false},
		{"add,pow", nil, true},
	} {
		got, err := parseKeys(c.in, opKeys, "op")
		if (err != nil) != c.err {
			t.Errorf("parseKeys(%q): err = %v, want error: %v", c.in, err, c.err)
			continue
		}
		if diff := cmp.Diff(got, c.want); diff != "" {
			t.Errorf("parseKeys(%q): unexpected diff (-got,+want):\n%v", c.in, diff)
		}
	}
}

func TestParse(t *testing.T) {
	for _, c := range []struct {
		in   string
		want float64
	}{
		{"1.5", 1.5},
		{"-2", -2},
		{"0x1p-2", 0.25},
		{"Inf", math.Inf(1)},
		{"-inf", math.Inf(-1)},
	} {
		got, err := parse(c.in)
		if err != nil || got != c.want {
			t.Errorf("parse(%q) = %v, %v, want: %v", c.in, got, err, c.want)
		}
	}
	if got, err := parse("NaN"); err != nil || !math.IsNaN(got) {
		t.Errorf("parse(NaN) = %v, %v", got, err)
	}
	if _, err := parse("one"); err == nil {
		t.Error("parse(one) succeeded")
	}
}

func TestShowConversion(t *testing.T) {
	var buf bytes.Buffer
	showConversion(&buf, "f32", float32(1))
	showConversion(&buf, "f64", 0.5)
	want := "f32\t1\t1.000000e+00\t0x3f800000\t\n" +
		"f64\t0.5\t5.000000e-01\t0x3fe0000000000000\t\n"
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Errorf("unexpected diff (-got,+want):\n%v", diff)
	}
}

func TestShowOp(t *testing.T) {
	for _, c := range []struct {
		op   string
		a, b float64
		want string
	}{
		{"add", 2, 1, "f64\tadd\t3\t3\t\n"},
		{"rem", 7, 2, "f64\trem\t1\t1\t\n"},
		{"add", math.Inf(1), 1, "f64\tadd\t+Inf\t+Inf\tunspecified: non-finite operand\n"},
	} {
		var buf bytes.Buffer
		showOp(&buf, "f64", c.op, c.a, c.b)
		if got := buf.String(); got != c.want {
			t.Errorf("showOp(%s, %v, %v) = %q, want: %q", c.op, c.a, c.b, got, c.want)
		}
	}
}

func TestShowOps(t *testing.T) {
	var buf bytes.Buffer
	showOps(&buf, map[string]bool{"f32": true}, map[string]bool{"mul": true, "div": true}, 3, 2)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		"\top\trelaxed\tordinary\t",
		"f32\tmul\t6\t6\t",
		"f32\tdiv\t1.5\t1.5\t",
	}
	if diff := cmp.Diff(lines, want); diff != "" {
		t.Errorf("unexpected diff (-got,+want):\n%v", diff)
	}
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	usage(&buf, "Need exactly one or two arguments.")
	got := buf.String()
	if !strings.HasPrefix(got, "Need exactly one or two arguments.\nshow-relaxed shows") {
		t.Errorf("usage starts with %q", got[:min(len(got), 60)])
	}
	if !strings.HasSuffix(got, "next to ordinary arithmetic.\n") || strings.HasSuffix(got, "\n\n") {
		t.Errorf("usage should end with exactly one newline, got tail %q", got[max(0, len(got)-40):])
	}
}
