package calculator

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want string
	}{
		{"integer", 42, "42"},
		{"negative integer", -17, "-17"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"short decimal", 0.09, "0.09"},
		{"float noise", 0.1 + 0.2, "0.3"},
		{"long decimal", 3.14159265358, "3.1415927"},
		{"long decimal trailing zeros", 123.456789012, "123.456789"},
		{"huge", 1234567890.1234567, "1.23457e+9"},
		{"huge integer", 2e9, "2.00000e+9"},
		{"huge negative", -5e12, "-5.00000e+12"},
		{"tiny", 1e-7, "1e-7"},
		{"nan", math.NaN(), ErrorMarker},
		{"inf", math.Inf(1), ErrorMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.in); got != tc.want {
				t.Fatalf("Format(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatNeverExceedsCaps(t *testing.T) {
	for _, v := range []float64{1.0 / 3, 2.0 / 3, 10.0 / 7, 99999.123456789} {
		got := Format(v)
		if len(got) > 16 {
			t.Fatalf("Format(%v) = %q is longer than expected", v, got)
		}
	}
}
