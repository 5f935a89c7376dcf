package domain_test

import (
	"bytes"
	"testing"

	"go.trai.ch/pak/internal/core/domain"
)

func TestOptionValue_Accessors(t *testing.T) {
	if k := domain.FlagValue().Kind(); k != domain.OptionFlag {
		t.Errorf("expected Flag kind, got %v", k)
	}

	s, ok := domain.StringValue("x").AsString()
	if !ok || s != "x" {
		t.Errorf("expected AsString to return x, got %q (ok=%v)", s, ok)
	}
	if _, ok := domain.StringValue("x").AsBool(); ok {
		t.Error("expected AsBool to fail on a String value")
	}

	vs, ok := domain.StringVecValue("a", "b").AsStringVec()
	if !ok || len(vs) != 2 || vs[0] != "a" || vs[1] != "b" {
		t.Errorf("expected AsStringVec to return [a b], got %v (ok=%v)", vs, ok)
	}

	b, ok := domain.BoolValue(true).AsBool()
	if !ok || !b {
		t.Errorf("expected AsBool to return true, got %v (ok=%v)", b, ok)
	}
}

func TestOptions_Canonical_Deterministic(t *testing.T) {
	a := domain.Options{
		"separator": domain.StringValue(","),
		"minify":    domain.FlagValue(),
		"banner":    domain.StringVecValue("x", "y"),
	}
	b := domain.Options{
		"banner":    domain.StringVecValue("x", "y"),
		"minify":    domain.FlagValue(),
		"separator": domain.StringValue(","),
	}

	if !bytes.Equal(a.Canonical(), b.Canonical()) {
		t.Error("expected identical options to serialize identically regardless of construction order")
	}
}

func TestOptions_Canonical_Distinguishes(t *testing.T) {
	cases := []struct {
		name string
		a, b domain.Options
	}{
		{
			name: "different values",
			a:    domain.Options{"sep": domain.StringValue(",")},
			b:    domain.Options{"sep": domain.StringValue(";")},
		},
		{
			name: "different kinds",
			a:    domain.Options{"x": domain.StringValue("true")},
			b:    domain.Options{"x": domain.BoolValue(true)},
		},
		{
			name: "flag vs empty string",
			a:    domain.Options{"x": domain.FlagValue()},
			b:    domain.Options{"x": domain.StringValue("")},
		},
		{
			name: "vec element boundaries",
			a:    domain.Options{"x": domain.StringVecValue("ab", "c")},
			b:    domain.Options{"x": domain.StringVecValue("a", "bc")},
		},
		{
			name: "bool values",
			a:    domain.Options{"x": domain.BoolValue(true)},
			b:    domain.Options{"x": domain.BoolValue(false)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if bytes.Equal(tc.a.Canonical(), tc.b.Canonical()) {
				t.Errorf("expected distinct canonical forms, both were %q", tc.a.Canonical())
			}
		})
	}
}

func TestOptions_Canonical_Empty(t *testing.T) {
	if got := len(domain.Options{}.Canonical()); got != 0 {
		t.Errorf("expected empty canonical form for no options, got %d bytes", got)
	}
}
