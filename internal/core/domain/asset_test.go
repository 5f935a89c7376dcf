package domain_test

import (
	"testing"

	"go.trai.ch/pak/internal/core/domain"
)

func TestAssetDefinition_VersionedPath(t *testing.T) {
	def := domain.AssetDefinition{
		Name:      domain.NewInternedString("app"),
		Extension: "js",
	}

	got := def.VersionedPath(domain.Fingerprint(0xdeadbeef))
	want := "app-00000000deadbeef.js"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	def.OutputBase = "assets/js"
	got = def.VersionedPath(domain.Fingerprint(0xdeadbeef))
	want = "assets/js/app-00000000deadbeef.js"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFingerprint_Hex(t *testing.T) {
	if got := domain.Fingerprint(0).Hex(); got != "0000000000000000" {
		t.Errorf("expected zero-padded hex, got %q", got)
	}
	if got := domain.Fingerprint(0xffffffffffffffff).Hex(); got != "ffffffffffffffff" {
		t.Errorf("expected full-width hex, got %q", got)
	}
}

func TestFingerprint_TextRoundTrip(t *testing.T) {
	original := domain.Fingerprint(0x1234abcd5678ef90)

	text, err := original.MarshalText()
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded domain.Fingerprint
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("expected %v, got %v", original, decoded)
	}

	if err := decoded.UnmarshalText([]byte("not-hex")); err == nil {
		t.Error("expected error for invalid fingerprint text, got nil")
	}
}

func TestBuildState_PutGet(t *testing.T) {
	state := domain.NewBuildState()
	name := domain.NewInternedString("app")

	if _, ok := state.Get(name); ok {
		t.Error("expected empty state to miss")
	}

	entry := domain.StateEntry{Fingerprint: 42, OutputPath: "app-000000000000002a.js"}
	state.Put(name, entry)

	got, ok := state.Get(name)
	if !ok || got != entry {
		t.Errorf("expected %+v, got %+v (ok=%v)", entry, got, ok)
	}
	if state.Len() != 1 {
		t.Errorf("expected Len 1, got %d", state.Len())
	}
}
