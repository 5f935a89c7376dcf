package domain

import (
	"fmt"
	"strconv"
)

// Fingerprint is a deterministic 64-bit content digest. For file assets it
// covers the literal source bytes; for filtered assets it covers the filter
// identity, canonical options, and the ordered input fingerprints, so any
// upstream change propagates transitively. The zero value means "absent".
type Fingerprint uint64

// Hex returns the fixed-width hexadecimal form embedded in versioned paths.
func (f Fingerprint) Hex() string {
	return fmt.Sprintf("%016x", uint64(f))
}

// IsZero reports whether the fingerprint is unset.
func (f Fingerprint) IsZero() bool {
	return f == 0
}

// MarshalText implements encoding.TextMarshaler.
func (f Fingerprint) MarshalText() ([]byte, error) {
	return []byte(f.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fingerprint) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 16, 64)
	if err != nil {
		return fmt.Errorf("invalid fingerprint %q: %w", text, err)
	}
	*f = Fingerprint(v)
	return nil
}
