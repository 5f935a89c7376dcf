package domain

import "sort"

// OptionKind identifies the variant held by an OptionValue.
type OptionKind uint8

const (
	// OptionFlag is a presence-only option; it carries no payload.
	OptionFlag OptionKind = iota
	// OptionString carries a single text value.
	OptionString
	// OptionStringVec carries an ordered list of text values.
	OptionStringVec
	// OptionBool carries a boolean.
	OptionBool
)

// String returns a human-readable name for the kind.
func (k OptionKind) String() string {
	switch k {
	case OptionFlag:
		return "Flag"
	case OptionString:
		return "String"
	case OptionStringVec:
		return "StringVec"
	case OptionBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// OptionValue is a tagged variant passed to filters. Use the constructors;
// the zero value is a Flag.
type OptionValue struct {
	kind OptionKind
	str  string
	list []string
	b    bool
}

// FlagValue creates a presence-only option value.
func FlagValue() OptionValue {
	return OptionValue{kind: OptionFlag}
}

// StringValue creates a String option value.
func StringValue(s string) OptionValue {
	return OptionValue{kind: OptionString, str: s}
}

// StringVecValue creates a StringVec option value. Order is preserved.
func StringVecValue(vs ...string) OptionValue {
	list := make([]string, len(vs))
	copy(list, vs)
	return OptionValue{kind: OptionStringVec, list: list}
}

// BoolValue creates a Bool option value.
func BoolValue(b bool) OptionValue {
	return OptionValue{kind: OptionBool, b: b}
}

// Kind returns the variant tag.
func (v OptionValue) Kind() OptionKind {
	return v.kind
}

// AsString returns the text payload. The second return is false when the
// value is not a String.
func (v OptionValue) AsString() (string, bool) {
	return v.str, v.kind == OptionString
}

// AsStringVec returns the list payload. The second return is false when the
// value is not a StringVec.
func (v OptionValue) AsStringVec() ([]string, bool) {
	if v.kind != OptionStringVec {
		return nil, false
	}
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out, true
}

// AsBool returns the boolean payload. The second return is false when the
// value is not a Bool.
func (v OptionValue) AsBool() (bool, bool) {
	return v.b, v.kind == OptionBool
}

// Options maps option keys to their tagged values.
type Options map[string]OptionValue

// Canonical returns a deterministic byte serialization of the options:
// keys sorted, each entry encoded as key, kind tag, and payload, all
// NUL-separated. Fingerprints are computed over this form, so it must never
// depend on map iteration order.
func (o Options) Canonical() []byte {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b []byte
	for _, k := range keys {
		v := o[k]
		b = append(b, k...)
		b = append(b, 0, byte(v.kind), 0)
		switch v.kind {
		case OptionFlag:
		case OptionString:
			b = append(b, v.str...)
			b = append(b, 0)
		case OptionStringVec:
			for _, s := range v.list {
				b = append(b, s...)
				b = append(b, 0)
			}
		case OptionBool:
			if v.b {
				b = append(b, 1)
			} else {
				b = append(b, 0)
			}
			b = append(b, 0)
		}
		b = append(b, 0)
	}
	return b
}
