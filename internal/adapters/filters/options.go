package filters

import (
	"go.trai.ch/pak/internal/core/domain"
	"go.trai.ch/zerr"
)

var errMissingOption = zerr.New("missing required option")

// Schema declares, per option key, the OptionValue variant a filter expects.
type Schema map[string]domain.OptionKind

// CheckOptions validates options against a schema. Unknown keys are rejected
// unless loose is set; wrong variants are always rejected. This runs once per
// asset before any byte-level work, so type errors surface before partial
// output exists.
func CheckOptions(options domain.Options, schema Schema, loose bool) error {
	for key, value := range options {
		expected, known := schema[key]
		if !known {
			if loose {
				continue
			}
			return zerr.With(domain.ErrUnknownOption, "option", key)
		}
		if value.Kind() != expected {
			err := zerr.With(domain.ErrOptionTypeMismatch, "option", key)
			err = zerr.With(err, "expected", expected.String())
			return zerr.With(err, "actual", value.Kind().String())
		}
	}
	return nil
}

// requireString returns the String option under key, failing if it is absent.
func requireString(options domain.Options, key string) (string, error) {
	v, ok := options[key]
	if !ok {
		return "", zerr.With(errMissingOption, "option", key)
	}
	s, ok := v.AsString()
	if !ok {
		err := zerr.With(domain.ErrOptionTypeMismatch, "option", key)
		err = zerr.With(err, "expected", domain.OptionString.String())
		return "", zerr.With(err, "actual", v.Kind().String())
	}
	return s, nil
}

// stringOr returns the String option under key, or fallback when absent.
func stringOr(options domain.Options, key, fallback string) string {
	if v, ok := options[key]; ok {
		if s, ok := v.AsString(); ok {
			return s
		}
	}
	return fallback
}

// boolOr returns the Bool option under key, or fallback when absent.
func boolOr(options domain.Options, key string, fallback bool) bool {
	if v, ok := options[key]; ok {
		if b, ok := v.AsBool(); ok {
			return b
		}
	}
	return fallback
}

// flagSet reports whether the Flag option under key is present.
func flagSet(options domain.Options, key string) bool {
	v, ok := options[key]
	return ok && v.Kind() == domain.OptionFlag
}
