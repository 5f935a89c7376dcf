package filters

import (
	"context"
	"os"
	"strings"

	"go.trai.ch/pak/internal/core/domain"
	"go.trai.ch/pak/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AssetFilter = (*Replace)(nil)

// Replace rewrites occurrences of a literal string in its single input.
//
// Options:
//
//	find    String  the literal to search for (required)
//	replace String  the replacement text (default "")
//	global  Flag    replace every occurrence instead of the first
type Replace struct{}

// NewReplace creates the replace filter.
func NewReplace() *Replace {
	return &Replace{}
}

var replaceSchema = Schema{
	"find":    domain.OptionString,
	"replace": domain.OptionString,
	"global":  domain.OptionFlag,
}

// Validate type-checks the options and requires "find".
func (f *Replace) Validate(options domain.Options) error {
	if err := CheckOptions(options, replaceSchema, false); err != nil {
		return err
	}
	_, err := requireString(options, "find")
	return err
}

// Apply rewrites the input and writes the result.
func (f *Replace) Apply(ctx context.Context, inputPaths []string, outputPath string, options domain.Options) error {
	if len(inputPaths) != 1 {
		return zerr.With(zerr.New("replace takes exactly one input"), "inputs", len(inputPaths))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	find, err := requireString(options, "find")
	if err != nil {
		return err
	}
	replacement := stringOr(options, "replace", "")
	n := 1
	if flagSet(options, "global") {
		n = -1
	}

	data, err := os.ReadFile(inputPaths[0]) //nolint:gosec // Input paths come from the executor
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read input"), "path", inputPaths[0])
	}

	out := strings.Replace(string(data), find, replacement, n)
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil { //nolint:gosec // Output path comes from the executor
		return zerr.With(zerr.Wrap(err, "failed to write output"), "path", outputPath)
	}
	return nil
}
