package filters

import (
	"context"
	"os"
	"strings"

	"go.trai.ch/pak/internal/core/domain"
	"go.trai.ch/pak/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AssetFilter = (*Concat)(nil)

// Concat joins its inputs in declared order into a single output file.
//
// Options:
//
//	separator        String     inserted between inputs (default "")
//	trailing_newline Bool       append a final newline (default false)
//	banner           StringVec  lines written before the content
//	skip_empty       Flag       drop inputs whose content is empty
type Concat struct{}

// NewConcat creates the concat filter.
func NewConcat() *Concat {
	return &Concat{}
}

var concatSchema = Schema{
	"separator":        domain.OptionString,
	"trailing_newline": domain.OptionBool,
	"banner":           domain.OptionStringVec,
	"skip_empty":       domain.OptionFlag,
}

// Validate type-checks the options.
func (f *Concat) Validate(options domain.Options) error {
	return CheckOptions(options, concatSchema, false)
}

// Apply reads each input in order and writes the joined content.
func (f *Concat) Apply(ctx context.Context, inputPaths []string, outputPath string, options domain.Options) error {
	separator := stringOr(options, "separator", "")
	skipEmpty := flagSet(options, "skip_empty")

	var parts []string
	if banner, ok := options["banner"]; ok {
		if lines, ok := banner.AsStringVec(); ok && len(lines) > 0 {
			parts = append(parts, strings.Join(lines, "\n"))
		}
	}

	for _, path := range inputPaths {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := os.ReadFile(path) //nolint:gosec // Input paths come from the executor
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read input"), "path", path)
		}
		if skipEmpty && len(data) == 0 {
			continue
		}
		parts = append(parts, string(data))
	}

	content := strings.Join(parts, separator)
	if boolOr(options, "trailing_newline", false) && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil { //nolint:gosec // Output path comes from the executor
		return zerr.With(zerr.Wrap(err, "failed to write output"), "path", outputPath)
	}
	return nil
}
