package plugin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aep-dev/aep-resourcename-go/pkg/reporter"
	"go.uber.org/zap"
)

// DefaultFileSuffix replaces ".proto" in output file names.
const DefaultFileSuffix = "_resources.go"

// Options configures a generation run. The first three fields come from the
// protoc parameter string, the rest from the caller.
type Options struct {
	// GenerateExtensions enables the reference accessors on message types.
	GenerateExtensions bool
	FileSuffix         string
	// ModulePrefix is a directory prepended to every output file name.
	ModulePrefix string

	// Parallelism bounds the number of files walked or emitted at once. Zero
	// or less means no limit.
	Parallelism int
	Logger      *zap.Logger
	// Version is printed in the header of generated files.
	Version string
}

// DefaultOptions returns the options used when the parameter string is empty.
func DefaultOptions() Options {
	return Options{
		GenerateExtensions: true,
		FileSuffix:         DefaultFileSuffix,
	}
}

// ParseParameter applies a protoc parameter string such as
// "generate_extensions=false,file_suffix=_names.go" to opts. Entries are
// comma separated and a bare key means "true". Unknown keys fail with
// reporter.ErrUnknownOption.
func ParseParameter(parameter string, opts *Options) error {
	for _, entry := range strings.Split(parameter, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, value, hasValue := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "generate_extensions":
			if !hasValue {
				opts.GenerateExtensions = true
				continue
			}
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%w: %s=%q is not a boolean", reporter.ErrInvalidOptionValue, key, value)
			}
			opts.GenerateExtensions = b
		case "file_suffix":
			if value == "" {
				return fmt.Errorf("%w: %s needs a value", reporter.ErrInvalidOptionValue, key)
			}
			opts.FileSuffix = value
		case "module_prefix":
			if !hasValue {
				return fmt.Errorf("%w: %s needs a value", reporter.ErrInvalidOptionValue, key)
			}
			opts.ModulePrefix = value
		default:
			return fmt.Errorf("%w: %q", reporter.ErrUnknownOption, key)
		}
	}
	return nil
}
