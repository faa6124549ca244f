// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize caps the input accepted by ParseAndDecode and
// ValidateJSON. A package.json or settings file above 5MB is refused.
const DefaultMaxFileSize int64 = 5 << 20

type (
	parseOptions struct {
		maxFileSize int64
		concrete    bool
		filename    string
	}

	// Option tunes a single validation call.
	Option func(*parseOptions)
)

func applyOptions(opts []Option) parseOptions {
	o := parseOptions{maxFileSize: DefaultMaxFileSize, concrete: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// displayName is the name errors use for the input.
func (o parseOptions) displayName() string {
	if o.filename == "" {
		return "<input>"
	}
	return o.filename
}

// WithMaxFileSize overrides DefaultMaxFileSize. Zero or negative disables
// the check.
func WithMaxFileSize(size int64) Option {
	return func(o *parseOptions) { o.maxFileSize = size }
}

// WithConcrete controls whether every required field must hold a concrete
// value once the input is unified with the schema. Optional (?) fields are
// exempt either way. Default is true.
func WithConcrete(concrete bool) Option {
	return func(o *parseOptions) { o.concrete = concrete }
}

// WithFilename names the input in error messages, e.g. "package.json".
func WithFilename(name string) Option {
	return func(o *parseOptions) { o.filename = name }
}
