package decode

import "github.com/mintpond/bos/internal/options"

// defaultMaxDepth is the recursion depth limit applied unless overridden by
// WithMaxDepth, matching the "recommended 128" figure in spec §4.5.
const defaultMaxDepth = 128

// Option configures a Decoder, the same functional-options pattern used by
// encode.Option.
type Option = options.Option[*Decoder]

// WithMaxDepth overrides the nesting depth limit enforced while reading
// Array and Object children. Exceeding the limit fails with
// errs.ErrDepthExceeded.
func WithMaxDepth(n int) Option {
	return options.NoError(func(d *Decoder) {
		d.maxDepth = n
	})
}

// WithLenientBool relaxes Bool payload validation: any nonzero byte decodes
// to true instead of failing with errs.ErrInvalidBoolean when the byte is
// not exactly 0 or 1 (spec §7: "may be relaxed to nonzero → true").
func WithLenientBool() Option {
	return options.NoError(func(d *Decoder) {
		d.lenientBool = true
	})
}
