package encode

import "github.com/mintpond/bos/internal/options"

// Option configures an Encoder, the same functional-options pattern the
// teacher uses for blob.NumericEncoderOption/blob.TextEncoderOption.
type Option = options.Option[*Encoder]

// WithInitialCapacity hints the encoder's output buffer should start with
// at least n bytes of capacity, avoiding reallocation for callers who know
// the approximate size of the tree they are about to serialize.
func WithInitialCapacity(n int) Option {
	return options.NoError(func(e *Encoder) {
		e.initialCapacity = n
	})
}
