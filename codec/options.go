package codec

import "github.com/jxon-dev/jxon/internal/options"

// defaultDepthLimit is the maximum object/array nesting depth before encode
// or decode fails with ErrDepthExceeded, guarding against stack exhaustion on
// hostile input.
const defaultDepthLimit = 1000

// EncoderConfig holds the resolved settings for one Encoder instance.
type EncoderConfig struct {
	keys            []string
	depthLimit      int
	bigFloatSupport bool
}

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		depthLimit:      defaultDepthLimit,
		bigFloatSupport: true,
	}
}

// EncoderOption configures an Encoder at construction time.
type EncoderOption = options.Option[*EncoderConfig]

// WithKeyTable supplies a list of frequently-used object keys to register in
// the document's key table before the body is emitted. Keys past the
// 128-entry table capacity are silently left as inline strings.
func WithKeyTable(keys []string) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.keys = keys
	})
}

// WithEncoderDepthLimit overrides the maximum object/array nesting depth.
func WithEncoderDepthLimit(n int) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.depthLimit = n
	})
}

// WithEncoderBigFloatSupport toggles whether the encoder accepts
// KindBigFloat values. Disabling it makes the encoder fail with
// ErrUnsupported on a BigFloat value, matching spec.md §9's "may reject"
// choice for implementations that don't want the reserved family.
func WithEncoderBigFloatSupport(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.bigFloatSupport = enabled
	})
}

// DecoderConfig holds the resolved settings for one Decoder instance.
type DecoderConfig struct {
	depthLimit          int
	allowJSONFallback   bool
	strictDuplicateKeys bool
	bigFloatSupport     bool
}

func newDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		depthLimit:          defaultDepthLimit,
		allowJSONFallback:   true,
		strictDuplicateKeys: true,
		bigFloatSupport:     true,
	}
}

// DecoderOption configures a Decoder at construction time.
type DecoderOption = options.Option[*DecoderConfig]

// WithDecoderDepthLimit overrides the maximum object/array nesting depth.
func WithDecoderDepthLimit(n int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.depthLimit = n
	})
}

// WithJSONFallback controls whether Decode falls back to encoding/json when
// the input's first byte does not look like a JXON head byte. Enabled by
// default, matching spec.md §6's decode(bytes, allow_json_fallback = true).
func WithJSONFallback(enabled bool) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.allowJSONFallback = enabled
	})
}

// WithStrictDuplicateKeys controls whether a repeated object key fails
// decoding with ErrDuplicateKey. Enabled by default, matching spec.md §7's
// "implementations SHOULD reject" guidance.
func WithStrictDuplicateKeys(enabled bool) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.strictDuplicateKeys = enabled
	})
}

// WithDecoderBigFloatSupport toggles whether the decoder accepts a BigFloat
// (0xF9) tag. Disabling it makes the decoder fail with ErrUnsupported on
// that tag instead of decoding it.
func WithDecoderBigFloatSupport(enabled bool) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.bigFloatSupport = enabled
	})
}
