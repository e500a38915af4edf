// Package jxon implements a compact, self-describing binary encoding for
// JSON-like values.
//
// Every encoded document is a single self-delimiting byte sequence: a head
// byte selects the value's kind, and nested objects/arrays recurse the same
// way. Integers and lengths are always written in their narrowest exact
// width, and a caller-supplied table of frequently repeated object keys can
// be interned up front so the body references them by a single index byte
// instead of repeating the string.
//
// # Basic Usage
//
// Encoding and decoding a value:
//
//	import "github.com/jxon-dev/jxon"
//
//	v := jxon.Object([]jxon.Member{
//	    {Key: "name", Value: jxon.Str("sensor-07")},
//	    {Key: "reading", Value: jxon.Float(21.5)},
//	    {Key: "active", Value: jxon.Bool(true)},
//	})
//
//	data, err := jxon.Encode(v)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decoded, err := jxon.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Interning frequent keys shrinks repeated documents sharing a schema:
//
//	data, err := jxon.Encode(v, jxon.WithKeyTable([]string{"name", "reading", "active"}))
//
// # Compression
//
// EncodeCompressed/DecodeCompressed wrap the core codec with a whole-buffer
// compression pass, useful when storing many small documents:
//
//	data, err := jxon.EncodeCompressed(v, compress.AlgorithmZstd)
//	v2, err := jxon.DecodeCompressed(data, compress.AlgorithmZstd)
//
// # Package Structure
//
// This package re-exports the most common types and functions from the
// codec package for convenience. For direct access to Encoder/Decoder
// instances, use the codec package.
package jxon

import (
	"fmt"

	"github.com/jxon-dev/jxon/codec"
	"github.com/jxon-dev/jxon/compress"
)

// Value is a tagged sum of every JXON value variant.
type Value = codec.Value

// Kind identifies which variant of the value model a Value holds.
type Kind = codec.Kind

// Member is one key/value pair of an Object.
type Member = codec.Member

// EncoderOption configures an Encoder (or a one-shot Encode call).
type EncoderOption = codec.EncoderOption

// DecoderOption configures a Decoder (or a one-shot Decode call).
type DecoderOption = codec.DecoderOption

// Constructors, re-exported from codec for convenience.
var (
	Null        = codec.Null
	Bool        = codec.Bool
	Int         = codec.Int
	Float       = codec.Float
	BigFloatRat = codec.BigFloatRat
	Blob        = codec.Blob
	Str         = codec.Str
	Array       = codec.Array
	Object      = codec.Object
)

// Encoder options, re-exported from codec for convenience.
var (
	WithKeyTable               = codec.WithKeyTable
	WithEncoderDepthLimit      = codec.WithEncoderDepthLimit
	WithEncoderBigFloatSupport = codec.WithEncoderBigFloatSupport
)

// Decoder options, re-exported from codec for convenience.
var (
	WithDecoderDepthLimit      = codec.WithDecoderDepthLimit
	WithJSONFallback           = codec.WithJSONFallback
	WithStrictDuplicateKeys    = codec.WithStrictDuplicateKeys
	WithDecoderBigFloatSupport = codec.WithDecoderBigFloatSupport
)

// Encode returns v's JXON encoding.
func Encode(v Value, opts ...EncoderOption) ([]byte, error) {
	return codec.Encode(v, opts...)
}

// Decode reads one value from data, falling back to a JSON parse when data
// does not look like a JXON document and the fallback is permitted (the
// default).
func Decode(data []byte, opts ...DecoderOption) (Value, error) {
	return codec.Decode(data, opts...)
}

// EncodeCompressed encodes v exactly as Encode does, then compresses the
// resulting buffer with algo. This is additive sugar over Encode: it does
// not change the wire grammar of the encoded document, only wraps the final
// byte stream.
func EncodeCompressed(v Value, algo compress.Algorithm, opts ...EncoderOption) ([]byte, error) {
	data, err := Encode(v, opts...)
	if err != nil {
		return nil, err
	}

	c, err := compress.GetCodec(algo)
	if err != nil {
		return nil, fmt.Errorf("jxon: %w", err)
	}

	return c.Compress(data)
}

// DecodeCompressed reverses EncodeCompressed: it decompresses data with
// algo, then decodes the result exactly as Decode does.
func DecodeCompressed(data []byte, algo compress.Algorithm, opts ...DecoderOption) (Value, error) {
	c, err := compress.GetCodec(algo)
	if err != nil {
		return Value{}, fmt.Errorf("jxon: %w", err)
	}

	raw, err := c.Decompress(data)
	if err != nil {
		return Value{}, fmt.Errorf("jxon: %w", err)
	}

	return Decode(raw, opts...)
}
