package codec

import (
	"testing"

	"github.com/jxon-dev/jxon/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_EmptyInput(t *testing.T) {
	_, err := Decode(nil)
	assert.ErrorIs(t, err, errs.ErrUnexpectedEnd)
}

func TestDecode_JSONFallback(t *testing.T) {
	got, err := Decode([]byte(`{"a":1,"b":"two"}`))
	require.NoError(t, err)

	members, ok := got.AsObject()
	require.True(t, ok)
	assert.Len(t, members, 2)
}

func TestDecode_JSONFallback_Disabled(t *testing.T) {
	_, err := Decode([]byte(`{"a":1}`), WithJSONFallback(false))
	assert.ErrorIs(t, err, errs.ErrMalformed)
}

func TestDecode_JSONFallback_InvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`not json or jxon`))
	assert.ErrorIs(t, err, errs.ErrMalformed)
}

func TestDecode_EndToEnd_MixedDocument(t *testing.T) {
	v := Object([]Member{
		{Key: "name", Value: Str("sensor-07")},
		{Key: "readings", Value: Array([]Value{Float(21.5), Float(21.7), Int(0)})},
		{Key: "active", Value: Bool(true)},
		{Key: "tag", Value: Null()},
		{Key: "raw", Value: Blob([]byte{0xDE, 0xAD, 0xBE, 0xEF})},
	})

	data := encodeValue(t, v)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
}

func TestDecode_BigFloat_RoundTrip(t *testing.T) {
	v := BigFloatRat(bigOne(), bigOne())

	data := encodeValue(t, v)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
}

func TestDecode_BigFloat_Unsupported(t *testing.T) {
	v := BigFloatRat(bigOne(), bigOne())
	data := encodeValue(t, v)

	_, err := Decode(data, WithDecoderBigFloatSupport(false))
	assert.ErrorIs(t, err, errs.ErrUnsupported)
}

func TestDecode_UnexpectedCloseMarker(t *testing.T) {
	_, err := Decode([]byte{0xF5})
	assert.ErrorIs(t, err, errs.ErrMalformed)
}

func TestDecode_StringInvalidUTF8(t *testing.T) {
	// Inline string head for length 1, followed by an invalid UTF-8 byte and NUL.
	_, err := Decode([]byte{0xA1, 0xFF, 0x00})
	assert.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestDecode_StringMissingTrailingNUL(t *testing.T) {
	_, err := Decode([]byte{0xA1, 'a', 0x01})
	assert.ErrorIs(t, err, errs.ErrMalformed)
}
