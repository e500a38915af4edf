// Package wire implements the head-byte tag/length grammar: a family
// nibble selecting the value's kind and a width nibble selecting how the
// attached integer or length field is encoded, always choosing the
// narrowest width class that represents the value exactly.
package wire

// Head byte family bases (high nibble). A concrete head byte is Family|n for
// the Int/Blob/Str/KeyReg families, where n is the width nibble, or one of
// the fixed single-byte heads below.
const (
	FamilyInt    byte = 0x80 // Int: signed integer, width nibble selects size
	FamilyBlob   byte = 0x90 // Blob: length (width nibble) then that many raw bytes
	FamilyStr    byte = 0xA0 // Inline string: length, UTF-8 bytes, trailing NUL
	FamilyKeyReg byte = 0xB0 // Key-table registration: length, UTF-8 bytes, NUL, index byte
)

// Fixed single-byte heads.
const (
	Null       byte = 0xF0
	False      byte = 0xF1
	True       byte = 0xF2
	ObjectOpen byte = 0xF3
	ArrayOpen  byte = 0xF4
	Close      byte = 0xF5
	FloatZero  byte = 0xF6
	Float32    byte = 0xF7
	Float64    byte = 0xF8
	BigFloat   byte = 0xF9
)

// Width nibbles attached to FamilyInt/FamilyBlob/FamilyStr/FamilyKeyReg heads.
const (
	WidthInt8   byte = 0x0A
	WidthInt16  byte = 0x0B
	WidthInt32  byte = 0x0C
	WidthInt64  byte = 0x0D
	WidthBigInt byte = 0x0E
	WidthNegOne byte = 0x0F
)

// Family returns the high nibble of a head byte.
func Family(head byte) byte {
	return head & 0xF0
}

// Width returns the low nibble of a head byte.
func Width(head byte) byte {
	return head & 0x0F
}

// IsKeyTableIndex reports whether b is a valid inline key-table index
// reference (a byte below 0x80, used in the position where an object key is
// expected).
func IsKeyTableIndex(b byte) bool {
	return b < 0x80
}
