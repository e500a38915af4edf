// Package compress provides optional whole-document compression for
// already-encoded JXON byte buffers.
//
// JXON's core wire format (package wire/codec) never compresses anything —
// every value is self-delimiting on its own. This package sits outside that
// boundary: callers that want to shrink a JXON document before storing or
// transmitting it can pass the byte slice returned by jxon.Encode through a
// Codec here, and reverse it on the way back in with the same Codec before
// calling jxon.Decode. It does not change the wire grammar and does not
// invent a container format; the caller is responsible for knowing which
// algorithm (or none) a given blob was compressed with.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp** (AlgorithmNone) — returns the input unchanged. Useful as the
// default when documents are small enough that compression overhead isn't
// worth it, or when upstream already compresses the transport.
//
// **Zstandard** (AlgorithmZstd) — best compression ratio, moderate speed.
// A good fit for archiving many similar JXON documents (e.g. a key table
// bootstrapped with the same frequent keys across a corpus compresses very
// well).
//
// **S2** (AlgorithmS2) — Snappy-family, balances compression and speed.
//
// **LZ4** (AlgorithmLZ4) — fastest decompression, moderate compression
// ratio; a good fit when documents are decoded far more often than encoded.
//
// # Usage
//
//	data, _ := jxon.Encode(v)
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)
//	// ... store or transmit compressed ...
//	restored, _ := codec.Decompress(compressed)
//	v, _ := jxon.Decode(restored)
//
// # Thread Safety
//
// All codec implementations are safe to share across goroutines.
//
// # Advanced Usage
//
// Custom compression schemes can implement Compressor/Decompressor directly
// and be applied to the output of jxon.Encode (and before jxon.Decode) by the
// caller. jxon.EncodeCompressed/DecodeCompressed accept only the built-in
// Algorithm values that GetCodec resolves.
package compress
