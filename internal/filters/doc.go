// Package filters provides the DEFLATE codec used for FlateDecode streams.
//
// Compression delegates to compress/zlib with default settings. Output is
// deterministic for identical input and library version, but not guaranteed
// bit-identical across different DEFLATE implementations; that boundary
// belongs to the standard library, not to this package.
//
//	compressed, err := filters.FlateEncode(data)
//	decoded, err := filters.FlateDecode(compressed)
//
// FlateDecode fails on malformed headers, truncated streams, and checksum
// mismatches. Callers are expected to keep the raw input around for diagnosis
// when that happens.
package filters
