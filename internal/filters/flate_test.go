package filters

import (
	"bytes"
	"testing"
)

// TestFlateRoundTrip verifies encode followed by decode reproduces the input.
func TestFlateRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("Hello, World! This is test data for the flate codec.")},
		{"binary", []byte{0xFF, 0xD8, 0x00, 0x01, 0xFE, 0x80, 0x7F}},
		{"empty", []byte{}},
		{"repetitive", bytes.Repeat([]byte("abcd"), 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := FlateEncode(tt.data)
			if err != nil {
				t.Fatalf("FlateEncode failed: %v", err)
			}

			decoded, err := FlateDecode(compressed)
			if err != nil {
				t.Fatalf("FlateDecode failed: %v", err)
			}

			if !bytes.Equal(decoded, tt.data) {
				t.Error("decoded data doesn't match original")
			}
		})
	}
}

// TestFlateEncodeHeader verifies default-level zlib output starts with 0x78,
// the byte the extraction path sniffs for.
func TestFlateEncodeHeader(t *testing.T) {
	compressed, err := FlateEncode([]byte("any payload at all"))
	if err != nil {
		t.Fatalf("FlateEncode failed: %v", err)
	}
	if len(compressed) == 0 || compressed[0] != 0x78 {
		t.Errorf("expected zlib header byte 0x78, got % X", compressed[:1])
	}
}

func TestFlateEncodeCompresses(t *testing.T) {
	data := bytes.Repeat([]byte("the same line over and over\n"), 1000)

	compressed, err := FlateEncode(data)
	if err != nil {
		t.Fatalf("FlateEncode failed: %v", err)
	}
	if len(compressed) >= len(data) {
		t.Errorf("repetitive input did not shrink: %d -> %d bytes", len(data), len(compressed))
	}
}

func TestFlateDecodeInvalid(t *testing.T) {
	invalidData := []byte{0x00, 0x01, 0x02, 0x03} // not a zlib header

	if _, err := FlateDecode(invalidData); err == nil {
		t.Error("expected error for invalid zlib data")
	}
}

// TestFlateDecodeTruncated chops the tail off a valid stream; the decoder
// must reject it rather than return partial data silently.
func TestFlateDecodeTruncated(t *testing.T) {
	compressed, err := FlateEncode([]byte("data that will be truncated in transit"))
	if err != nil {
		t.Fatalf("FlateEncode failed: %v", err)
	}
	if len(compressed) < 5 {
		t.Fatalf("compressed stream unexpectedly short: %d bytes", len(compressed))
	}

	truncated := compressed[:len(compressed)-4]
	if _, err := FlateDecode(truncated); err == nil {
		t.Error("expected error for truncated zlib stream")
	}
}

func TestFlateDecodeEmpty(t *testing.T) {
	if _, err := FlateDecode(nil); err == nil {
		t.Error("expected error for empty input")
	}
}
