package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CompressionType identifies the compression applied to an input file.
type CompressionType uint8

const (
	// CompressionNone represents plain uncompressed input.
	CompressionNone CompressionType = 0x1
	// CompressionGzip represents gzip-compressed input (.gz).
	CompressionGzip CompressionType = 0x2
	// CompressionZstd represents Zstandard-compressed input (.zst).
	CompressionZstd CompressionType = 0x3
	// CompressionS2 represents S2-compressed input (.s2).
	CompressionS2 CompressionType = 0x4
	// CompressionLZ4 represents LZ4 frame-compressed input (.lz4).
	CompressionLZ4 CompressionType = 0x5
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Codec compresses and decompresses whole file payloads. Input files are
// small tabular text, so the whole-payload API is simpler than streaming and
// lets compressed fixtures be produced by the same type that reads them.
//
// Returned slices are newly allocated and owned by the caller; inputs are
// never modified.
type Codec interface {
	// Compress compresses the payload.
	Compress(data []byte) ([]byte, error)
	// Decompress restores the original payload, failing if the data is
	// corrupted or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCodec(),
	CompressionGzip: NewGzipCodec(),
	CompressionZstd: NewZstdCodec(),
	CompressionS2:   NewS2Codec(),
	CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves the built-in Codec for the given compression type.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("dataset: unsupported compression type: %s", compressionType)
}

// DetectCompression infers the compression type from a file extension.
// Unrecognized extensions map to CompressionNone.
func DetectCompression(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressionGzip
	case ".zst":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
