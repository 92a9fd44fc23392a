// Package dataset loads delimited text files (CSV/TSV with a header row)
// into the module's series types.
//
// The first header column is the predictor by default; every other column
// becomes a named response column. Input files may be compressed; the codec
// is picked from the file extension (.gz, .zst, .s2, .lz4) or forced with
// WithCompression. Codec implementations follow the same registry shape as
// the rest of the klauspost/compress ecosystem and can double as fixture
// writers in tests.
package dataset
