package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCSV = "cycle,sample_a,sample_b\n1,0.1,0.2\n2,0.5,0.9\n3,2.1,3.8\n4,7.9,12.5\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func TestLoad_PlainCSV(t *testing.T) {
	path := writeFile(t, "qpcr.csv", []byte(sampleCSV))

	d, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "cycle", d.PredictorName())
	require.Equal(t, []string{"sample_a", "sample_b"}, d.ColumnNames())
	require.Equal(t, []float64{1, 2, 3, 4}, d.Predictor())

	s, err := d.Column("sample_b")
	require.NoError(t, err)
	require.Equal(t, []float64{0.2, 0.9, 3.8, 12.5}, s.Y())
}

func TestLoad_CompressedByExtension(t *testing.T) {
	cases := []struct {
		ext string
		ct  CompressionType
	}{
		{".gz", CompressionGzip},
		{".zst", CompressionZstd},
		{".s2", CompressionS2},
		{".lz4", CompressionLZ4},
	}

	for _, tc := range cases {
		t.Run(tc.ct.String(), func(t *testing.T) {
			codec, err := GetCodec(tc.ct)
			require.NoError(t, err)

			compressed, err := codec.Compress([]byte(sampleCSV))
			require.NoError(t, err)

			path := writeFile(t, "qpcr.csv"+tc.ext, compressed)
			d, err := Load(path)
			require.NoError(t, err)
			require.Equal(t, 2, d.NumColumns())
		})
	}
}

func TestLoad_ForcedCompression(t *testing.T) {
	codec, err := GetCodec(CompressionZstd)
	require.NoError(t, err)
	compressed, err := codec.Compress([]byte(sampleCSV))
	require.NoError(t, err)

	// Extension lies; the option wins.
	path := writeFile(t, "qpcr.bin", compressed)
	d, err := Load(path, WithCompression(CompressionZstd))
	require.NoError(t, err)
	require.Equal(t, 2, d.NumColumns())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestRead_TSV(t *testing.T) {
	tsv := strings.ReplaceAll(sampleCSV, ",", "\t")

	d, err := Read(strings.NewReader(tsv), WithDelimiter('\t'))
	require.NoError(t, err)
	require.Equal(t, []string{"sample_a", "sample_b"}, d.ColumnNames())
}

func TestRead_NamedPredictorColumn(t *testing.T) {
	csv := "sample,day,cases\n0.1,1,12\n0.2,2,25\n0.3,3,60\n"

	d, err := Read(strings.NewReader(csv), WithPredictorColumn("day"))
	require.NoError(t, err)
	require.Equal(t, "day", d.PredictorName())
	require.Equal(t, []float64{1, 2, 3}, d.Predictor())
	require.Equal(t, []string{"sample", "cases"}, d.ColumnNames())
}

func TestRead_PredictorColumnNotFound(t *testing.T) {
	_, err := Read(strings.NewReader(sampleCSV), WithPredictorColumn("missing"))
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestRead_NonNumericCell(t *testing.T) {
	csv := "cycle,sample\n1,0.5\n2,oops\n3,1.5\n"

	_, err := Read(strings.NewReader(csv))
	require.Error(t, err)
	require.Contains(t, err.Error(), "row 3")
	require.Contains(t, err.Error(), "sample")
}

func TestRead_RaggedRows(t *testing.T) {
	csv := "cycle,sample\n1,0.5\n2\n"

	_, err := Read(strings.NewReader(csv))
	require.Error(t, err)
}

func TestRead_EmptyAndHeaderOnly(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Read(strings.NewReader("cycle,sample\n"))
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestRead_PredictorOnly(t *testing.T) {
	_, err := Read(strings.NewReader("cycle\n1\n2\n"))
	require.ErrorIs(t, err, ErrNoResponseColumns)
}

func TestRead_NonIncreasingPredictor(t *testing.T) {
	csv := "cycle,sample\n2,0.5\n1,0.9\n"

	_, err := Read(strings.NewReader(csv))
	require.Error(t, err)
}
