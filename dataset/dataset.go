package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/amplikon/growthcurve/internal/options"
	"github.com/amplikon/growthcurve/series"
)

var (
	// ErrEmptyInput indicates the input held no data rows.
	ErrEmptyInput = errors.New("dataset: no data rows")
	// ErrNoResponseColumns indicates the input held only a predictor column.
	ErrNoResponseColumns = errors.New("dataset: no response columns")
	// ErrColumnNotFound indicates the configured predictor column is absent.
	ErrColumnNotFound = errors.New("dataset: predictor column not found")
)

// compressionAuto marks "detect from file extension" in the config; it is
// distinct from every CompressionType value.
const compressionAuto CompressionType = 0

type config struct {
	delimiter   rune
	compression CompressionType
	predictor   string // header name; empty means first column
}

// Option configures loading.
type Option = options.Option[*config]

// WithDelimiter overrides the field delimiter, e.g. '\t' for TSV.
func WithDelimiter(d rune) Option {
	return options.NoError(func(cfg *config) {
		cfg.delimiter = d
	})
}

// WithCompression forces a compression type instead of detecting it from the
// file extension.
func WithCompression(c CompressionType) Option {
	return options.New(func(cfg *config) error {
		if _, err := GetCodec(c); err != nil {
			return err
		}
		cfg.compression = c

		return nil
	})
}

// WithPredictorColumn names the predictor column. By default the first
// column of the header is the predictor.
func WithPredictorColumn(name string) Option {
	return options.NoError(func(cfg *config) {
		cfg.predictor = name
	})
}

// Load reads a delimited text file with a header row into a Dataset.
// Compression is detected from the file extension (.gz, .zst, .s2, .lz4)
// unless WithCompression forces it.
func Load(path string, opts ...Option) (*series.Dataset, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	if cfg.compression == compressionAuto {
		cfg.compression = DetectCompression(path)
	}

	return decode(raw, cfg)
}

// Read reads a delimited text stream with a header row into a Dataset.
// The stream is treated as uncompressed unless WithCompression says
// otherwise; there is no filename to detect from.
func Read(r io.Reader, opts ...Option) (*series.Dataset, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.compression == compressionAuto {
		cfg.compression = CompressionNone
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return decode(raw, cfg)
}

func defaultConfig() config {
	return config{delimiter: ',', compression: compressionAuto}
}

func decode(raw []byte, cfg config) (*series.Dataset, error) {
	codec, err := GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, err
	}

	return parse(data, cfg)
}

func parse(data []byte, cfg config) (*series.Dataset, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = cfg.delimiter
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: malformed input: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	header := records[0]
	rows := records[1:]
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	predictorIdx := 0
	if cfg.predictor != "" {
		predictorIdx = -1
		for i, name := range header {
			if strings.TrimSpace(name) == cfg.predictor {
				predictorIdx = i

				break
			}
		}
		if predictorIdx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, cfg.predictor)
		}
	}
	if len(header) < 2 {
		return nil, ErrNoResponseColumns
	}

	columns := make([][]float64, len(header))
	for i := range columns {
		columns[i] = make([]float64, len(rows))
	}
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: row %d, column %q: %w",
					rowIdx+2, strings.TrimSpace(header[colIdx]), err)
			}
			columns[colIdx][rowIdx] = v
		}
	}

	d, err := series.NewDataset(strings.TrimSpace(header[predictorIdx]), columns[predictorIdx])
	if err != nil {
		return nil, err
	}
	for i, name := range header {
		if i == predictorIdx {
			continue
		}
		if err := d.AddColumn(strings.TrimSpace(name), columns[i]); err != nil {
			return nil, err
		}
	}

	return d, nil
}
