package series

import (
	"errors"
	"fmt"

	"github.com/amplikon/growthcurve/internal/hash"
)

var (
	// ErrColumnNotFound indicates the named response column does not exist.
	ErrColumnNotFound = errors.New("series: column not found")
	// ErrDuplicateColumn indicates a response column name was added twice,
	// or two names collided on the same 64-bit ID.
	ErrDuplicateColumn = errors.New("series: duplicate column")
)

type column struct {
	name   string
	values []float64
}

// Dataset holds one numeric predictor column plus one or more named numeric
// response columns, as loaded from a delimited text file. Response columns
// are addressed by the xxHash64 of their header name; the original names are
// retained for display and lookup.
//
// A Dataset performs no validation beyond shape; response invariants are
// checked when a column is extracted as a Series.
type Dataset struct {
	predictorName string
	predictor     []float64
	columns       map[uint64]*column
	order         []uint64
}

// NewDataset creates a dataset from a predictor column. The predictor values
// must be strictly increasing.
func NewDataset(predictorName string, predictor []float64) (*Dataset, error) {
	if len(predictor) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(predictor))
	}
	for i := 1; i < len(predictor); i++ {
		if predictor[i] <= predictor[i-1] {
			return nil, fmt.Errorf("%w: row %d", ErrNonIncreasingX, i)
		}
	}

	vals := make([]float64, len(predictor))
	copy(vals, predictor)

	return &Dataset{
		predictorName: predictorName,
		predictor:     vals,
		columns:       make(map[uint64]*column),
	}, nil
}

// AddColumn appends a named response column. The column must match the
// predictor length and its name must be unique within the dataset.
func (d *Dataset) AddColumn(name string, values []float64) error {
	if len(values) != len(d.predictor) {
		return fmt.Errorf("%w: column %q has %d values, predictor has %d",
			ErrLengthMismatch, name, len(values), len(d.predictor))
	}

	id := hash.ID(name)
	if _, exists := d.columns[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}

	vals := make([]float64, len(values))
	copy(vals, values)
	d.columns[id] = &column{name: name, values: vals}
	d.order = append(d.order, id)

	return nil
}

// PredictorName returns the header name of the predictor column.
func (d *Dataset) PredictorName() string {
	return d.predictorName
}

// Predictor returns a copy of the predictor values.
func (d *Dataset) Predictor() []float64 {
	out := make([]float64, len(d.predictor))
	copy(out, d.predictor)

	return out
}

// ColumnNames returns the response column names in file order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, 0, len(d.order))
	for _, id := range d.order {
		names = append(names, d.columns[id].name)
	}

	return names
}

// NumColumns returns the number of response columns.
func (d *Dataset) NumColumns() int {
	return len(d.order)
}

// Column pairs the named response column with the predictor and returns the
// result as a validated Series.
func (d *Dataset) Column(name string) (*Series, error) {
	return d.ColumnByID(hash.ID(name))
}

// ColumnByID is like Column but addresses the response column by its
// xxHash64 ID.
func (d *Dataset) ColumnByID(id uint64) (*Series, error) {
	col, ok := d.columns[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %#x", ErrColumnNotFound, id)
	}

	return New(d.predictor, col.values)
}
