package series

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amplikon/growthcurve/internal/hash"
)

func newTestDataset(t *testing.T) *Dataset {
	t.Helper()

	d, err := NewDataset("cycle", []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.NoError(t, d.AddColumn("sample_a", []float64{0, 1, 4, 9}))
	require.NoError(t, d.AddColumn("sample_b", []float64{0, 2, 8, 18}))

	return d
}

func TestDataset_ColumnLookup(t *testing.T) {
	d := newTestDataset(t)

	require.Equal(t, "cycle", d.PredictorName())
	require.Equal(t, 2, d.NumColumns())
	require.Equal(t, []string{"sample_a", "sample_b"}, d.ColumnNames())

	s, err := d.Column("sample_a")
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 4, 9}, s.Y())
	require.Equal(t, []float64{1, 2, 3, 4}, s.X())

	byID, err := d.ColumnByID(hash.ID("sample_b"))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2, 8, 18}, byID.Y())
}

func TestDataset_ColumnNotFound(t *testing.T) {
	d := newTestDataset(t)

	_, err := d.Column("missing")
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestDataset_DuplicateColumn(t *testing.T) {
	d := newTestDataset(t)

	err := d.AddColumn("sample_a", []float64{0, 0, 0, 0})
	require.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestDataset_ColumnLengthMismatch(t *testing.T) {
	d := newTestDataset(t)

	err := d.AddColumn("short", []float64{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestNewDataset_NonIncreasingPredictor(t *testing.T) {
	_, err := NewDataset("day", []float64{1, 1, 2})
	require.ErrorIs(t, err, ErrNonIncreasingX)
}

func TestDataset_NegativeResponseSurfacesOnExtraction(t *testing.T) {
	d, err := NewDataset("day", []float64{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, d.AddColumn("cases", []float64{1, -1, 2}))

	_, err = d.Column("cases")
	require.ErrorIs(t, err, ErrNegativeY)
}
