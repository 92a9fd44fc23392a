package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	ymax    float64
	samples int
}

func TestApply_InOrder(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.ymax = 100 }),
		NoError(func(c *testConfig) { c.samples = 200 }),
	)

	require.NoError(t, err)
	require.Equal(t, 100.0, cfg.ymax)
	require.Equal(t, 200, cfg.samples)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &testConfig{}
	boom := errors.New("boom")

	err := Apply(cfg,
		New(func(c *testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.samples = 1 }),
	)

	require.ErrorIs(t, err, boom)
	require.Zero(t, cfg.samples)
}

func TestApply_NoOptions(t *testing.T) {
	require.NoError(t, Apply(&testConfig{}))
}
