package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricAvg(t *testing.T) {
	var m Metric
	for _, v := range []int64{1, 2, 3, 4} {
		m.Add(v)
	}
	assert.Equal(t, 4, m.Count)
	assert.Equal(t, int64(10), m.Sum)
	assert.Equal(t, 2.5, m.Avg())
}

func TestMetricEmptyIsNaN(t *testing.T) {
	var m Metric
	assert.True(t, math.IsNaN(m.Avg()))
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Report(&out, Metric{Count: 2, Sum: 15}))
	assert.Equal(t, "Average of 2 numbers = 7.5\n", out.String())

	out.Reset()
	require.NoError(t, Report(&out, Metric{Count: 2, Sum: math.MaxInt32 * 2}))
	assert.Equal(t, "Average of 2 numbers = 2147483647\n", out.String())

	out.Reset()
	require.NoError(t, Report(&out, Metric{Count: 1, Sum: -1000000}))
	assert.Equal(t, "Average of 1 numbers = -1000000\n", out.String())

	out.Reset()
	require.NoError(t, Report(&out, Metric{}))
	assert.Equal(t, "Average of 0 numbers = NaN\n", out.String())
}

func TestReportWriteError(t *testing.T) {
	assert.Error(t, Report(failWriter{}, Metric{Count: 1, Sum: 1}))
}
