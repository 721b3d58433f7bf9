package main

// Metric is the running tally of accepted numbers.
type Metric struct {
	Count int
	Sum   int64
}

func (m *Metric) Add(v int64) {
	m.Count++
	m.Sum += v
}

// Avg divides in float64 with no zero check: an empty tally gives NaN.
func (m *Metric) Avg() float64 {
	return float64(m.Sum) / float64(m.Count)
}
