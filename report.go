package main

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/xerrors"
)

func Report(w io.Writer, m Metric) error {
	avg := strconv.FormatFloat(m.Avg(), 'f', -1, 64)
	if _, err := fmt.Fprintf(w, "Average of %d numbers = %s\n", m.Count, avg); err != nil {
		return xerrors.Errorf("write report: %w", err)
	}
	return nil
}
