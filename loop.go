package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

const Prompt = "Enter a number (<Enter> to quit): "

// ParseError is returned by Run when a line is neither empty nor an integer.
type ParseError struct {
	Line  int
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q is not a number: %v", e.Line, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// blanks are the only characters allowed around a number.
const blanks = " \t\n\v\f\r"

// ParseNumber accepts a base-10 int32 with optional sign and surrounding
// ASCII blanks.
func ParseNumber(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.Trim(s, blanks), 10, 32)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// scanLines ends a line at "\n", "\r\n" or a lone "\r".
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		switch {
		case data[i] == '\n':
			return i + 1, data[:i], nil
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		// lone \r at the end of the buffer, wait for a possible \n
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Run prompts on out and reads numbers from in until an empty line or end of
// input. A malformed line stops the loop with a *ParseError.
func Run(in io.Reader, out io.Writer, sl *zap.SugaredLogger) (Metric, error) {
	var m Metric
	scanner := bufio.NewScanner(in)
	scanner.Split(scanLines)
	stdout := bufio.NewWriter(out)

	for line := 1; ; line++ {
		fmt.Fprint(stdout, Prompt)
		if err := stdout.Flush(); err != nil {
			return m, xerrors.Errorf("prompt: %w", err)
		}

		if !scanner.Scan() {
			err := scanner.Err()
			if xerrors.Is(err, bufio.ErrTooLong) {
				sl.Errorf("Line %d is too long", line)
				return m, &ParseError{Line: line, Err: err}
			}
			if err != nil {
				return m, xerrors.Errorf("read line %d: %w", line, err)
			}
			sl.Infof("End of input after %d numbers", m.Count)
			return m, nil
		}
		text := scanner.Text()
		if text == "" {
			sl.Infof("Empty line, stopping after %d numbers", m.Count)
			return m, nil
		}

		v, err := ParseNumber(text)
		if err != nil {
			sl.Errorf("Bad input on line %d: %q", line, text)
			return m, &ParseError{Line: line, Input: text, Err: err}
		}
		m.Add(v)
		sl.Debugf("Accepted %d (count %d, sum %d)", v, m.Count, m.Sum)
	}
}
