package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// loadRows reads CSV records of integers from r and hands each one to
// insert. It returns the number of rows inserted.
func loadRows(r io.Reader, width int, insert func([]int32) error) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = width
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	n := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("failed to read rows: %w", err)
		}

		line, _ := cr.FieldPos(0)
		values := make([]int32, len(record))
		for i, field := range record {
			v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 32)
			if err != nil {
				return n, fmt.Errorf("line %d, field %d: %w", line, i+1, err)
			}
			values[i] = int32(v)
		}

		if err := insert(values); err != nil {
			return n, fmt.Errorf("line %d: %w", line, err)
		}
		n++
	}
}
