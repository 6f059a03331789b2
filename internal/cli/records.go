// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pii-vault/internal/app"
	"github.com/MKhiriev/go-pii-vault/models"
)

// recordInput is what a record command read from stdin.
type recordInput struct {
	records []models.Record
	// array is false when the input was a single JSON object, so the
	// output is written back in the same shape.
	array bool
}

// readRecords decodes a JSON object or an array of JSON objects. Numbers
// are kept as json.Number so they round-trip unchanged.
func readRecords(r io.Reader) (recordInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return recordInput{}, fmt.Errorf("read input: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return recordInput{}, fmt.Errorf("%w: empty input", app.ErrInvalidInput)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	switch data[0] {
	case '{':
		var record models.Record
		if err := dec.Decode(&record); err != nil {
			return recordInput{}, fmt.Errorf("%w: %w", app.ErrInvalidInput, err)
		}
		if dec.More() {
			return recordInput{}, fmt.Errorf("%w: trailing data after object", app.ErrInvalidInput)
		}
		return recordInput{records: []models.Record{record}}, nil
	case '[':
		var records []models.Record
		if err := dec.Decode(&records); err != nil {
			return recordInput{}, fmt.Errorf("%w: %w", app.ErrInvalidInput, err)
		}
		if dec.More() {
			return recordInput{}, fmt.Errorf("%w: trailing data after array", app.ErrInvalidInput)
		}
		for i, record := range records {
			if record == nil {
				return recordInput{}, fmt.Errorf("%w: element %d is not an object", app.ErrInvalidInput, i)
			}
		}
		return recordInput{records: records, array: true}, nil
	default:
		return recordInput{}, fmt.Errorf("%w: unexpected %q", app.ErrInvalidInput, data[0])
	}
}

// writeRecords encodes records in the shape described by in.
func writeRecords(w io.Writer, in recordInput, records []models.Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	var v any = records
	switch {
	case !in.array:
		v = records[0]
	case records == nil:
		v = []models.Record{}
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
