package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/housing-budget/internal/reference"
)

var sampleHeader = []string{"city", "district", "propertyType", "price"}

// ReadSamplesCSV parses price samples from CSV with the header
// city,district,propertyType,price. Property types use their canonical names.
func ReadSamplesCSV(r io.Reader) ([]reference.PriceSample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(sampleHeader)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("price sample CSV is empty")
		}
		return nil, fmt.Errorf("read price sample header: %w", err)
	}
	for i, want := range sampleHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, fmt.Errorf("price sample header column %d: expected %q, got %q", i+1, want, header[i])
		}
	}

	var samples []reference.PriceSample
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read price sample line %d: %w", line, err)
		}

		t, ok := reference.ParsePropertyType(record[2])
		if !ok {
			return nil, fmt.Errorf("line %d: unknown property type %q", line, record[2])
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil || price <= 0 {
			return nil, fmt.Errorf("line %d: price must be a positive number, got %q", line, record[3])
		}
		samples = append(samples, reference.PriceSample{
			City:         strings.TrimSpace(record[0]),
			District:     strings.TrimSpace(record[1]),
			PropertyType: t,
			Price:        price,
		})
	}
	return samples, nil
}

// WriteSamplesCSV writes samples in the format ReadSamplesCSV accepts.
func WriteSamplesCSV(w io.Writer, samples []reference.PriceSample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sampleHeader); err != nil {
		return err
	}
	for _, s := range samples {
		record := []string{s.City, s.District, string(s.PropertyType), strconv.FormatFloat(s.Price, 'f', -1, 64)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
