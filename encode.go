package riskfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/riskfolio/date"
)

// This file contains code to persist return series as JSONL, one sample per line, in a way that
// is human-readable and git-friendly.
//
//	{"date":"2025-07-01","portfolioValue":10120.5,"return":0.012,"cumulativeReturn":0.012}
//
// Daily portfolio values use a lighter format, from which returns are derived:
//
//	{"on":"2025-07-01","value":10120.5}

// Decode reads a return series from r.
// filename is for error message only.
//
// Samples are returned in file order, which must be chronological.
func Decode(filename string, r io.Reader) (Series, error) {
	var s Series
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var sample ReturnSample
		if err := json.Unmarshal(line, &sample); err != nil {
			return nil, fmt.Errorf("format error in %s:%d: %w", filename, i, err)
		}
		if last, ok := s.Latest(); ok && !sample.Date.IsZero() && !sample.Date.After(last.Date) {
			return nil, fmt.Errorf("format error in %s:%d: date %v is not after %v", filename, i, sample.Date, last.Date)
		}
		s = append(s, sample)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", filename, err)
	}
	return s, nil
}

// Encode writes the series to w, one sample per line.
func Encode(w io.Writer, s Series) error {
	enc := json.NewEncoder(w)
	for _, sample := range s {
		if err := enc.Encode(sample); err != nil {
			return fmt.Errorf("cannot encode sample of %v: %w", sample.Date, err)
		}
	}
	return nil
}

// DecodeValues reads daily portfolio values from r.
// filename is for error message only.
func DecodeValues(filename string, r io.Reader) (*date.History[float64], error) {
	// jvalue is the object read from the file using json parser.
	type jvalue struct {
		On    *date.Date `json:"on"`
		Value *float64   `json:"value"`
	}

	h := new(date.History[float64])
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jv jvalue
		if err := json.Unmarshal(line, &jv); err != nil {
			return nil, fmt.Errorf("format error in %s:%d: %w", filename, i, err)
		}
		if jv.On == nil {
			return nil, fmt.Errorf("format error in %s:%d: missing the property %q with a date", filename, i, "on")
		}
		if jv.Value == nil {
			return nil, fmt.Errorf("format error in %s:%d: missing the property %q", filename, i, "value")
		}
		if _, exists := h.Get(*jv.On); exists {
			return nil, fmt.Errorf("format error in %s:%d: duplicate value on %v", filename, i, *jv.On)
		}
		h.Append(*jv.On, *jv.Value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", filename, err)
	}
	return h, nil
}
