package riskfolio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/riskfolio/date"
	"github.com/google/go-cmp/cmp"
)

func TestEncodeDecode(t *testing.T) {
	s := Series{
		{Date: date.New(2025, 7, 1), PortfolioValue: 10100, Return: 0.01, CumulativeReturn: 0.01},
		{Date: date.New(2025, 7, 2), PortfolioValue: 9898, Return: -0.02, CumulativeReturn: -0.01},
	}
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := `{"date":"2025-07-01","portfolioValue":10100,"return":0.01,"cumulativeReturn":0.01}
{"date":"2025-07-02","portfolioValue":9898,"return":-0.02,"cumulativeReturn":-0.01}
`
	if buf.String() != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", buf.String(), want)
	}

	got, err := Decode("test.jsonl", &buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if diff := cmp.Diff(s, got, cmp.AllowUnexported(date.Date{})); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name, input, wantErr string
	}{
		{"not json", "{\"date\":\"2025-07-01\"}\nnot json\n", "test.jsonl:2"},
		{"unordered", "{\"date\":\"2025-07-02\"}\n\n{\"date\":\"2025-07-01\"}\n", "is not after"},
		{"bad date", "{\"date\":\"07/01/2025\"}\n", "invalid date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode("test.jsonl", strings.NewReader(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Decode() error = %v want an error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeValues(t *testing.T) {
	input := `{"on":"2025-07-02","value":110}

{"on":"2025-07-01","value":100}
`
	h, err := DecodeValues("values.jsonl", strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeValues() error = %v", err)
	}
	if h.Len() != 2 {
		t.Errorf("DecodeValues().Len() = %v want 2", h.Len())
	}
	if day, v := h.Latest(); day != date.New(2025, 7, 2) || v != 110 {
		t.Errorf("DecodeValues().Latest() = %v, %v want 2025-07-02, 110", day, v)
	}

	for _, bad := range []string{
		`{"value":1}`,
		`{"on":"2025-07-01"}`,
		"{\"on\":\"2025-07-01\",\"value\":1}\n{\"on\":\"2025-07-01\",\"value\":2}",
	} {
		if _, err := DecodeValues("values.jsonl", strings.NewReader(bad)); err == nil {
			t.Errorf("DecodeValues(%q) succeeded want an error", bad)
		}
	}
}
