package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-07-01", New(2025, 7, 1), false},
		{"2025-7-1", New(2025, 7, 1), false},
		{"2025/07/01", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v want error %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2025, 1, 32), New(2025, 2, 1); got != want {
		t.Errorf("New(2025, 1, 32) = %v want %v", got, want)
	}
	if got, want := New(2025, 3, 1).Add(-1), New(2025, 2, 28); got != want {
		t.Errorf("Add(-1) = %v want %v", got, want)
	}
}

func TestTradingDays(t *testing.T) {
	// 2025-07-06 is a Sunday.
	sunday := New(2025, 7, 6)
	if sunday.Weekday() != time.Sunday {
		t.Fatalf("test setup: %v is a %v", sunday, sunday.Weekday())
	}
	got := TradingDays(sunday, 6)
	// last trading day before the sunday is friday the 4th.
	want := []Date{
		New(2025, 6, 27), New(2025, 6, 30), New(2025, 7, 1),
		New(2025, 7, 2), New(2025, 7, 3), New(2025, 7, 4),
	}
	if len(got) != len(want) {
		t.Fatalf("TradingDays() returned %d days want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TradingDays()[%d] = %v want %v", i, got[i], want[i])
		}
		if !got[i].IsTradingDay() {
			t.Errorf("TradingDays()[%d] = %v is not a trading day", i, got[i])
		}
	}

	if got := TradingDays(sunday, 0); got != nil {
		t.Errorf("TradingDays(0) = %v want nil", got)
	}
}

func TestDateJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2025-7-1"`), &d); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if want := New(2025, 7, 1); d != want {
		t.Errorf("json.Unmarshal() = %v want %v", d, want)
	}

	if err := json.Unmarshal([]byte(`"2025-07-02T00:00:00.000Z"`), &d); err != nil {
		t.Fatalf("json.Unmarshal(timestamp) error = %v", err)
	}
	if want := New(2025, 7, 2); d != want {
		t.Errorf("json.Unmarshal(timestamp) = %v want %v", d, want)
	}

	got, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `"2025-07-02"`; string(got) != want {
		t.Errorf("json.Marshal() = %s want %s", got, want)
	}
}
