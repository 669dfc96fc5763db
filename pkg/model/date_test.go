package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name  string
		start Date
		end   Date
		want  int
	}{
		{
			name:  "three nights",
			start: NewDate(2024, time.January, 1),
			end:   NewDate(2024, time.January, 4),
			want:  3,
		},
		{
			name:  "single night",
			start: NewDate(2024, time.June, 15),
			end:   NewDate(2024, time.June, 16),
			want:  1,
		},
		{
			name:  "same day",
			start: NewDate(2024, time.March, 10),
			end:   NewDate(2024, time.March, 10),
			want:  0,
		},
		{
			name:  "reversed range is negative",
			start: NewDate(2024, time.March, 10),
			end:   NewDate(2024, time.March, 8),
			want:  -2,
		},
		{
			name:  "across month boundary",
			start: NewDate(2024, time.January, 30),
			end:   NewDate(2024, time.February, 2),
			want:  3,
		},
		{
			name:  "across leap day",
			start: NewDate(2024, time.February, 28),
			end:   NewDate(2024, time.March, 1),
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.DaysUntil(tt.end); got != tt.want {
				t.Errorf("DaysUntil() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.January, 4)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `"2024-01-04"` {
		t.Errorf("Marshal() = %s, want %q", data, "2024-01-04")
	}

	var parsed Date
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !parsed.Equal(d.Time) {
		t.Errorf("round trip = %v, want %v", parsed, d)
	}
}

func TestDateJSON_Invalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"04/01/2024"`), &d); err == nil {
		t.Errorf("expected error for non-ISO date")
	}
	if err := json.Unmarshal([]byte(`20240104`), &d); err == nil {
		t.Errorf("expected error for numeric date")
	}
}

func TestDateJSON_Null(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("Unmarshal(null) error: %v", err)
	}
	if !d.IsZero() {
		t.Errorf("null should decode to the zero Date")
	}

	data, err := json.Marshal(Date{})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("zero Date marshals to %s, want null", data)
	}
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Date
	}{
		{
			name:  "time value",
			value: time.Date(2024, time.May, 7, 13, 45, 0, 0, time.UTC),
			want:  NewDate(2024, time.May, 7),
		},
		{
			name:  "date-only text",
			value: "2024-05-07",
			want:  NewDate(2024, time.May, 7),
		},
		{
			name:  "sqlite datetime text",
			value: "2024-05-07 00:00:00+00:00",
			want:  NewDate(2024, time.May, 7),
		},
		{
			name:  "byte slice",
			value: []byte("2024-05-07"),
			want:  NewDate(2024, time.May, 7),
		},
		{
			name:  "nil clears",
			value: nil,
			want:  Date{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tt.value); err != nil {
				t.Fatalf("Scan() error: %v", err)
			}
			if !d.Equal(tt.want.Time) {
				t.Errorf("Scan() = %v, want %v", d, tt.want)
			}
		})
	}
}

func TestDateOfNormalizesZone(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*3600)
	late := time.Date(2024, time.January, 1, 1, 0, 0, 0, loc)

	got := DateOf(late)
	// 01:00 at UTC+14 is still Dec 31 in UTC.
	if want := NewDate(2023, time.December, 31); !got.Equal(want.Time) {
		t.Errorf("DateOf() = %v, want %v", got, want)
	}
}
