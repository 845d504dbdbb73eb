package utils

import (
	"testing"
	"time"

	"github.com/julianstephens/uvcast/internal/models"
)

func TestParseDatetime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.Timestamp
		wantErr bool
	}{
		{
			name:  "UTC designator",
			input: "2024-06-01T14:00:00Z",
			want:  models.Timestamp{Year: 2024, Month: 6, Day: 1, Hour: 14},
		},
		{
			name:  "fractional seconds",
			input: "2024-06-01T14:00:00.000Z",
			want:  models.Timestamp{Year: 2024, Month: 6, Day: 1, Hour: 14},
		},
		{
			name:  "positive offset converted to UTC",
			input: "2024-06-01T02:00:00+03:00",
			want:  models.Timestamp{Year: 2024, Month: 5, Day: 31, Hour: 23},
		},
		{
			name:  "negative offset converted to UTC",
			input: "2024-12-31T20:00:00-05:00",
			want:  models.Timestamp{Year: 2025, Month: 1, Day: 1, Hour: 1},
		},
		{
			name:  "minutes only with zone",
			input: "2024-06-01T09:00Z",
			want:  models.Timestamp{Year: 2024, Month: 6, Day: 1, Hour: 9},
		},
		{
			name:  "local datetime",
			input: "2024-06-01T07:00:00",
			want:  models.Timestamp{Year: 2024, Month: 6, Day: 1, Hour: 7},
		},
		{
			name:  "local datetime without seconds",
			input: "2024-06-01T18:30",
			want:  models.Timestamp{Year: 2024, Month: 6, Day: 1, Hour: 18},
		},
		{
			name:  "date only",
			input: "2024-06-01",
			want:  models.Timestamp{Year: 2024, Month: 6, Day: 1, Hour: 0},
		},
		{
			name:  "surrounding whitespace",
			input: "  2024-06-01T14:00:00Z ",
			want:  models.Timestamp{Year: 2024, Month: 6, Day: 1, Hour: 14},
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "not a date",
			input:   "yesterday",
			wantErr: true,
		},
		{
			name:    "US style date",
			input:   "06/01/2024 02 PM",
			wantErr: true,
		},
		{
			name:    "out of range hour",
			input:   "2024-06-01T25:00:00Z",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDatetime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDatetime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDatetime(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDatetimeOrZero(t *testing.T) {
	if got := ParseDatetimeOrZero("garbage"); got != models.ZeroTimestamp {
		t.Errorf("ParseDatetimeOrZero(garbage) = %+v, want %+v", got, models.ZeroTimestamp)
	}

	want := models.Timestamp{Year: 2024, Month: 6, Day: 1, Hour: 14}
	if got := ParseDatetimeOrZero("2024-06-01T14:00:00Z"); got != want {
		t.Errorf("ParseDatetimeOrZero() = %+v, want %+v", got, want)
	}
}

func TestFromTime(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)
	tm := time.Date(2023, time.March, 9, 22, 15, 0, 0, loc)

	got := FromTime(tm)
	want := models.Timestamp{Year: 2023, Month: 3, Day: 9, Hour: 22}
	if got != want {
		t.Errorf("FromTime() = %+v, want %+v", got, want)
	}
}
