package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/uvcast/internal/models"
)

// zonedLayouts carry an offset or Z and are normalized to UTC.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15Z07:00",
}

// localLayouts have no zone information and are taken at face value.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02",
}

// ParseDatetime parses an ISO-8601 datetime into its calendar components.
// Values with a zone designator are converted to UTC first.
func ParseDatetime(s string) (models.Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Timestamp{}, fmt.Errorf("empty datetime")
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t.UTC()), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	return models.Timestamp{}, fmt.Errorf("invalid datetime %q", s)
}

// ParseDatetimeOrZero parses s, falling back to models.ZeroTimestamp
func ParseDatetimeOrZero(s string) models.Timestamp {
	ts, err := ParseDatetime(s)
	if err != nil {
		return models.ZeroTimestamp
	}
	return ts
}

// FromTime extracts calendar components from t in its own location.
func FromTime(t time.Time) models.Timestamp {
	return models.Timestamp{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
		Hour:  t.Hour(),
	}
}
