package models

import (
	"github.com/julianstephens/uvcast/internal/constants"
)

// Timestamp holds the calendar components of a forecast hour
type Timestamp struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
	Hour  int `json:"hour"`
}

// ZeroTimestamp is used when a record's datetime cannot be parsed
var ZeroTimestamp = Timestamp{Year: 0, Month: 1, Day: 1, Hour: 0}

// HourForecast is one parsed row of the hourly forecast
type HourForecast struct {
	Hour Timestamp `json:"hour"`
	UV   int       `json:"uv"`
}

// RawHourRecord is the wire shape of one element of "hourly"
type RawHourRecord struct {
	Datetime string `json:"datetime"`
	UV       int    `json:"uv"`
}

// ForecastState is the fetch lifecycle state. Entries is only set for StatusSuccess.
type ForecastState struct {
	Status  constants.Status `json:"status"`
	Entries []HourForecast   `json:"entries,omitempty"`
}

func Idle() ForecastState {
	return ForecastState{Status: constants.StatusIdle}
}

func Loading() ForecastState {
	return ForecastState{Status: constants.StatusLoading}
}

func Failure() ForecastState {
	return ForecastState{Status: constants.StatusFailure}
}

// Success copies entries so the state never shares a backing array with its caller
func Success(entries []HourForecast) ForecastState {
	cp := make([]HourForecast, len(entries))
	copy(cp, entries)
	return ForecastState{Status: constants.StatusSuccess, Entries: cp}
}

func (s ForecastState) IsLoading() bool {
	return s.Status == constants.StatusLoading
}

func (s ForecastState) String() string {
	return s.Status.String()
}
