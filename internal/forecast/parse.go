package forecast

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/julianstephens/uvcast/internal/models"
	"github.com/julianstephens/uvcast/internal/utils"
)

var (
	// ErrTransport covers network failures and non-2xx responses
	ErrTransport = errors.New("transport error")
	// ErrDecode covers bodies that do not match {"hourly": [{"datetime", "uv"}]}
	ErrDecode = errors.New("decode error")
)

func decodeErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDecode, fmt.Sprintf(format, args...))
}

// ParseResponse decodes a forecast body into hour entries, preserving order.
// A malformed body rejects the whole response; an unparseable datetime only
// degrades that entry's hour to models.ZeroTimestamp.
func ParseResponse(body []byte) ([]models.HourForecast, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, decodeErrorf("body is not a JSON object: %v", err)
	}
	if top == nil {
		return nil, decodeErrorf("body is null")
	}

	rawHourly, ok := top["hourly"]
	if !ok || isNull(rawHourly) {
		return nil, decodeErrorf("missing field \"hourly\"")
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(rawHourly, &elems); err != nil {
		return nil, decodeErrorf("field \"hourly\" is not an array")
	}

	entries := make([]models.HourForecast, 0, len(elems))
	for i, elem := range elems {
		rec, err := parseRecord(elem)
		if err != nil {
			return nil, decodeErrorf("hourly[%d]: %v", i, err)
		}
		entries = append(entries, models.HourForecast{
			Hour: utils.ParseDatetimeOrZero(rec.Datetime),
			UV:   rec.UV,
		})
	}
	return entries, nil
}

func parseRecord(raw json.RawMessage) (models.RawHourRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return models.RawHourRecord{}, fmt.Errorf("not an object")
	}

	rawDatetime, ok := fields["datetime"]
	if !ok || isNull(rawDatetime) {
		return models.RawHourRecord{}, fmt.Errorf("missing field \"datetime\"")
	}
	var datetime string
	if err := json.Unmarshal(rawDatetime, &datetime); err != nil {
		return models.RawHourRecord{}, fmt.Errorf("field \"datetime\" is not a string")
	}

	rawUV, ok := fields["uv"]
	if !ok || isNull(rawUV) {
		return models.RawHourRecord{}, fmt.Errorf("missing field \"uv\"")
	}
	uv, err := parseInt(rawUV)
	if err != nil {
		return models.RawHourRecord{}, fmt.Errorf("field \"uv\": %v", err)
	}

	return models.RawHourRecord{Datetime: datetime, UV: uv}, nil
}

// parseInt accepts JSON numbers with an integral value, including 5.0 and 5e0.
func parseInt(raw json.RawMessage) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return 0, err
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("not a number")
	}
	if i, err := num.Int64(); err == nil {
		if i > math.MaxInt32 || i < math.MinInt32 {
			return 0, fmt.Errorf("%s out of range", num)
		}
		return int(i), nil
	}
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s is not an integer", num)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%s out of range", num)
	}
	return int(f), nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
