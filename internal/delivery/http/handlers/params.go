package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Raimguhinov/alarmlog/internal/domain"
)

// Unix seconds of 9999-12-31T23:59:59Z.
const maxUnixSeconds = 253402300799

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTime accepts ISO 8601 date-times (zone-less values are UTC) and unix seconds.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		if !isFinite(secs) || math.Abs(secs) > maxUnixSeconds {
			return time.Time{}, fmt.Errorf("datetime %q out of range", s)
		}
		whole := int64(secs)
		return time.Unix(whole, int64((secs-float64(whole))*1e9)).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// parseAlarmFilter reads start_time, end_time, min_temp, max_temp, smoke_det, fire_det and cleared.
// Empty or absent parameters leave the predicate unset.
func parseAlarmFilter(q url.Values) (domain.AlarmFilter, error) {
	var f domain.AlarmFilter
	var err error

	if f.StartTime, err = optional(q, "start_time", parseTime); err != nil {
		return f, err
	}
	if f.EndTime, err = optional(q, "end_time", parseTime); err != nil {
		return f, err
	}
	if f.MinTemp, err = optional(q, "min_temp", parseFloat); err != nil {
		return f, err
	}
	if f.MaxTemp, err = optional(q, "max_temp", parseFloat); err != nil {
		return f, err
	}
	if f.SmokeDetected, err = optional(q, "smoke_det", parseBool); err != nil {
		return f, err
	}
	if f.FireDetected, err = optional(q, "fire_det", parseBool); err != nil {
		return f, err
	}
	if f.Cleared, err = optional(q, "cleared", parseBool); err != nil {
		return f, err
	}
	return f, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !isFinite(v) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func optional[T any](q url.Values, key string, parse func(string) (T, error)) (*T, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &v, nil
}

// flexTime decodes the same date-time forms as query parameters.
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var s string
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Errorf("invalid datetime %s", string(b))
	}

	parsed, err := parseTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
