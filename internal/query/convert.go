package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"eventbackend/internal/domain"
)

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"}

// Convert parses raw into the Go type matching col.Kind.
func Convert(col Column, raw string) (any, error) {
	switch col.Kind {
	case KindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, kindError(col, raw)
		}
		return n, nil
	case KindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, kindError(col, raw)
		}
		return b, nil
	case KindTime:
		t, err := parseTime(raw)
		if err != nil {
			return nil, kindError(col, raw)
		}
		return t, nil
	default:
		return raw, nil
	}
}

func parseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func kindError(col Column, raw string) error {
	return domain.ValidationError{
		Field: col.Name,
		Msg:   fmt.Sprintf("value %q is not a valid %s", raw, col.Kind),
	}
}

// ConvertJSON converts a decoded JSON value for col. JSON numbers arrive as
// float64 and must be integral for integer columns; strings are accepted for
// every kind. null is only valid on nullable columns.
func ConvertJSON(col Column, v any) (any, error) {
	if v == nil {
		if !col.Nullable {
			return nil, domain.ValidationError{Field: col.Name, Msg: "must not be null"}
		}
		return nil, nil
	}

	switch x := v.(type) {
	case string:
		return Convert(col, x)
	case float64:
		if col.Kind == KindInt && x == math.Trunc(x) {
			return int64(x), nil
		}
	case bool:
		if col.Kind == KindBool {
			return x, nil
		}
	}
	return nil, kindError(col, fmt.Sprint(v))
}
