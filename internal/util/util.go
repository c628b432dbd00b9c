package util

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"

	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

// DateLayout is the month-day-year layout of build dates, e.g. 01-15-2020.
const DateLayout = "01-02-2006"

// ParseDateRange parses either a single date or "(start, end)".
// A single date returns a nil end.
func ParseDateRange(s string) (time.Time, *time.Time, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "(") {
		start, err := time.Parse(DateLayout, s)
		if err != nil {
			return time.Time{}, nil, srvErrors.NewValidationError("date range", err.Error())
		}
		return start, nil, nil
	}

	open := strings.Index(s, "(")
	comma := strings.Index(s, ",")
	closing := strings.Index(s, ")")
	if comma < open || closing < comma {
		return time.Time{}, nil, srvErrors.NewValidationError("date range", fmt.Sprintf("%q is not of the form (start, end)", s))
	}

	start, err := time.Parse(DateLayout, strings.TrimSpace(s[open+1:comma]))
	if err != nil {
		return time.Time{}, nil, srvErrors.NewValidationError("date range", err.Error())
	}
	end, err := time.Parse(DateLayout, strings.TrimSpace(s[comma+1:closing]))
	if err != nil {
		return time.Time{}, nil, srvErrors.NewValidationError("date range", err.Error())
	}
	return start, &end, nil
}

// ValueFromArgList returns the argument following key, or def when key is
// absent or last.
func ValueFromArgList(args []string, key, def string) string {
	for i, a := range args {
		if a == key && i+1 < len(args) {
			return args[i+1]
		}
	}
	return def
}

// ValidateRequired fails with the sorted names of every nil value. With
// strict set, zero values (empty, false, 0) fail too.
func ValidateRequired(values map[string]any, strict bool) error {
	var missing []string
	for name, v := range values {
		if v == nil {
			missing = append(missing, name)
			continue
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
			if rv.IsNil() {
				missing = append(missing, name)
				continue
			}
		}
		if strict && (rv.IsZero() || (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map) && rv.Len() == 0) {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return srvErrors.NewValidationError(strings.Join(missing, ", "), "must not be None or empty")
}

// Round rounds to two decimals.
func Round(f float64) float64 {
	return math.Round(f*100) / 100
}
