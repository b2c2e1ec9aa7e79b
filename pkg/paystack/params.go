package paystack

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Params is the set of named arguments sent to the processor, either as JSON body or as query.
type Params map[string]interface{}

const (
	amountKey = "amount"

	// minorUnitsPerMajor converts e.g. naira to kobo, dollars to cents.
	minorUnitsPerMajor = 100
)

// BuildParams returns a new map holding only the truthy entries of args.
//
// nil, empty strings, zero numbers, false, nil pointers, empty containers and zero
// structs are dropped. The value under "amount" (any case) is given in major units
// and converted to minor units by multiplying with 100; this applies to every call,
// list filters included. Amounts whose minor units would not fit an int64 are sent
// unscaled. args is not modified.
func BuildParams(args Params) Params {
	params := Params{}
	for k, v := range args {
		if !isTruthy(v) {
			continue
		}
		if strings.ToLower(k) == amountKey {
			params[k] = toMinorUnits(v)
		} else {
			params[k] = v
		}
	}
	return params
}

func isTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return isTruthy(rv.Elem().Interface())
	case reflect.Func:
		return !rv.IsNil()
	default:
		return !rv.IsZero()
	}
}

// toMinorUnits scales numeric values. Anything it cannot read as a number, or whose
// scaled value does not fit an int64, passes unchanged.
func toMinorUnits(v interface{}) interface{} {
	switch typed := v.(type) {
	case json.Number:
		return scaleNumericString(typed.String(), v)
	case string:
		return scaleNumericString(strings.TrimSpace(typed), v)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if scaled, ok := scaleInt(rv.Int()); ok {
			return scaled
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := rv.Uint(); u <= math.MaxInt64/minorUnitsPerMajor {
			return int64(u) * minorUnitsPerMajor
		}
	case reflect.Float32, reflect.Float64:
		if scaled, ok := scaleFloat(rv.Float()); ok {
			return scaled
		}
	}
	return v
}

func scaleNumericString(s string, original interface{}) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if scaled, ok := scaleInt(i); ok {
			return scaled
		}
		return original
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if scaled, ok := scaleFloat(f); ok {
			return scaled
		}
	}
	return original
}

func scaleInt(i int64) (int64, bool) {
	if i > math.MaxInt64/minorUnitsPerMajor || i < math.MinInt64/minorUnitsPerMajor {
		return 0, false
	}
	return i * minorUnitsPerMajor, true
}

// float64(math.MaxInt64) rounds up to 2^63, hence the strict upper bound.
func scaleFloat(f float64) (int64, bool) {
	scaled := math.Round(f * minorUnitsPerMajor)
	if math.IsNaN(scaled) || scaled >= math.MaxInt64 || scaled < math.MinInt64 {
		return 0, false
	}
	return int64(scaled), true
}
