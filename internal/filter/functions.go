// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package filter

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// builtinFn is a pure function value in the filter engine's function
// registry, per the design notes' "capability map" approach to dynamic
// dispatch over operators and functions.
type builtinFn func(args []interface{}) (interface{}, error)

var builtins = map[string]builtinFn{
	"upper":      fnUpper,
	"lower":      fnLower,
	"trim":       fnTrim,
	"length":     fnLength,
	"size":       fnLength,
	"first":      fnFirst,
	"last":       fnLast,
	"abs":        fnAbs,
	"floor":      fnFloor,
	"ceil":       fnCeil,
	"round":      fnRound,
	"now":        fnNow,
	"today":      fnToday,
	"toDate":     fnToDate,
	"formatDate": fnFormatDate,
	"coalesce":   fnCoalesce,
	"default":    fnDefault,
	"type":       fnType,
}

func fnUpper(args []interface{}) (interface{}, error) {
	s, err := requireString(args, "upper")
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(s), nil
}

func fnLower(args []interface{}) (interface{}, error) {
	s, err := requireString(args, "lower")
	if err != nil {
		return nil, err
	}
	return strings.ToLower(s), nil
}

func fnTrim(args []interface{}) (interface{}, error) {
	s, err := requireString(args, "trim")
	if err != nil {
		return nil, err
	}
	return strings.TrimSpace(s), nil
}

func fnLength(args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("length: expected 1 argument")
	}
	switch v := args[0].(type) {
	case string:
		return float64(len(v)), nil
	case []interface{}:
		return float64(len(v)), nil
	case map[string]interface{}:
		return float64(len(v)), nil
	default:
		return float64(0), nil
	}
}

func fnFirst(args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("first: expected 1 argument")
	}
	arr, ok := args[0].([]interface{})
	if !ok || len(arr) == 0 {
		return undefinedValue{}, nil
	}
	return arr[0], nil
}

func fnLast(args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("last: expected 1 argument")
	}
	arr, ok := args[0].([]interface{})
	if !ok || len(arr) == 0 {
		return undefinedValue{}, nil
	}
	return arr[len(arr)-1], nil
}

func fnAbs(args []interface{}) (interface{}, error) {
	n, err := requireNumber(args, "abs")
	if err != nil {
		return nil, err
	}
	return math.Abs(n), nil
}

func fnFloor(args []interface{}) (interface{}, error) {
	n, err := requireNumber(args, "floor")
	if err != nil {
		return nil, err
	}
	return math.Floor(n), nil
}

func fnCeil(args []interface{}) (interface{}, error) {
	n, err := requireNumber(args, "ceil")
	if err != nil {
		return nil, err
	}
	return math.Ceil(n), nil
}

func fnRound(args []interface{}) (interface{}, error) {
	n, err := requireNumber(args, "round")
	if err != nil {
		return nil, err
	}
	return math.Round(n), nil
}

func fnNow([]interface{}) (interface{}, error) {
	return time.Now().UTC(), nil
}

func fnToday([]interface{}) (interface{}, error) {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
}

func fnToDate(args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("toDate: expected 1 argument")
	}
	t, ok := coerceTime(args[0])
	if !ok {
		return undefinedValue{}, nil
	}
	return t, nil
}

func fnFormatDate(args []interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("formatDate: expected 2 arguments")
	}
	t, ok := coerceTime(args[0])
	if !ok {
		return undefinedValue{}, nil
	}
	layout, ok := args[1].(string)
	if !ok {
		return nil, fmt.Errorf("formatDate: second argument must be a string layout")
	}
	return t.Format(layout), nil
}

func fnCoalesce(args []interface{}) (interface{}, error) {
	for _, a := range args {
		if !isUndefined(a) && a != nil {
			return a, nil
		}
	}
	if len(args) > 0 {
		return args[len(args)-1], nil
	}
	return undefinedValue{}, nil
}

func fnDefault(args []interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("default: expected 2 arguments")
	}
	if isUndefined(args[0]) || args[0] == nil {
		return args[1], nil
	}
	return args[0], nil
}

func fnType(args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("type: expected 1 argument")
	}
	switch args[0].(type) {
	case string:
		return "string", nil
	case float64:
		return "number", nil
	case bool:
		return "boolean", nil
	case []interface{}:
		return "array", nil
	case map[string]interface{}:
		return "object", nil
	case undefinedValue:
		return "undefined", nil
	case nil:
		return "null", nil
	default:
		return "unknown", nil
	}
}

func requireString(args []interface{}, fn string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s: expected 1 argument", fn)
	}
	s, ok := args[0].(string)
	if !ok {
		return "", fmt.Errorf("%s: argument must be a string", fn)
	}
	return s, nil
}

func requireNumber(args []interface{}, fn string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s: expected 1 argument", fn)
	}
	n, ok := toFloat(args[0])
	if !ok {
		return 0, fmt.Errorf("%s: argument must be a number", fn)
	}
	return n, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// coerceTime parses a string (RFC3339 or date-only) or passes through an
// already-resolved time.Time / Unix-millis number, per the "before/after/
// between coerce both sides to dates" semantics.
func coerceTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed, true
		}
		if parsed, err := time.Parse("2006-01-02", t); err == nil {
			return parsed, true
		}
		return time.Time{}, false
	case float64:
		return time.UnixMilli(int64(t)).UTC(), true
	default:
		return time.Time{}, false
	}
}
