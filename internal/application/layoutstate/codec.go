package layoutstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/bnema/shellgrid/internal/domain/entity"
)

// errCoercion marks a stored value that does not match its key's type.
// The raw string is still returned so callers see what was stored.
var errCoercion = errors.New("stored value does not match key type")

// decodeValue converts a stored string according to the key's default type.
func decodeValue(key *entity.StateKey, raw string) (any, error) {
	switch key.ValueType() {
	case entity.ValueBool:
		return raw == "true", nil
	case entity.ValueNumber:
		return decodeNumber(raw)
	case entity.ValueString:
		return reflect.ValueOf(raw).Convert(reflect.TypeOf(key.Default())).Interface(), nil
	default:
		ptr := reflect.New(reflect.TypeOf(key.Default()))
		if err := json.Unmarshal([]byte(raw), ptr.Interface()); err != nil {
			return raw, fmt.Errorf("%w: %s: %v", errCoercion, key.Name(), err)
		}
		return ptr.Elem().Interface(), nil
	}
}

// decodeNumber parses a float, falling back to the longest leading integer
// ("300px" reads as 300).
func decodeNumber(raw string) (any, error) {
	s := strings.TrimSpace(raw)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end > digits {
		if n, err := strconv.ParseInt(s[:end], 10, 64); err == nil {
			return float64(n), nil
		}
	}
	return raw, fmt.Errorf("%w: %q is not a number", errCoercion, raw)
}

// encodeValue converts a cached value to its stored string form.
func encodeValue(v any) (string, error) {
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(val), nil
	case string:
		return val, nil
	}

	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode state value: %w", err)
	}
	return string(data), nil
}

// normalizeValue converts caller-provided values to the cache representation
// (ints become float64, plain strings become the key's string type).
func normalizeValue(key *entity.StateKey, v any) any {
	switch key.ValueType() {
	case entity.ValueNumber:
		switch n := v.(type) {
		case int:
			return float64(n)
		case int64:
			return float64(n)
		case float32:
			return float64(n)
		}
	case entity.ValueString:
		if s, ok := v.(string); ok {
			return reflect.ValueOf(s).Convert(reflect.TypeOf(key.Default())).Interface()
		}
	}
	return v
}
