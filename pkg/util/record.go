package util

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Record is a JSON object decoded only to its top-level keys. Lookups take
// ordered alias lists and accept dotted paths into nested objects
// ("details.price_usd"); the first alias holding a usable value wins.
type Record map[string]json.RawMessage

// ParseRecord decodes raw as a JSON object. Anything else reports false.
func ParseRecord(raw []byte) (Record, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, false
	}
	return r, true
}

// IsNull reports whether raw is absent or the JSON null literal.
func IsNull(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// Has reports whether any alias resolves to a non-null value.
func (r Record) Has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := r.lookup(k); ok {
			return true
		}
	}
	return false
}

func (r Record) lookup(key string) (json.RawMessage, bool) {
	head, rest, nested := strings.Cut(key, ".")
	v, ok := r[head]
	if !ok || IsNull(v) {
		return nil, false
	}
	if !nested {
		return v, true
	}
	sub, ok := ParseRecord(v)
	if !ok {
		return nil, false
	}
	return sub.lookup(rest)
}

// Str returns the first non-blank string (numbers are rendered verbatim) or def.
func (r Record) Str(def string, keys ...string) string {
	for _, k := range keys {
		v, ok := r.lookup(k)
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			if strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
			continue
		}
		var n json.Number
		if err := json.Unmarshal(v, &n); err == nil {
			return n.String()
		}
	}
	return def
}

// Num returns the first value that is a JSON number or a numeric string.
func (r Record) Num(keys ...string) (float64, bool) {
	for _, k := range keys {
		v, ok := r.lookup(k)
		if !ok {
			continue
		}
		if f, ok := toFloat(v); ok {
			return f, true
		}
	}
	return 0, false
}

// NumOr is Num with a terminal default.
func (r Record) NumOr(def float64, keys ...string) float64 {
	if f, ok := r.Num(keys...); ok {
		return f
	}
	return def
}

// IntOr truncates the first numeric value to an int.
func (r Record) IntOr(def int, keys ...string) int {
	if f, ok := r.Num(keys...); ok {
		return int(f)
	}
	return def
}

// Time accepts timestamp strings understood by ParseTime and unix numbers.
func (r Record) Time(keys ...string) (time.Time, bool) {
	for _, k := range keys {
		v, ok := r.lookup(k)
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			if t, ok := ParseTime(s); ok {
				return t, true
			}
			continue
		}
		var n float64
		if err := json.Unmarshal(v, &n); err == nil && n > 0 {
			return UnixAuto(int64(n)), true
		}
	}
	return time.Time{}, false
}

// Strings returns the first string array, or a single string as a one-element slice.
func (r Record) Strings(keys ...string) []string {
	for _, k := range keys {
		v, ok := r.lookup(k)
		if !ok {
			continue
		}
		var list []string
		if err := json.Unmarshal(v, &list); err == nil {
			return list
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil && s != "" {
			return []string{s}
		}
	}
	return nil
}

// Object returns the nested object under key.
func (r Record) Object(key string) (Record, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return nil, false
	}
	return ParseRecord(v)
}

// Objects returns the object elements of the array under key; other elements are dropped.
func (r Record) Objects(key string) []Record {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return nil
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if rec, ok := ParseRecord(item); ok {
			out = append(out, rec)
		}
	}
	return out
}

func toFloat(v json.RawMessage) (float64, bool) {
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
