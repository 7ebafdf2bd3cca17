package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	xhttp "GodSignal/pkg/http"
	"GodSignal/pkg/logger"
)

var errEmptyBody = errors.New("empty body")

// fetchList runs one acquisition of a list resource. A successful empty list is
// returned as-is; only failures substitute fallback.
func fetchList[T any](ctx context.Context, c *Client, res resource, fallback []T, decode func(json.RawMessage) (T, bool)) []T {
	start := time.Now()
	body, err := c.fetch(ctx, res)
	if err != nil {
		c.fallback(res, start, err)
		return fallback
	}

	items, err := unwrap(body, res.wrap)
	if err != nil {
		c.fallback(res, start, xhttp.NewParseError(c.url(res), err))
		return fallback
	}

	out := make([]T, 0, len(items))
	for _, raw := range items {
		v, ok := decode(raw)
		if !ok {
			continue
		}
		out = append(out, v)
	}
	if skipped := len(items) - len(out); skipped > 0 {
		c.log.Debug("skipped non-object elements",
			logger.String("resource", res.name),
			logger.Int("skipped", skipped),
		)
	}
	c.live(res, start, len(out))
	return out
}

// unwrap accepts a bare array or an object carrying the array under one of
// wrap. An object with none of the keys is an empty list. Scalars are errors.
func unwrap(body json.RawMessage, wrap []string) ([]json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errEmptyBody
	}

	switch body[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("decode array: %w", err)
		}
		return items, nil
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil {
			return nil, fmt.Errorf("decode object: %w", err)
		}
		for _, key := range wrap {
			v, ok := obj[key]
			if !ok {
				continue
			}
			var items []json.RawMessage
			if err := json.Unmarshal(v, &items); err != nil {
				return nil, fmt.Errorf("field %q is not an array: %w", key, err)
			}
			if items == nil {
				items = []json.RawMessage{}
			}
			return items, nil
		}
		return []json.RawMessage{}, nil
	}
	return nil, fmt.Errorf("expected array or object, got %.16s", body)
}

// decodeStrict decodes raw into T rejecting unknown fields.
func decodeStrict[T any](raw json.RawMessage) (T, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	err := dec.Decode(&v)
	return v, err
}

func sameSlice[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}
