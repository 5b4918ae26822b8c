package feed

import (
	"bytes"
	"encoding/json"
	"html"
	"regexp"
	"strings"

	"github.com/bilgisen/kientruc/internal/logger"
	"github.com/samber/lo"
)

// Envelope keys the backend wraps lists in.
const (
	EnvelopeData  = "data"
	EnvelopePosts = "posts"
)

// Resolve extracts the item list from a JSON body. A bare array is used as is,
// otherwise the first key whose value is an array wins. Any other shape,
// including null and primitives, resolves to an empty list.
func Resolve(body []byte, keys ...string) ([]json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []json.RawMessage{}, nil
	}
	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, err
	}

	switch body[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, err
		}
		return nonNil(items), nil
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil {
			return nil, err
		}
		for _, key := range keys {
			raw, ok := obj[key]
			if !ok || !isArray(raw) {
				continue
			}
			var items []json.RawMessage
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, err
			}
			return nonNil(items), nil
		}
	}
	return []json.RawMessage{}, nil
}

// Items resolves the item list and decodes every element into T. Elements
// that cannot be decoded (e.g. a bare number in a list of objects) are dropped.
func Items[T any](body []byte, keys ...string) ([]T, error) {
	raws, err := Resolve(body, keys...)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](raws), nil
}

// ItemsOrSingle is Items for endpoints that answer with an object or nothing:
// a non-empty object becomes a one-element list, null and {} become empty.
func ItemsOrSingle[T any](body []byte, keys ...string) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return Items[T](body, keys...)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, err
	}
	if len(obj) == 0 {
		return []T{}, nil
	}
	return decodeAll[T]([]json.RawMessage{body}), nil
}

// One decodes a single record. A null body yields nil.
func One[T any](body []byte) (*T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}
	var item T
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func decodeAll[T any](raws []json.RawMessage) []T {
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			logger.Get().Debug().
				Err(err).
				Int("index", i).
				Msg("Skipping undecodable item")
			continue
		}
		out = append(out, item)
	}
	return out
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

func nonNil(items []json.RawMessage) []json.RawMessage {
	if items == nil {
		return []json.RawMessage{}
	}
	return items
}

// take bounds items to at most n, keeping order.
func take[T any](items []T, n int) []T {
	return lo.Slice(items, 0, n)
}

var htmlTagRegex = regexp.MustCompile(`<[^>]+>`)

// StripHTML removes tag markup, decodes entities and trims the result.
func StripHTML(input string) string {
	if input == "" {
		return ""
	}
	cleaned := htmlTagRegex.ReplaceAllString(input, "")
	cleaned = html.UnescapeString(cleaned)
	return strings.TrimSpace(cleaned)
}
