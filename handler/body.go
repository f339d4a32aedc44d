package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var delimiter = strings.Repeat("=", 50)

// decodeObject reads exactly one JSON object from r. Numbers are kept as
// json.Number so they echo back without float rounding.
func decodeObject(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty body")
		}
		return nil, errors.Wrap(err, "invalid JSON")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid JSON: unexpected data after top-level value")
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errors.Errorf("body must be a JSON object, got %s", jsonKind(v))
	}
	return obj, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// prettyJSON renders body with two-space indentation and no trailing newline.
// Non-ASCII characters are written as \u escapes.
func prettyJSON(body map[string]any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(body); err != nil {
		return "", errors.Wrap(err, "failed to serialize body")
	}
	return asciiEscape(strings.TrimSuffix(buf.String(), "\n")), nil
}

// asciiEscape replaces every non-ASCII rune with its \uXXXX form, using a
// surrogate pair outside the BMP. It only runs on encoder output, where such
// runes can only occur inside string literals.
func asciiEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case r > 0xFFFF:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&b, "\\u%04x\\u%04x", r1, r2)
		default:
			fmt.Fprintf(&b, "\\u%04x", r)
		}
	}
	return b.String()
}

func formatBlock(pretty string) string {
	return fmt.Sprintf("\n%s\nPOST %s - Request Body:\n%s\n%s\n\n", delimiter, Route, pretty, delimiter)
}
