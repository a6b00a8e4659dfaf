// Package payload gives typed, never-failing access to loosely shaped webhook bodies.
package payload

import (
	"bytes"
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by Parse when the body is not a JSON document.
var ErrInvalidJSON = errors.New("payload is not valid JSON")

// Payload wraps a raw webhook body. Lookups use dotted paths such as
// "pull_request.user.login" and treat missing keys, nulls, non-strings and
// empty strings alike: as absent.
type Payload struct {
	root gjson.Result
}

// Parse validates body and returns a Payload over it. An empty body reads as {}.
func Parse(body []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		trimmed = []byte("{}")
	}

	if !gjson.ValidBytes(trimmed) {
		return Payload{}, ErrInvalidJSON
	}

	return Payload{root: gjson.ParseBytes(trimmed)}, nil
}

// OptionalString returns the string at path and whether it was present.
func (p Payload) OptionalString(path string) (string, bool) {
	res := p.root.Get(path)
	if res.Type != gjson.String || res.Str == "" {
		return "", false
	}

	return res.Str, true
}

// String returns the string at path, or def when absent.
func (p Payload) String(path, def string) string {
	if s, ok := p.OptionalString(path); ok {
		return s
	}

	return def
}

// Bool reports whether the value at path is the JSON literal true.
func (p Payload) Bool(path string) bool {
	return p.root.Get(path).Type == gjson.True
}
