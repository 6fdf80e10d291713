package stripe

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Value is a single request parameter value.
//
// The set of implementations is closed: String, Int, Float, Bool, Time,
// Params and Array. Each variant knows how to flatten itself into
// form-encoded key/value pairs.
type Value interface {
	appendPairs(pairs []formPair, path []string) []formPair
}

// String is a string parameter value.
type String string

// Int is an integer parameter value.
type Int int64

// Float is a floating point parameter value.
type Float float64

// Bool is a boolean parameter value.
type Bool bool

// Time is a date parameter value. It is sent as seconds since the Unix epoch.
type Time time.Time

// Params is a nested parameter mapping.
type Params map[string]Value

// Array is an ordered list of parameter values. Element indices become
// explicit path segments when encoded.
type Array []Value

type formPair struct {
	key   string
	value string
}

func (s String) appendPairs(pairs []formPair, path []string) []formPair {
	return append(pairs, formPair{key: formKey(path), value: string(s)})
}

func (i Int) appendPairs(pairs []formPair, path []string) []formPair {
	return append(pairs, formPair{key: formKey(path), value: strconv.FormatInt(int64(i), 10)})
}

func (f Float) appendPairs(pairs []formPair, path []string) []formPair {
	return append(pairs, formPair{key: formKey(path), value: strconv.FormatFloat(float64(f), 'f', -1, 64)})
}

func (b Bool) appendPairs(pairs []formPair, path []string) []formPair {
	return append(pairs, formPair{key: formKey(path), value: strconv.FormatBool(bool(b))})
}

func (t Time) appendPairs(pairs []formPair, path []string) []formPair {
	return append(pairs, formPair{key: formKey(path), value: strconv.FormatInt(time.Time(t).Unix(), 10)})
}

// An empty nested mapping is sent as "key=", which the API reads as "unset".
func (p Params) appendPairs(pairs []formPair, path []string) []formPair {
	if len(p) == 0 {
		return append(pairs, formPair{key: formKey(path)})
	}

	for _, key := range p.sortedKeys() {
		value := p[key]
		if value == nil {
			continue
		}

		pairs = value.appendPairs(pairs, append(path, key))
	}

	return pairs
}

func (a Array) appendPairs(pairs []formPair, path []string) []formPair {
	if len(a) == 0 {
		return append(pairs, formPair{key: formKey(path)})
	}

	for i, value := range a {
		if value == nil {
			continue
		}

		pairs = value.appendPairs(pairs, append(path, strconv.Itoa(i)))
	}

	return pairs
}

// Encode serializes the parameters as an application/x-www-form-urlencoded
// string using bracketed key paths, e.g. items[0][price]=gold.
// Keys are emitted in sorted order at every nesting level.
func (p Params) Encode() string {
	return Encode(p)
}

// Merge returns a new mapping holding the entries of p overlaid with the
// entries of other. Neither input is modified.
func (p Params) Merge(other Params) Params {
	merged := make(Params, len(p)+len(other))

	for key, value := range p {
		merged[key] = value
	}

	for key, value := range other {
		merged[key] = value
	}

	return merged
}

func (p Params) sortedKeys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Encode serializes a parameter mapping into a form-encoded string.
func Encode(params Params) string {
	if len(params) == 0 {
		return ""
	}

	var pairs []formPair

	for _, key := range params.sortedKeys() {
		value := params[key]
		if value == nil {
			continue
		}

		pairs = value.appendPairs(pairs, []string{key})
	}

	var builder strings.Builder

	for i, pair := range pairs {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(pair.key)
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.value))
	}

	return builder.String()
}

// formKey renders a path as k1[k2][k3], escaping every segment on its own so
// the brackets stay literal.
func formKey(path []string) string {
	var builder strings.Builder

	for i, segment := range path {
		if i == 0 {
			builder.WriteString(url.QueryEscape(segment))

			continue
		}

		builder.WriteByte('[')
		builder.WriteString(url.QueryEscape(segment))
		builder.WriteByte(']')
	}

	return builder.String()
}

// Strings builds an Array of String values.
func Strings(values ...string) Array {
	list := make(Array, 0, len(values))
	for _, value := range values {
		list = append(list, String(value))
	}

	return list
}

// Expand builds the value of the expand parameter for the given field paths.
func Expand(fields ...string) Array {
	return Strings(fields...)
}

// Ptr returns a pointer to v. Typed parameter structs use pointers to tell
// an unset field from its zero value.
func Ptr[T any](v T) *T {
	return &v
}
