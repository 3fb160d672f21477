// Package urlbuild composes request URLs for the Cart API.
//
// Path segments are escaped one at a time so identifiers that look like
// paths (domains, handles) travel as data. Query parameters keep their
// insertion order and absent values never reach the query string.
package urlbuild

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Param is a single query parameter. A Param without a value is absent.
type Param struct {
	Key     string
	Value   any
	present bool
}

// Present reports whether the parameter will be emitted.
func (p Param) Present() bool { return p.present }

// Params is an ordered list of query parameters.
type Params []Param

// Set appends a present parameter. An empty string is still present.
func (p Params) Set(key string, value any) Params {
	return append(p, Param{Key: key, Value: value, present: true})
}

// Opt appends key with *v, or an absent entry when v is nil.
func Opt[T any](p Params, key string, v *T) Params {
	if v == nil {
		return append(p, Param{Key: key})
	}
	return p.Set(key, *v)
}

// List appends key with the comma-joined values, or an absent entry when
// values is nil.
func List(p Params, key string, values []string) Params {
	if values == nil {
		return append(p, Param{Key: key})
	}
	return p.Set(key, values)
}

// Encode renders the present parameters as a query string without the
// leading '?'.
func (p Params) Encode() string {
	var b strings.Builder
	for _, param := range p {
		if !param.present {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(param.Key))
		b.WriteByte('=')
		b.WriteString(formatValue(param.Value))
	}
	return b.String()
}

// Build joins baseURL with the escaped segments and appends the query.
func Build(baseURL string, segments []string, query Params) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	for _, seg := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}
	if qs := query.Encode(); qs != "" {
		b.WriteByte('?')
		b.WriteString(qs)
	}
	return b.String()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return escape(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return escape(strconv.FormatFloat(x, 'f', -1, 64))
	case []string:
		parts := make([]string, len(x))
		for i, s := range x {
			parts[i] = escape(s)
		}
		return strings.Join(parts, ",")
	case fmt.Stringer:
		return escape(x.String())
	default:
		return escape(fmt.Sprint(x))
	}
}

// escape percent-encodes s for use in a query component; spaces become %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
