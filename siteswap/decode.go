package siteswap

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrNotServiceURL indicates a URL that does not point at the service endpoint.
var ErrNotServiceURL = errors.New("not an animation service URL")

// ParseImageURL decodes the parameters of a service image URL. base is the
// endpoint the URL must start with; empty means DefaultBaseURL.
func ParseImageURL(raw, base string) (Params, error) {
	if base == "" {
		base = DefaultBaseURL
	}
	target, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotServiceURL, err)
	}
	endpoint, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !strings.EqualFold(target.Scheme, endpoint.Scheme) ||
		!strings.EqualFold(target.Host, endpoint.Host) ||
		strings.TrimSuffix(target.Path, "/") != strings.TrimSuffix(endpoint.Path, "/") {
		return nil, fmt.Errorf("%q: %w", raw, ErrNotServiceURL)
	}
	return ParseQuery(target.RawQuery)
}

// ParseQuery decodes a ';'-separated query string. '&' is accepted as a
// separator too.
func ParseQuery(query string) (Params, error) {
	fields := strings.FieldsFunc(query, func(r rune) bool {
		return r == ';' || r == '&'
	})

	params := make(Params, 0, len(fields))
	for _, field := range fields {
		rawKey, rawValue, _ := strings.Cut(field, "=")
		key, err := url.PathUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("decode key %q: %w", rawKey, err)
		}
		value, err := url.PathUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("decode value of %q: %w", key, err)
		}
		if key == "" {
			continue
		}
		params = params.With(key, inferValue(value), "")
	}
	return params, nil
}

func inferValue(raw string) Value {
	if b, err := strconv.ParseBool(raw); err == nil && (raw == "true" || raw == "false") {
		return Bool(b)
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil && formatNumber(n) == raw {
		return Number(n)
	}
	return String(raw)
}

// FormatBlock renders params as block text, one "key: value" line per
// parameter. The redirect flag is dropped and native hand grammar is written
// back as its shorthand name where one exists.
func FormatBlock(params Params) string {
	var sb strings.Builder
	for _, param := range params {
		if param.Key == KeyRedirect {
			continue
		}
		value := param.Value.String()
		if param.Key == KeyHands {
			if name, ok := HandsShorthand(value); ok {
				value = name
			}
		}
		sb.WriteString(param.Key)
		sb.WriteString(": ")
		sb.WriteString(quoteIfNeeded(value))
		sb.WriteString("\n")
	}
	return sb.String()
}

func quoteIfNeeded(value string) string {
	if value == "" || value != strings.TrimSpace(value) {
		return strconv.Quote(value)
	}
	if strings.ContainsAny(value[:1], "[]{}#&*!|>'\"%@`,?-") || strings.Contains(value, " #") || strings.Contains(value, ":") {
		return strconv.Quote(value)
	}
	return value
}
