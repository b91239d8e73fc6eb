// query/query.go

/* Package query extracts the query component of a URL-like string and decodes it into an
ordered parameter map. Parsing never fails: malformed or empty input yields an empty map. */

package query

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/deploymenttheory/go-api-http-params/logger"
	"github.com/deploymenttheory/go-api-http-params/params"
)

const source = "query"

// Parse returns the parameters in the query component of input.
// Pairs without '=' are discarded and later duplicate keys overwrite earlier ones.
// Blank values such as "a=" are kept as {"a": ""}, unlike url parsers that drop them
// by default; use WithKeepBlankValues(false) to drop them.
func Parse(input string) *params.Map {
	return ParseWithOptions(input)
}

// ParseWithOptions is Parse with behaviour adjusted by opts.
func ParseWithOptions(input string, opts ...Option) *params.Map {
	return parseQueryString(Extract(input), newOptions(opts))
}

// ParseQueryString decodes a bare query component such as "a=1&b=2" without
// looking for '?' or '#'.
func ParseQueryString(raw string, opts ...Option) *params.Map {
	return parseQueryString(raw, newOptions(opts))
}

// ParseValues applies the Parse rules but keeps every occurrence of a repeated key.
func ParseValues(input string, opts ...Option) url.Values {
	o := newOptions(opts)
	values := url.Values{}
	eachPair(Extract(input), o, func(key, value string) bool {
		values.Add(key, value)
		return o.maxParams == 0 || countValues(values) < o.maxParams
	})
	return values
}

// Extract returns the raw query component of input: the text after the first '?'
// and before the first '#'. The fragment is removed before the '?' is searched for,
// so a '?' inside a fragment never starts a query.
func Extract(input string) string {
	if i := strings.IndexByte(input, '#'); i >= 0 {
		input = input[:i]
	}
	i := strings.IndexByte(input, '?')
	if i < 0 {
		return ""
	}
	return input[i+1:]
}

func parseQueryString(raw string, o *options) *params.Map {
	result := params.New()
	eachPair(raw, o, func(key, value string) bool {
		result.Set(key, value)
		return o.maxParams == 0 || result.Len() < o.maxParams
	})
	logger.LogParseComplete(o.log, source, result.Len())
	return result
}

// eachPair walks the '&' separated pairs of raw and calls fn with each decoded
// key and value that survives the filtering rules. fn returns false to stop.
func eachPair(raw string, o *options, fn func(key, value string) bool) {
	if raw == "" {
		return
	}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, found := strings.Cut(pair, "=")
		if !found {
			logger.LogDiscardedToken(o.log, source, pair, "missing_separator")
			continue
		}
		key, value := unescape(rawKey), unescape(rawValue)
		if value == "" && !o.keepBlankValues {
			logger.LogDiscardedToken(o.log, source, pair, "blank_value")
			continue
		}
		if !fn(key, value) {
			return
		}
	}
}

// unescape decodes %XX escapes and '+'. When a token holds a malformed escape, the
// well-formed escapes around it are still decoded and the malformed ones are kept as
// written. Bytes that do not form valid UTF-8 become U+FFFD.
func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		decoded = unescapeEach(strings.ReplaceAll(s, "+", " "))
	}
	return toValidUTF8(decoded)
}

func unescapeEach(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+3 <= len(s) {
			if v, err := url.PathUnescape(s[i : i+3]); err == nil {
				b.WriteString(v)
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// toValidUTF8 replaces each invalid byte with U+FFFD.
func toValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(r)
	}
	return b.String()
}

func countValues(values url.Values) int {
	n := 0
	for _, v := range values {
		n += len(v)
	}
	return n
}
