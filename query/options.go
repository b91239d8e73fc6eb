// query/options.go
package query

import "github.com/deploymenttheory/go-api-http-params/logger"

// Option adjusts how a query string is parsed.
type Option func(*options)

type options struct {
	keepBlankValues bool
	maxParams       int
	log             logger.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		keepBlankValues: true,
		log:             logger.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithKeepBlankValues controls whether "a=" yields {"a": ""} (true, the default) or is dropped.
func WithKeepBlankValues(keep bool) Option {
	return func(o *options) {
		o.keepBlankValues = keep
	}
}

// WithMaxParams stops parsing once n parameters have been collected. Zero or a negative n means unlimited.
func WithMaxParams(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxParams = n
	}
}

// WithLogger traces discarded pairs at debug level.
func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}
