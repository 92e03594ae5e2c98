// Package store: functional options for the artifact writers.
package store

// Option configures a writer call.
type Option func(*options)

// options carries gathered writer configuration.
type options struct {
	snappy bool
}

// WithSnappy enables Snappy stream compression. The writer appends ".sz"
// to the target file name; readers recognize the suffix on their own.
func WithSnappy() Option {
	return func(o *options) {
		o.snappy = true
	}
}

// gatherOptions folds the option list over the defaults.
func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
