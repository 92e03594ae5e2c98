// Package tables: functional options for the table builders.
package tables

// ProgressFunc receives (done, total) after each completed outer row of a
// long-running build. Implementations must be cheap; builders call them
// synchronously.
type ProgressFunc func(done, total int)

// Option configures a table builder.
type Option func(*options)

// options carries gathered builder configuration. Kept internal so the
// zero value stays the single source of default behavior.
type options struct {
	progress ProgressFunc
}

// WithProgress installs a per-row progress callback on the O(N·…) builders.
// A nil fn is ignored.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
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

// step reports row completion to the callback, if any.
func (o options) step(done, total int) {
	if o.progress != nil {
		o.progress(done, total)
	}
}
