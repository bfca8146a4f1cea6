package output

// Option configures how values are formatted.
type Option func(*options)

type options struct {
	precision int
}

func newOptions(opts ...Option) *options {
	opt := options{precision: -1}
	for _, o := range opts {
		o(&opt)
	}
	return &opt
}

// WithPrecision formats values with n significant digits. A negative n
// selects the shortest representation that reads back to the same value.
func WithPrecision(n int) Option {
	return func(o *options) {
		o.precision = n
	}
}
