package duaqos

// Option adjusts a profile produced by a catalog getter.
//
// Only the queue depth can be changed. Reliability and durability are fixed
// by the class a getter belongs to.
//
// Example:
//
//	scans := reliable.ScanQoS()                       // KeepLast(5)
//	deep := reliable.ScanQoS(duaqos.WithDepth(50))    // KeepLast(50)
type Option func(*profileOptions)

// profileOptions holds the caller's overrides for one getter call.
type profileOptions struct {
	depth uint
}

// WithDepth overrides the category's default queue depth.
// The value is not checked: 0 is handed to the middleware as is.
func WithDepth(depth uint) Option {
	return func(o *profileOptions) {
		o.depth = depth
	}
}

func applyOptions(defaultDepth uint, opts []Option) profileOptions {
	o := profileOptions{depth: defaultDepth}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
