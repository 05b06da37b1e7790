package verifying

type option struct {
	// seed of the random value source; nil for sequential values
	seed *int64
	// whether to verify that bits outside the range are untouched
	nonInterference bool
	// stop after this many faults; 0 for no limit
	maxFaults int
}

func applyOpts(options ...OptionFunc) *option {
	opts := &option{}
	for _, opt := range options {
		opt(opts)
	}
	return opts
}

type OptionFunc func(*option)

// WithRandomValues verifies pseudo-random values drawn from seed instead of
// the sequence 0, 1, 2, ...
func WithRandomValues(seed int64) OptionFunc {
	return func(o *option) {
		o.seed = &seed
	}
}

// WithNonInterference also verifies that every insert leaves the bits
// outside its range untouched.
func WithNonInterference() OptionFunc {
	return func(o *option) {
		o.nonInterference = true
	}
}

// WithMaxFaults stops the verification once n faults were found.
func WithMaxFaults(n int) OptionFunc {
	return func(o *option) {
		o.maxFaults = n
	}
}
