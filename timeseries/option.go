package timeseries

import "github.com/sgostarter/i/l"

// Extrapolation selects what At returns for times outside the series.
type Extrapolation int

const (
	// ExtrapolateNone reports no value.
	ExtrapolateNone Extrapolation = iota
	// ExtrapolateClamp repeats the nearest boundary sample.
	ExtrapolateClamp
	// ExtrapolateCurve continues the boundary segment's cubic.
	ExtrapolateCurve
)

func (e Extrapolation) String() string {
	switch e {
	case ExtrapolateNone:
		return "none"
	case ExtrapolateClamp:
		return "clamp"
	case ExtrapolateCurve:
		return "curve"
	}

	return "unknown"
}

type Options struct {
	logger        l.Wrapper
	extrapolation Extrapolation
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	return opts
}

func WithLogger(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

func WithExtrapolation(e Extrapolation) Option {
	return func(o *Options) {
		o.extrapolation = e
	}
}
