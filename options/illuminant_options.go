package options

const (
	// DefaultDegenerateTolerance is the magnitude below which the daylight
	// coefficient denominator is treated as zero.
	DefaultDegenerateTolerance = 1e-10
)

type IlluminantOptions struct {
	Debug bool

	// DegenerateTolerance of zero or less means DefaultDegenerateTolerance.
	DegenerateTolerance float64

	// ExactZeroOnly rejects only a denominator that is exactly zero,
	// ignoring DegenerateTolerance.
	ExactZeroOnly bool
}

func NewIlluminantOptions(options *IlluminantOptions) *IlluminantOptions {

	opt := &IlluminantOptions{}
	opt.DegenerateTolerance = DefaultDegenerateTolerance
	if options != nil {
		opt.Debug = options.Debug
		opt.ExactZeroOnly = options.ExactZeroOnly
		if options.DegenerateTolerance > 0 {
			opt.DegenerateTolerance = options.DegenerateTolerance
		}
		if opt.ExactZeroOnly {
			opt.DegenerateTolerance = 0
		}
	}
	return opt
}
