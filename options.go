package brain

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
)

// Default values for Options
const (
	DefaultLearningRate float32 = 0.5
	DefaultGrowthRate   float32 = 0.5
)

// Options configures a Network. Zero values take their defaults.
type Options struct {
	LearningRate float32 // the rate at which the network learns
	GrowthRate   float32 // the fraction of the input size the hidden layer grows to once there are more than 5 inputs

	// Hidden gives the number of nodes on each hidden layer. If set, the topology
	// is fixed and the hidden layer no longer grows with the inputs.
	Hidden []int

	Seed   int64       // the seed for weight initialization; 0 picks a random seed
	Logger *log.Logger // receives growth and training messages; nil discards them

	// Extra holds options the network does not recognize. They are kept
	// verbatim and never interpreted.
	Extra map[string]any
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		LearningRate: DefaultLearningRate,
		GrowthRate:   DefaultGrowthRate,
	}
}

// withDefaults returns o with defaults filled in for zero values
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.LearningRate == 0 {
		o.LearningRate = def.LearningRate
	}
	if o.GrowthRate == 0 {
		o.GrowthRate = def.GrowthRate
	}
	return o
}

// validate checks the options that can make a network impossible to build
func (o Options) validate() error {
	for _, size := range o.Hidden {
		if size <= 0 {
			return &ConfigurationError{Option: "hidden", Details: "hidden layer sizes must be positive"}
		}
	}
	return nil
}

// OptionsFromMap builds Options from a loosely typed map, such as one decoded
// from JSON. The keys learningRate, growthRate, hidden and seed are recognized;
// everything else is stored in Extra unchanged.
func OptionsFromMap(m map[string]any) (Options, error) {
	o := DefaultOptions()
	for key, val := range m {
		switch key {
		case "learningRate":
			f, ok := toFloat(val)
			if !ok {
				return o, typeError(key, val)
			}
			o.LearningRate = float32(f)
		case "growthRate":
			f, ok := toFloat(val)
			if !ok {
				return o, typeError(key, val)
			}
			o.GrowthRate = float32(f)
		case "seed":
			f, ok := toFloat(val)
			if !ok {
				return o, typeError(key, val)
			}
			o.Seed = int64(f)
		case "hidden":
			sizes, err := toSizes(val)
			if err != nil {
				return o, errors.Wrap(err, "reading hidden layer sizes")
			}
			o.Hidden = sizes
		default:
			if o.Extra == nil {
				o.Extra = map[string]any{}
			}
			o.Extra[key] = val
		}
	}
	return o, o.validate()
}

func typeError(key string, val any) error {
	return &ConfigurationError{Option: key, Details: fmt.Sprintf("expected a number, got %T", val)}
}

func toFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	}
	return 0, false
}

func toSizes(val any) ([]int, error) {
	switch v := val.(type) {
	case []int:
		return append([]int(nil), v...), nil
	case []any:
		sizes := make([]int, len(v))
		for i, s := range v {
			f, ok := toFloat(s)
			if !ok {
				return nil, typeError("hidden", s)
			}
			sizes[i] = int(f)
		}
		return sizes, nil
	case []float64:
		sizes := make([]int, len(v))
		for i, f := range v {
			sizes[i] = int(f)
		}
		return sizes, nil
	}
	return nil, &ConfigurationError{Option: "hidden", Details: fmt.Sprintf("expected a list of sizes, got %T", val)}
}
