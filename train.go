package brain

import "github.com/goki/mat32"

// Default values for TrainOptions
const (
	DefaultIterations     = 20000
	DefaultErrorThreshold = 0.005
	DefaultResolution     = 10
)

// Example is a single training example
type Example struct {
	Input  map[string]float32 `json:"input"`
	Output map[string]float32 `json:"output"`
}

// Progress reports the state of training after an epoch
type Progress struct {
	Error      float32 // the error of the last epoch
	Iterations int     // the number of epochs completed
}

// TrainResult is the outcome of training
type TrainResult struct {
	Error      float32 // the error of the last epoch
	Iterations int     // the number of epochs run
}

// TrainOptions configures Train. Zero values take their defaults.
type TrainOptions struct {
	Iterations     int     // the maximum number of epochs
	ErrorThreshold float32 // training stops once the epoch error is at or below this
	// OnProgress, if set, is called every Resolution epochs on the calling goroutine
	OnProgress func(Progress)
	Resolution int
}

func (o TrainOptions) withDefaults() TrainOptions {
	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}
	if o.ErrorThreshold <= 0 {
		o.ErrorThreshold = DefaultErrorThreshold
	}
	if o.Resolution <= 0 {
		o.Resolution = DefaultResolution
	}
	return o
}

// Train repeatedly trains the network on every example in data, in order,
// until the error of an epoch drops to the error threshold or the maximum
// number of epochs has run. The error of an epoch is the root-mean-square of
// the errors of its examples.
func (n *Network) Train(data []Example, opts TrainOptions) TrainResult {
	opts = opts.withDefaults()
	if len(data) == 0 {
		return TrainResult{}
	}

	res := TrainResult{Error: 1}
	for res.Iterations < opts.Iterations && res.Error > opts.ErrorThreshold {
		var sse float32
		for _, ex := range data {
			err := n.TrainItem(ex.Input, ex.Output)
			sse += err * err
		}
		res.Error = mat32.Sqrt(sse / float32(len(data)))
		res.Iterations++

		if opts.OnProgress != nil && res.Iterations%opts.Resolution == 0 {
			opts.OnProgress(Progress{Error: res.Error, Iterations: res.Iterations})
		}
	}
	n.logger.Printf("brain: trained %d epochs on %d examples, error %g", res.Iterations, len(data), res.Error)
	return res
}
