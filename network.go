// Package brain implements feed-forward neural networks that grow with their data
// and learn with backpropagation.
//
// Inputs and targets are maps keyed by arbitrary string ids. Nodes are created
// the first time an id is seen, so a network picks up new inputs and outputs
// over its lifetime without resetting what it has already learned. Unless a
// topology is fixed with Options.Hidden, the hidden layer grows along with the
// number of inputs.
package brain

import (
	"io"
	"log"
	"math/rand"
	"strconv"
	"time"
)

// Network is a neural network
type Network struct {
	Layers  []*Layer // the layers of the network, input first and output last
	Options Options  // the options of the network, with defaults filled in

	hidden int        // the index of the hidden layer that grows with the inputs, or -1
	rng    *rand.Rand // the source of initial weights
	logger *log.Logger
}

// Output is the result of running a network
type Output struct {
	// Values holds the output of every output node by id
	Values map[string]float32
	// Seq holds the outputs in order when the output ids are exactly "0".."n-1", and is nil otherwise
	Seq []float32
}

// IsSequence returns whether the outputs are index keyed and available in Seq
func (o Output) IsSequence() bool {
	return o.Seq != nil
}

// NewNetwork creates and returns a new network with the given options.
// The input and output layers start empty and are filled in from the data the
// network is run and trained on.
func NewNetwork(opts Options) (*Network, error) {
	n := newNetwork(opts)
	if err := n.Options.validate(); err != nil {
		return nil, err
	}
	n.createLayers(n.Options.Hidden)
	return n, nil
}

func newNetwork(opts Options) *Network {
	opts = opts.withDefaults()
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Network{
		Options: opts,
		hidden:  -1,
		rng:     rand.New(rand.NewSource(seed)),
		logger:  logger,
	}
}

// createLayers builds an input layer, the given hidden layers and an output layer.
// With no hidden sizes there is a single hidden layer that grows with the inputs.
func (n *Network) createLayers(hidden []int) {
	numLayers := 3
	if len(hidden) > 0 {
		numLayers = len(hidden) + 2
	}
	n.Layers = make([]*Layer, numLayers)
	for i := range n.Layers {
		n.Layers[i] = newLayer(n, i)
	}
	// layers are filled bottom up, so each new node only needs weights from below
	for i, size := range hidden {
		layer := n.Layers[i+1]
		for j := 0; j < size; j++ {
			layer.createNode(strconv.Itoa(j))
		}
	}
	if len(hidden) == 0 {
		n.hidden = 1
	} else {
		n.hidden = -1
	}
}

// InputLayer returns the first layer of the network
func (n *Network) InputLayer() *Layer {
	return n.Layers[0]
}

// OutputLayer returns the last layer of the network
func (n *Network) OutputLayer() *Layer {
	return n.Layers[len(n.Layers)-1]
}

// HiddenLayer returns the hidden layer that grows with the inputs, or nil if
// the topology is fixed
func (n *Network) HiddenLayer() *Layer {
	if n.hidden < 0 {
		return nil
	}
	return n.Layers[n.hidden]
}

// Run computes the outputs of the network for the given inputs.
// Inputs the network has not seen before get new input nodes; inputs it has
// seen before but are missing here count as 0.
func (n *Network) Run(inputs map[string]float32) Output {
	n.forward(inputs)
	return n.formatOutput()
}

// forward computes the forward propagation pass
func (n *Network) forward(inputs map[string]float32) {
	in := n.InputLayer()
	in.createNodes(inputs)
	// the hidden layer follows every input seen so far, not just this record
	if h := n.HiddenLayer(); h != nil {
		if added := h.growLayer(in.Size()); added > 0 {
			n.logger.Printf("brain: grew hidden layer by %d to %d nodes for %d inputs", added, h.Size(), in.Size())
		}
	}
	in.setOutputs(inputs)
	for _, l := range n.Layers[1:] {
		l.calcOutputs()
	}
}

// formatOutput returns the outputs of the output layer, as a sequence if they are index keyed
func (n *Network) formatOutput() Output {
	out := n.OutputLayer()
	values := out.Outputs()
	seq, _ := sequence(out.ids, values)
	return Output{Values: values, Seq: seq}
}

// TrainItem trains the network on a single example and returns the
// root-mean-square error of the output layer before the weights were adjusted.
// Targets the network has not seen before get new output nodes; output nodes
// without a target are trained toward 0.
func (n *Network) TrainItem(inputs, targets map[string]float32) float32 {
	out := n.OutputLayer()
	out.createNodes(targets)

	n.forward(inputs)

	out.calcOutputErrors(targets)
	for i := len(n.Layers) - 2; i > 0; i-- {
		n.Layers[i].calcHiddenErrors()
	}

	for _, l := range n.Layers[1:] {
		l.adjustWeights()
	}
	return out.Error()
}
