package brain

import (
	"strconv"

	"github.com/goki/mat32"
)

// Layer represents one layer (input, hidden, or output) of a neural network.
// Nodes are keyed by id and always visited in node id order.
type Layer struct {
	Index int // the index of this layer in the neural network

	network *Network
	nodes   map[string]*Node
	ids     []string // the ids of nodes, in node id order
}

func newLayer(n *Network, index int) *Layer {
	return &Layer{
		Index:   index,
		network: n,
		nodes:   map[string]*Node{},
	}
}

// Prev returns the layer below this one, or nil for the input layer
func (l *Layer) Prev() *Layer {
	if l.Index == 0 {
		return nil
	}
	return l.network.Layers[l.Index-1]
}

// Next returns the layer above this one, or nil for the output layer
func (l *Layer) Next() *Layer {
	if l.Index+1 >= len(l.network.Layers) {
		return nil
	}
	return l.network.Layers[l.Index+1]
}

// Size returns the number of nodes on the layer
func (l *Layer) Size() int {
	return len(l.ids)
}

// IDs returns the ids of the nodes on the layer in order
func (l *Layer) IDs() []string {
	return append([]string(nil), l.ids...)
}

// Node returns the node with the given id, or nil if there is none
func (l *Layer) Node(id string) *Node {
	return l.nodes[id]
}

// Each calls fn for every node on the layer in order
func (l *Layer) Each(fn func(n *Node)) {
	for _, id := range l.ids {
		fn(l.nodes[id])
	}
}

// Map returns the result of fn for every node on the layer, keyed by node id
func (l *Layer) Map(fn func(n *Node) float32) map[string]float32 {
	values := make(map[string]float32, len(l.ids))
	for _, id := range l.ids {
		values[id] = fn(l.nodes[id])
	}
	return values
}

// Reduce folds fn over the nodes of the layer in order, starting from init
func (l *Layer) Reduce(fn func(acc float32, n *Node) float32, init float32) float32 {
	acc := init
	for _, id := range l.ids {
		acc = fn(acc, l.nodes[id])
	}
	return acc
}

// Outputs returns the output of every node on the layer, keyed by node id.
// Outputs are kept on the nodes as state for backpropagation.
func (l *Layer) Outputs() map[string]float32 {
	return l.Map(func(n *Node) float32 { return n.Output })
}

// Error returns the root-mean-square error of the nodes on the layer
func (l *Layer) Error() float32 {
	if len(l.ids) == 0 {
		return 0
	}
	sum := l.Reduce(func(sum float32, n *Node) float32 { return sum + n.Error*n.Error }, 0)
	return mat32.Sqrt(sum / float32(len(l.ids)))
}

// setOutputs sets the output of every node directly from values; missing ids get 0
func (l *Layer) setOutputs(values map[string]float32) {
	l.Each(func(n *Node) { n.Output = values[n.ID] })
}

// createNode adds a node with the given id to the layer and wires it up:
// it gets a weight from every node on the layer below, and every node on the
// layer above gets a weight from it.
func (l *Layer) createNode(id string) *Node {
	n := newNode(l, id)
	l.nodes[id] = n
	l.ids = insertID(l.ids, id)

	if next := l.Next(); next != nil {
		next.Each(func(out *Node) { out.addIncoming(next, id) })
	}
	return n
}

// createNodes creates a node for every key of record that does not have one yet.
// Existing nodes are left untouched.
func (l *Layer) createNodes(record map[string]float32) {
	for _, id := range sortedIDs(record) {
		if _, ok := l.nodes[id]; !ok {
			l.createNode(id)
		}
	}
}

// growLayer adds nodes with sequential integer ids until the layer matches
// the given reference size, scaled by the growth rate of the network once the
// reference size is above 5. It never removes nodes and returns the number added.
func (l *Layer) growLayer(refSize int) int {
	target := float32(refSize)
	if refSize > 5 {
		target *= l.network.Options.GrowthRate
	}
	added := 0
	for i := l.Size(); float32(i) < target; i++ {
		l.createNode(strconv.Itoa(i))
		added++
	}
	return added
}

// calcOutputs computes the outputs of all nodes from the layer below
func (l *Layer) calcOutputs() {
	prev := l.Prev()
	l.Each(func(n *Node) { n.calcOutput(prev) })
}

// calcOutputErrors computes the errors of all nodes against targets
func (l *Layer) calcOutputErrors(targets map[string]float32) {
	l.Each(func(n *Node) { n.calcOutputError(targets) })
}

// calcHiddenErrors computes the errors of all nodes from the layer above
func (l *Layer) calcHiddenErrors() {
	next := l.Next()
	l.Each(func(n *Node) { n.calcHiddenError(next) })
}

// adjustWeights applies the deltas of all nodes to their weights
func (l *Layer) adjustWeights() {
	prev := l.Prev()
	rate := l.network.Options.LearningRate
	l.Each(func(n *Node) { n.adjustWeights(prev, rate) })
}
