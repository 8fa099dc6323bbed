package brain

// Node contains the data for a unit in the neural network.
// Input nodes only use ID and Output; their output is set directly from the inputs.
type Node struct {
	ID      string             // the id of the node, unique within its layer
	Bias    float32            // the bias of the node
	Weights map[string]float32 // the weights from each node on the layer below, by id
	Output  float32            // the activation value of the node from the last forward pass
	Error   float32            // the error of the node from the last backward pass
	Delta   float32            // the error times the derivative of the activation function
}

// newNode creates a node on the given layer, with a random weight for every
// node currently on the layer below it and a random bias.
// Nodes on the input layer get neither.
func newNode(l *Layer, id string) *Node {
	n := &Node{ID: id}
	prev := l.Prev()
	if prev == nil {
		return n
	}
	rng := l.network.rng
	n.Weights = make(map[string]float32, prev.Size())
	for _, pid := range prev.ids {
		n.Weights[pid] = RandomWeight(rng)
	}
	n.Bias = RandomWeight(rng)
	return n
}

// addIncoming adds a random weight for the new node with the given id on the layer below
func (n *Node) addIncoming(l *Layer, id string) {
	n.Weights[id] = RandomWeight(l.network.rng)
}

// calcOutput computes the activation value of the node from the outputs of the layer below
func (n *Node) calcOutput(prev *Layer) {
	net := n.Bias
	for _, id := range prev.ids {
		net += n.Weights[id] * prev.nodes[id].Output
	}
	n.Output = Logistic.Func(net)
}

// calcOutputError computes the error of an output node against its target.
// A missing target counts as 0.
func (n *Node) calcOutputError(targets map[string]float32) {
	n.Error = targets[n.ID] - n.Output
	n.Delta = n.Error * Logistic.Derivative(n.Output)
}

// calcHiddenError computes the error of a hidden node from the deltas of the
// nodes on the layer above it, weighted by their weights from this node
func (n *Node) calcHiddenError(next *Layer) {
	var err float32
	for _, id := range next.ids {
		above := next.nodes[id]
		err += above.Delta * above.Weights[n.ID]
	}
	n.Error = err
	n.Delta = n.Error * Logistic.Derivative(n.Output)
}

// adjustWeights applies the current delta to the weights and bias of the node,
// using the outputs of the layer below from the last forward pass
func (n *Node) adjustWeights(prev *Layer, rate float32) {
	for _, id := range prev.ids {
		n.Weights[id] += rate * n.Delta * prev.nodes[id].Output
	}
	n.Bias += rate * n.Delta
}
