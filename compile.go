package brain

// Func is a compiled forward pass. It maps inputs to the outputs of every
// output node by id.
type Func func(inputs map[string]float32) map[string]float32

type compiledNode struct {
	bias    float32
	weights []float32 // aligned with the nodes of the layer below
}

// Compile returns the forward pass of the network as a standalone function.
// The function holds its own copy of the weights, so later training does not
// affect it, and it is safe for concurrent use. Unlike Run it cannot add
// nodes: inputs the network had not seen when it was compiled are ignored.
func (n *Network) Compile() Func {
	return compile(n.State())
}

// CompileState returns the forward pass described by a serialized network as
// a standalone function, without building a Network
func CompileState(s *NetworkState) (Func, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return compile(s), nil
}

// compile builds the forward pass for a valid state
func compile(s *NetworkState) Func {
	inputs := sortedIDs(s.Layers[0].Nodes)
	layers := make([][]compiledNode, len(s.Layers)-1)
	below := inputs
	for i, ls := range s.Layers[1:] {
		ids := sortedIDs(ls.Nodes)
		nodes := make([]compiledNode, len(ids))
		for j, id := range ids {
			ns := ls.Nodes[id]
			weights := make([]float32, len(below))
			for k, bid := range below {
				weights[k] = ns.Weights[bid]
			}
			nodes[j] = compiledNode{bias: ns.Bias, weights: weights}
		}
		layers[i] = nodes
		below = ids
	}
	outputs := below

	return func(in map[string]float32) map[string]float32 {
		acts := make([]float32, len(inputs))
		for i, id := range inputs {
			acts[i] = in[id]
		}
		for _, layer := range layers {
			next := make([]float32, len(layer))
			for j, node := range layer {
				net := node.bias
				for k, w := range node.weights {
					net += w * acts[k]
				}
				next[j] = Logistic.Func(net)
			}
			acts = next
		}
		out := make(map[string]float32, len(outputs))
		for i, id := range outputs {
			out[id] = acts[i]
		}
		return out
	}
}
