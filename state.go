package brain

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"

	"github.com/pkg/errors"
)

// NetworkState is the serialized form of a network: its topology and weights.
// Learning and growth rates are not part of it.
type NetworkState struct {
	Layers []LayerState `json:"layers"`
}

// LayerState is the serialized form of a layer
type LayerState struct {
	Nodes map[string]NodeState `json:"nodes"`
}

// NodeState is the serialized form of a node. Input nodes have nil Weights
// and encode as an empty object.
type NodeState struct {
	Weights map[string]float32 `json:"weights"`
	Bias    float32            `json:"bias"`
}

// MarshalJSON encodes input nodes as {} and every other node as {"weights":...,"bias":...}
func (s NodeState) MarshalJSON() ([]byte, error) {
	if s.Weights == nil {
		return []byte("{}"), nil
	}
	type node NodeState
	return json.Marshal(node(s))
}

// State returns a copy of the topology and weights of the network
func (n *Network) State() *NetworkState {
	s := &NetworkState{Layers: make([]LayerState, len(n.Layers))}
	for i, l := range n.Layers {
		nodes := make(map[string]NodeState, l.Size())
		l.Each(func(node *Node) {
			if i == 0 {
				nodes[node.ID] = NodeState{}
				return
			}
			nodes[node.ID] = NodeState{Weights: maps.Clone(node.Weights), Bias: node.Bias}
		})
		s.Layers[i] = LayerState{Nodes: nodes}
	}
	return s
}

// Validate checks that s describes a network that can be restored: at least
// three layers, every layer with nodes, no weights on input nodes, and every
// other node with exactly one weight per node on the layer below.
func (s *NetworkState) Validate() error {
	if s == nil || s.Layers == nil {
		return &MalformedStateError{Layer: -1, Details: "missing layers"}
	}
	if len(s.Layers) < 3 {
		return &MalformedStateError{Layer: -1, Details: fmt.Sprintf("a network needs at least 3 layers, got %d", len(s.Layers))}
	}
	for i, l := range s.Layers {
		if l.Nodes == nil {
			return &MalformedStateError{Layer: i, Details: "missing nodes"}
		}
		for _, id := range sortedIDs(l.Nodes) {
			weights := l.Nodes[id].Weights
			if i == 0 {
				if len(weights) > 0 {
					return &MalformedStateError{Layer: i, Node: id, Details: "input nodes have no weights"}
				}
				continue
			}
			below := s.Layers[i-1].Nodes
			if len(weights) != len(below) {
				return &MalformedStateError{Layer: i, Node: id, Details: fmt.Sprintf("%d weights for %d nodes on the layer below", len(weights), len(below))}
			}
			for wid := range weights {
				if _, ok := below[wid]; !ok {
					return &MalformedStateError{Layer: i, Node: id, Details: fmt.Sprintf("weight from unknown node %q", wid)}
				}
			}
		}
	}
	return nil
}

// Restore replaces the layers of the network with the ones described by s.
// The options of the network are kept. A restored network has a fixed
// topology: its hidden layers no longer grow with the inputs.
func (n *Network) Restore(s *NetworkState) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if n.rng == nil {
		*n = *newNetwork(n.Options)
	}
	n.Layers = make([]*Layer, len(s.Layers))
	for i, ls := range s.Layers {
		l := newLayer(n, i)
		l.ids = sortedIDs(ls.Nodes)
		for _, id := range l.ids {
			node := &Node{ID: id}
			if i > 0 {
				node.Weights = make(map[string]float32, len(ls.Nodes[id].Weights))
				maps.Copy(node.Weights, ls.Nodes[id].Weights)
				node.Bias = ls.Nodes[id].Bias
			}
			l.nodes[id] = node
		}
		n.Layers[i] = l
	}
	n.hidden = -1
	return nil
}

// FromState creates a network with the given options from a serialized state.
// Options.Hidden is ignored; the topology comes from s.
func FromState(s *NetworkState, opts Options) (*Network, error) {
	opts.Hidden = nil
	n := newNetwork(opts)
	if err := n.Restore(s); err != nil {
		return nil, err
	}
	return n, nil
}

// MarshalJSON encodes the state of the network
func (n *Network) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.State())
}

// UnmarshalJSON restores the network from an encoded state
func (n *Network) UnmarshalJSON(data []byte) error {
	var s NetworkState
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "decoding network state")
	}
	return n.Restore(&s)
}

// Save writes the state of the network to w as JSON
func (n *Network) Save(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(n.State()); err != nil {
		return errors.Wrap(err, "writing network state")
	}
	return nil
}

// Load reads a network state written by Save from r and creates a network from
// it with the given options
func Load(r io.Reader, opts Options) (*Network, error) {
	var s NetworkState
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(err, "reading network state")
	}
	return FromState(&s, opts)
}

// String returns the state of the network as JSON
func (n *Network) String() string {
	b, err := n.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("brain.Network(%v)", err)
	}
	return string(b)
}
