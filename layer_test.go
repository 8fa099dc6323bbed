package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNodeWiring(t *testing.T) {
	n, err := NewNetwork(Options{Hidden: []int{2}, Seed: 1})
	require.NoError(t, err)
	in, hidden, out := n.Layers[0], n.Layers[1], n.Layers[2]

	out.createNode("z")
	assert.Len(t, out.Node("z").Weights, 2)

	in.createNodes(map[string]float32{"b": 1, "a": 1})
	assert.Equal(t, []string{"a", "b"}, in.IDs())
	hidden.Each(func(node *Node) { assert.Len(t, node.Weights, 2) })

	// existing nodes are left alone
	w := hidden.Node("0").Weights["a"]
	in.createNodes(map[string]float32{"a": 5, "c": 1})
	assert.Equal(t, w, hidden.Node("0").Weights["a"])
	assert.Equal(t, 3, in.Size())

	hidden.createNode("2")
	assert.Len(t, out.Node("z").Weights, 3)
	assert.Len(t, hidden.Node("2").Weights, 3)
	checkWiring(t, n)

	for _, l := range n.Layers[1:] {
		l.Each(func(node *Node) {
			assert.GreaterOrEqual(t, node.Bias, float32(-weightRange))
			assert.Less(t, node.Bias, float32(weightRange))
			for _, w := range node.Weights {
				assert.GreaterOrEqual(t, w, float32(-weightRange))
				assert.Less(t, w, float32(weightRange))
			}
		})
	}
}

func TestLayerReduce(t *testing.T) {
	n, err := NewNetwork(Options{Hidden: []int{4}})
	require.NoError(t, err)
	l := n.Layers[1]
	for i, id := range l.IDs() {
		l.Node(id).Output = float32(i)
		l.Node(id).Error = 2
	}
	sum := l.Reduce(func(acc float32, node *Node) float32 { return acc + node.Output }, 0)
	assert.Equal(t, float32(6), sum)
	assert.Equal(t, map[string]float32{"0": 0, "1": 1, "2": 2, "3": 3}, l.Outputs())
	assert.Equal(t, float32(2), l.Error())
	assert.Zero(t, n.InputLayer().Error())
	assert.Nil(t, l.Node("9"))
}
