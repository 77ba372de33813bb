// internal/entity/ecs.go
package entity

// ID identifies a node for the lifetime of a World.
type ID uint64

// World owns the live nodes in spawn order.
type World struct {
	NextID ID
	nodes  []*Node
	boss   *Node
}

func NewWorld() *World {
	return &World{NextID: 1}
}

// Add assigns an ID to n and stores it.
func (w *World) Add(n *Node) ID {
	n.ID = w.NextID
	w.NextID++
	w.nodes = append(w.nodes, n)
	if n.IsBoss() {
		w.boss = n
	}
	return n.ID
}

// Nodes returns the live nodes. The slice must not be modified by callers.
func (w *World) Nodes() []*Node {
	return w.nodes
}

// Boss returns the boss node, or nil when none is on the field.
func (w *World) Boss() *Node {
	return w.boss
}

func (w *World) Len() int {
	return len(w.nodes)
}

func (w *World) Update(deltaTime float64) {
	for _, n := range w.nodes {
		n.Update(deltaTime)
	}
}

// RemoveIf drops every node for which remove returns true, keeping the order of the rest.
// remove is called once per node.
func (w *World) RemoveIf(remove func(n *Node) bool) {
	kept := w.nodes[:0]
	for _, n := range w.nodes {
		if remove(n) {
			if n == w.boss {
				w.boss = nil
			}
			continue
		}
		kept = append(kept, n)
	}
	for i := len(kept); i < len(w.nodes); i++ {
		w.nodes[i] = nil
	}
	w.nodes = kept
}

func (w *World) Clear() {
	w.nodes = nil
	w.boss = nil
}
