// internal/entity/node.go
package entity

import (
	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/utils"
)

// Node is an enemy moving across the field.
type Node struct {
	ID       ID
	position component.Position
	shape    component.NodeShape
	state    component.NodeState
	size     float64
	speed    float64
	hp       float64
	maxHP    float64
	dirX     float64
	dirY     float64
	rotation float64 // degrees
}

// NewNode creates an inactive node with the base health pool.
func NewNode(shape component.NodeShape, size, speed float64) *Node {
	return &Node{
		shape: shape,
		state: component.Inactive,
		size:  size,
		speed: speed,
		hp:    config.NodeBaseHP,
		maxHP: config.NodeBaseHP,
	}
}

func (n *Node) Position() component.Position { return n.position }
func (n *Node) Shape() component.NodeShape   { return n.shape }
func (n *Node) State() component.NodeState   { return n.state }
func (n *Node) Size() float64                { return n.size }
func (n *Node) Speed() float64               { return n.speed }
func (n *Node) Rotation() float64            { return n.rotation }
func (n *Node) HP() float64                  { return n.hp }
func (n *Node) MaxHP() float64               { return n.maxHP }
func (n *Node) IsBoss() bool                 { return n.shape == component.Boss }

// Direction returns the unit movement vector.
func (n *Node) Direction() (float64, float64) { return n.dirX, n.dirY }

// SetHP sets both the current and the maximum health.
func (n *Node) SetHP(hp float64) {
	n.hp = hp
	n.maxHP = hp
}

// TakeDamage subtracts damage; health never drops below zero and a node at zero is dead.
func (n *Node) TakeDamage(damage float64) {
	if damage <= 0 || n.state == component.Dead {
		return
	}
	n.hp -= damage
	if n.hp <= 0 {
		n.hp = 0
		n.state = component.Dead
	}
}

// Kill marks the node dead immediately.
func (n *Node) Kill() {
	n.hp = 0
	n.state = component.Dead
}

// Spawn places the node at (x, y) and activates it.
func (n *Node) Spawn(x, y float64) {
	n.position = component.Position{X: x, Y: y}
	n.state = component.Active
}

func (n *Node) SetDirection(dirX, dirY float64) {
	n.dirX = dirX
	n.dirY = dirY
}

// Update moves an active node along its direction and spins it.
func (n *Node) Update(deltaTime float64) {
	if n.state != component.Active {
		return
	}
	n.position.X += n.dirX * n.speed * deltaTime
	n.position.Y += n.dirY * n.speed * deltaTime
	n.rotation = utils.WrapDegrees(n.rotation + config.NodeRotationSpeed*deltaTime)
}
