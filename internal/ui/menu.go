// internal/ui/menu.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"node-zero/internal/config"
)

// Menu groups widgets and forwards updates and drawing to the active ones.
type Menu struct {
	children []Widget
	active   bool
}

func NewMenu(children ...Widget) *Menu {
	return &Menu{children: children, active: true}
}

func (m *Menu) Add(w Widget) {
	if w != nil {
		m.children = append(m.children, w)
	}
}

func (m *Menu) Children() []Widget { return m.children }

func (m *Menu) Update(in Input) {
	if !m.active {
		return
	}
	for _, w := range m.children {
		if w.IsActive() {
			w.Update(in)
		}
	}
}

func (m *Menu) Draw(screen *ebiten.Image) {
	if !m.active {
		return
	}
	for _, w := range m.children {
		if w.IsActive() {
			w.Draw(screen)
		}
	}
}

// IsHovered reports whether any active child is hovered.
func (m *Menu) IsHovered() bool {
	if !m.active {
		return false
	}
	for _, w := range m.children {
		if w.IsActive() && w.IsHovered() {
			return true
		}
	}
	return false
}

func (m *Menu) IsActive() bool        { return m.active }
func (m *Menu) SetActive(active bool) { m.active = active }

// ButtonColumn lays out one button per label, centred horizontally, starting at top.
func ButtonColumn(screenWidth, screenHeight int, top float64, labels []string, actions []func()) []*Button {
	w := float64(screenWidth) * config.ButtonWidthRatio
	h := float64(screenHeight) * config.ButtonHeightRatio
	gap := float64(screenHeight) * config.ButtonSpacingRatio
	x := (float64(screenWidth) - w) / 2

	buttons := make([]*Button, 0, len(labels))
	for i, label := range labels {
		var action func()
		if i < len(actions) {
			action = actions[i]
		}
		buttons = append(buttons, NewButton(x, top+float64(i)*(h+gap), w, h, label, action))
	}
	return buttons
}
