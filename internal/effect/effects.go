// internal/effect/effects.go
package effect

import (
	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/event"
	"node-zero/internal/utils"
)

// Effects bundles the gameplay effects and drives them from game events.
type Effects struct {
	Particles *Particles
	Shake     *Shake
	Trails    *CollectTrails
}

func New(rng *utils.PRNG) *Effects {
	return &Effects{
		Particles: NewParticles(rng),
		Shake:     NewShake(rng),
		Trails:    NewCollectTrails(),
	}
}

// OnEvent reacts to hits and kills.
func (e *Effects) OnEvent(ev event.Event) {
	switch ev.Type {
	case event.NodeDamaged:
		e.Particles.Spawn(ev.Position, ShapeColor(ev.Shape), ev.Size, config.ParticleCount)
		e.Shake.Trigger(config.ShakeIntensity, config.ShakeDuration)
	case event.NodeDestroyed:
		e.Particles.Spawn(ev.Position, ShapeColor(ev.Shape), ev.Size, config.ParticleCount*2)
	case event.BossDefeated:
		e.Particles.Spawn(ev.Position, ShapeColor(component.Boss), ev.Size, config.ParticleCount*4)
		e.Shake.Trigger(config.ShakeIntensity*2, config.ShakeDuration*3)
	}
}

func (e *Effects) Update(deltaTime float64, collected []component.PointPickup) {
	e.Trails.Add(collected)
	e.Particles.Update(deltaTime)
	e.Shake.Update(deltaTime)
	e.Trails.Update(deltaTime)
}

func (e *Effects) Clear() {
	e.Particles.Clear()
	e.Shake.Clear()
	e.Trails.Clear()
}

var _ event.Listener = (*Effects)(nil)
