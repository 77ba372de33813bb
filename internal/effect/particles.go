// internal/effect/particles.go
package effect

import (
	"image/color"
	"math"

	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/utils"
)

// Particles simulates damage sparks under gravity.
type Particles struct {
	rng   *utils.PRNG
	items []component.Particle
}

func NewParticles(rng *utils.PRNG) *Particles {
	return &Particles{rng: rng}
}

// Spawn throws count sparks from pos in random directions. The oldest sparks are
// dropped when the pool is full.
func (p *Particles) Spawn(pos component.Position, base color.RGBA, nodeSize float64, count int) {
	for range count {
		angle := p.rng.Range(0, 2*math.Pi)
		speed := p.rng.Range(config.ParticleSpeedMin, config.ParticleSpeedMax)
		p.items = append(p.items, component.Particle{
			Position:    pos,
			VX:          math.Cos(angle) * speed,
			VY:          math.Sin(angle) * speed,
			Lifetime:    config.ParticleLifetime,
			MaxLifetime: config.ParticleLifetime,
			Size:        p.rng.Range(1, math.Max(1, nodeSize/config.ParticleSizeScaling)),
			Color:       p.vary(base),
		})
	}
	if over := len(p.items) - config.MaxParticles; over > 0 {
		p.items = append(p.items[:0], p.items[over:]...)
	}
}

func (p *Particles) vary(c color.RGBA) color.RGBA {
	shift := func(v uint8) uint8 {
		d := p.rng.Intn(2*config.ParticleColorVariance+1) - config.ParticleColorVariance
		return uint8(utils.Clamp(float64(int(v)+d), 0, 255))
	}
	return color.RGBA{R: shift(c.R), G: shift(c.G), B: shift(c.B), A: c.A}
}

// Update moves the sparks and drops the spent ones.
func (p *Particles) Update(deltaTime float64) {
	kept := p.items[:0]
	for _, it := range p.items {
		it.Lifetime -= deltaTime
		if it.Lifetime <= 0 {
			continue
		}
		it.VY += config.ParticleGravity * deltaTime
		it.Position.X += it.VX * deltaTime
		it.Position.Y += it.VY * deltaTime
		kept = append(kept, it)
	}
	p.items = kept
}

func (p *Particles) Items() []component.Particle { return p.items }
func (p *Particles) Len() int                    { return len(p.items) }
func (p *Particles) Clear()                      { p.items = nil }
