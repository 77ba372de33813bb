// internal/effect/shake.go
package effect

import "node-zero/internal/utils"

// Shake offsets the camera by a random amount that fades out over its duration.
type Shake struct {
	rng       *utils.PRNG
	intensity float64
	duration  float64
	timer     float64
	offsetX   float64
	offsetY   float64
}

func NewShake(rng *utils.PRNG) *Shake {
	return &Shake{rng: rng}
}

// Trigger starts a shake. A weaker shake never cuts a stronger running one short.
func (s *Shake) Trigger(intensity, duration float64) {
	if s.Active() && intensity < s.intensity*s.remaining() {
		return
	}
	s.intensity = intensity
	s.duration = duration
	s.timer = duration
}

func (s *Shake) remaining() float64 {
	if s.duration <= 0 {
		return 0
	}
	return s.timer / s.duration
}

func (s *Shake) Update(deltaTime float64) {
	if s.timer <= 0 {
		s.offsetX, s.offsetY = 0, 0
		return
	}
	s.timer -= deltaTime
	if s.timer <= 0 {
		s.timer = 0
		s.offsetX, s.offsetY = 0, 0
		return
	}
	amp := s.intensity * s.remaining()
	s.offsetX = s.rng.Range(-amp, amp)
	s.offsetY = s.rng.Range(-amp, amp)
}

func (s *Shake) Active() bool { return s.timer > 0 }

// Offset is the current camera displacement.
func (s *Shake) Offset() (float64, float64) { return s.offsetX, s.offsetY }

func (s *Shake) Clear() {
	s.timer = 0
	s.offsetX, s.offsetY = 0, 0
}
