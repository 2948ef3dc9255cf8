// Package renderer holds the animation primitives: damped springs, clamped
// interpolation and keyframe easing. Everything is a pure function of frame
// numbers; nothing here reads a clock.
package renderer

import "math"

// SpringConfig describes a mass-spring-damper. Zero fields fall back to
// stiffness 100, damping 10, mass 1.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

func (c SpringConfig) withDefaults() SpringConfig {
	if c.Stiffness <= 0 {
		c.Stiffness = 100
	}
	if c.Damping <= 0 {
		c.Damping = 10
	}
	if c.Mass <= 0 {
		c.Mass = 1
	}
	return c
}

// DampingRatio is ζ = c / (2·√(k·m)); below 1 the spring overshoots.
func (c SpringConfig) DampingRatio() float64 {
	c = c.withDefaults()
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// Spring returns the progress of a spring released from 0 towards 1 at rest,
// sampled elapsed frames after its start. It is exactly 0 for elapsed <= 0 and
// converges to 1; under-damped configs overshoot before settling.
func Spring(elapsed, fps int, cfg SpringConfig) float64 {
	if elapsed <= 0 || fps <= 0 {
		return 0
	}
	cfg = cfg.withDefaults()
	t := float64(elapsed) / float64(fps)

	omega0 := math.Sqrt(cfg.Stiffness / cfg.Mass)
	zeta := cfg.Damping / (2 * math.Sqrt(cfg.Stiffness*cfg.Mass))

	// remaining is the distance left to the target; 1 at rest when released
	var remaining float64
	switch {
	case zeta < 1:
		omega1 := omega0 * math.Sqrt(1-zeta*zeta)
		envelope := math.Exp(-zeta * omega0 * t)
		remaining = envelope * (math.Cos(omega1*t) + (zeta*omega0/omega1)*math.Sin(omega1*t))
	case zeta == 1:
		remaining = math.Exp(-omega0*t) * (1 + omega0*t)
	default:
		root := math.Sqrt(zeta*zeta - 1)
		r1 := -omega0 * (zeta - root)
		r2 := -omega0 * (zeta + root)
		remaining = (r2*math.Exp(r1*t) - r1*math.Exp(r2*t)) / (r2 - r1)
	}
	return 1 - remaining
}

// SpringFromTo maps spring progress onto [from, to] without clamping, so
// overshoot carries through.
func SpringFromTo(elapsed, fps int, cfg SpringConfig, from, to float64) float64 {
	return Lerp(from, to, Spring(elapsed, fps, cfg))
}
