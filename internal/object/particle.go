package object

import (
	"image/color"
	"math"
	"math/rand"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/invasion/internal/physics"
)

// particleSize is the edge length of a particle in pixels.
const particleSize = 4

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived spark left behind by a destroyed alien.
// Particles are cosmetic and never collide.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity in pixels per tick
	Lifetime    int     // Ticks remaining
	MaxLifetime int     // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay per tick (1.0 = no drag)
	Color       colorful.Color
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy float64, lifetime int, c colorful.Color) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.92
	p.Color = c
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion creates particles in a circular burst around (x, y).
func SpawnExplosion(x, y float64, count int, speed float64, lifetime int, c colorful.Color) []*Particle {
	particles := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		// Random direction
		angle := rand.Float64() * 2 * math.Pi
		// Random speed variation (50% to 150%)
		spd := speed * (0.5 + rand.Float64())
		// Random lifetime variation (50% to 100%)
		life := lifetime/2 + rand.Intn(lifetime/2+1)

		p := NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life, c)
		particles = append(particles, p)
	}
	return particles
}

// Update moves the particle. Returns true once it has burnt out.
func (p *Particle) Update() (remove bool) {
	p.Lifetime--
	if p.Lifetime <= 0 {
		return true
	}

	p.VX *= p.Drag
	p.VY *= p.Drag
	p.X += p.VX
	p.Y += p.VY

	return false
}

// Fade returns the particle color blended toward bg as its lifetime runs out.
func (p *Particle) Fade(bg colorful.Color) colorful.Color {
	if p.MaxLifetime <= 0 {
		return bg
	}
	t := 1 - float64(p.Lifetime)/float64(p.MaxLifetime)
	return p.Color.BlendRgb(bg, t).Clamped()
}

// DrawFaded renders the particle as a small square fading into bg.
func (p *Particle) DrawFaded(surface Surface, bg colorful.Color) {
	rect := physics.Rect{
		X: physics.Snap(p.X) - particleSize/2,
		Y: physics.Snap(p.Y) - particleSize/2,
		W: particleSize,
		H: particleSize,
	}
	var c color.Color = p.Fade(bg)
	surface.FillRect(rect, c)
}
