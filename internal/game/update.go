package game

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/invasion/internal/object"
	"github.com/tomz197/invasion/internal/sound"
)

// Explosion parameters for a destroyed alien and for the ship.
const (
	alienSparks    = 8
	alienSparkSpd  = 2.0
	alienSparkLife = 30

	shipSparks    = 24
	shipSparkSpd  = 3.0
	shipSparkLife = 45
)

// fireBullet shoots if the fire key is held, the cooldown ran out and the bullet cap
// is not reached.
func (c *Controller) fireBullet() {
	s := c.settings
	if !c.shooting || c.cooldown != 0 || len(c.bullets) >= s.BulletsAllowed {
		return
	}
	c.bullets = append(c.bullets, object.NewBullet(c.ship, s.BulletWidth, s.BulletHeight, s.BulletColor))
	c.cooldown = s.BulletCooldownTicks
	c.sound.Play(sound.EffectFire)
}

// updateBullets moves bullets, drops those that left the screen and resolves hits.
func (c *Controller) updateBullets() {
	kept := c.bullets[:0]
	for _, b := range c.bullets {
		if !b.Update(c.settings.BulletSpeed) {
			kept = append(kept, b)
		}
	}
	clear(c.bullets[len(kept):])
	c.bullets = kept

	c.checkBulletAlienCollisions()
}

// checkBulletAlienCollisions removes every alien hit by a bullet and scores them.
// A bullet destroys all live aliens it overlaps and is spent unless bullets pierce.
// A cleared fleet starts the next level.
func (c *Controller) checkBulletAlienCollisions() {
	if len(c.bullets) == 0 || len(c.aliens) == 0 {
		return
	}

	c.grid.Clear()
	for i, a := range c.aliens {
		c.grid.Insert(a.Rect, i)
	}
	if cap(c.dead) < len(c.aliens) {
		c.dead = make([]bool, len(c.aliens))
	}
	dead := c.dead[:len(c.aliens)]
	clear(dead)

	kills := 0
	keptBullets := c.bullets[:0]
	for _, b := range c.bullets {
		hits := 0
		c.grid.QueryAround(b.Rect, func(idx int) bool {
			if !dead[idx] && b.Rect.Intersects(c.aliens[idx].Rect) {
				dead[idx] = true
				hits++
			}
			return false
		})
		kills += hits
		if hits == 0 || c.settings.BulletPiercing {
			keptBullets = append(keptBullets, b)
		}
	}
	clear(c.bullets[len(keptBullets):])
	c.bullets = keptBullets

	if kills == 0 {
		return
	}

	keptAliens := c.aliens[:0]
	for i, a := range c.aliens {
		if dead[i] {
			c.explode(float64(a.Rect.CenterX()), float64(a.Rect.CenterY()), alienSparks, alienSparkSpd, alienSparkLife, c.settings.AlienColor)
			continue
		}
		keptAliens = append(keptAliens, a)
	}
	clear(c.aliens[len(keptAliens):])
	c.aliens = keptAliens

	c.stats.AddKills(c.settings.AlienPoints, kills)
	c.scoreboard.PrepScore()
	c.scoreboard.CheckHighScore()
	c.sound.Play(sound.EffectAlienHit)

	if len(c.aliens) == 0 {
		c.nextLevel()
	}
}

// nextLevel replaces a destroyed fleet and speeds the game up.
func (c *Controller) nextLevel() {
	c.bullets = c.bullets[:0]
	c.aliens = c.createFleet()
	c.settings.IncreaseSpeed()
	c.stats.Level++
	c.scoreboard.PrepLevel()
	c.sound.Play(sound.EffectLevelUp)
	c.log.Debug("level cleared", "level", c.stats.Level, "alien_points", c.settings.AlienPoints)
}

// updateAliens moves the fleet and checks whether it reached the ship or the bottom.
func (c *Controller) updateAliens() {
	s := c.settings
	if object.FleetAtEdge(c.aliens, c.screen, s.FleetDirection) {
		object.DropFleet(c.aliens, s.FleetDropSpeed)
		s.ReverseFleet()
	}
	for _, a := range c.aliens {
		a.Update(s.AlienSpeed, s.FleetDirection)
	}

	for _, a := range c.aliens {
		if a.Rect.Intersects(c.ship.Rect) {
			c.shipHit()
			return
		}
	}
	if object.FleetReachedBottom(c.aliens, c.screen) {
		c.shipHit()
	}
}

// shipHit takes a ship away. With ships left the field is rebuilt after a short pause,
// otherwise the game ends. Score and level are kept either way.
func (c *Controller) shipHit() {
	x, y := float64(c.ship.Rect.CenterX()), float64(c.ship.Rect.CenterY())

	c.stats.ShipsLeft--
	c.scoreboard.PrepShips()
	c.sound.Play(sound.EffectShipHit)

	if c.stats.ShipsLeft > 0 {
		c.resetField()
		c.explode(x, y, shipSparks, shipSparkSpd, shipSparkLife, c.settings.ShipColor)
		c.log.Info("ship hit", "ships_left", c.stats.ShipsLeft)
		c.sleep(ShipHitPause)
		return
	}

	c.explode(x, y, shipSparks, shipSparkSpd, shipSparkLife, c.settings.ShipColor)
	c.state = StateInactive
	c.log.Info("game over", "score", c.stats.Score, "level", c.stats.Level, "high_score", c.stats.HighScore)
}

// explode spawns a burst of particles at (x, y).
func (c *Controller) explode(x, y float64, count int, speed float64, lifetime int, col colorful.Color) {
	c.particles = append(c.particles, object.SpawnExplosion(x, y, count, speed, lifetime, col)...)
}

// updateParticles advances particles and returns burnt out ones to the pool.
func (c *Controller) updateParticles() {
	kept := c.particles[:0]
	for _, p := range c.particles {
		if p.Update() {
			object.ReleaseObject(p)
			continue
		}
		kept = append(kept, p)
	}
	clear(c.particles[len(kept):])
	c.particles = kept
}

// releaseParticles removes every particle.
func (c *Controller) releaseParticles() {
	for _, p := range c.particles {
		object.ReleaseObject(p)
	}
	clear(c.particles)
	c.particles = c.particles[:0]
}
