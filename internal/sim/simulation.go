package sim

// Simulation owns the session, the RNG and the music volume setting and
// advances them one tick per Step.
type Simulation struct {
	Session *Session

	rng    *RNG
	bus    *EventBus
	volume int
}

// New creates a simulation with its own generator. bus may be nil.
func New(seed uint32, volume int, bus *EventBus) *Simulation {
	return &Simulation{
		Session: NewSession(),
		rng:     NewRNG(seed),
		bus:     bus,
		volume:  ClampVolume(volume),
	}
}

// Volume returns the current music level.
func (sm *Simulation) Volume() int { return sm.volume }

// SetVolume clamps level into range and publishes a change.
func (sm *Simulation) SetVolume(level int) {
	level = ClampVolume(level)
	if level == sm.volume {
		return
	}
	sm.volume = level
	sm.bus.Emit(Event{Type: EventVolumeChanged, Data: level})
}

// Counters returns the presentation counters.
func (sm *Simulation) Counters() Counters { return sm.Session.counters(sm.volume) }

// Step applies one tick of intents according to the session state.
func (sm *Simulation) Step(in Intents) {
	s := sm.Session
	switch s.State {
	case StateGameOver:
		if in.Restart {
			s.Reset()
			sm.bus.Emit(Event{Type: EventRestarted})
		}

	case StateConfigMenu:
		if in.ToggleMenu {
			s.State = StatePlaying
			sm.bus.Emit(Event{Type: EventMenuToggled, Data: int(s.State)})
			return
		}
		if in.VolumeUp {
			sm.SetVolume(sm.volume + 1)
		}
		if in.VolumeDown {
			sm.SetVolume(sm.volume - 1)
		}

	case StatePlaying:
		if in.ToggleMenu {
			s.State = StateConfigMenu
			sm.bus.Emit(Event{Type: EventMenuToggled, Data: int(s.State)})
			return
		}
		sm.tick(in)
	}
}

// tick is the Playing update in fixed order.
func (sm *Simulation) tick(in Intents) {
	s := sm.Session
	if s.FireCooldown > 0 {
		s.FireCooldown--
	}

	sm.advanceBullets()
	sm.advanceEnemies(SpeedScalar(s.Score))
	sm.advanceParticles()
	sm.resolveCollisions()

	if s.State == StatePlaying {
		sm.movePlayer(in.MoveX, in.MoveY)
		if in.Fire {
			sm.fire()
		}
		s.SpawnTimer++
		if s.SpawnTimer > SpawnCadence(s.Score) {
			sm.spawnEnemy()
			s.SpawnTimer = 0
		}
	}

	s.Time += TickDelta
}

func (sm *Simulation) advanceBullets() {
	s := sm.Session
	s.Bullets.Each(func(i int, b *Bullet) {
		b.Pos.Z -= BulletSpeed
		if b.Pos.Z < BulletCullZ {
			s.Bullets.Release(i)
		}
	})
	s.EnemyBullets.Each(func(i int, b *EnemyBullet) {
		b.Pos.Z += EnemyBulletSpeed
		if b.Pos.Z > EnemyBulletCullZ {
			s.EnemyBullets.Release(i)
		}
	})
}

func (sm *Simulation) advanceEnemies(speed float32) {
	s := sm.Session
	player := s.Player.Pos
	s.Enemies.Each(func(i int, e *Enemy) {
		next, shoot := stepEnemy(*e, player, speed)
		*e = next
		if shoot {
			sm.spawnEnemyBullet(e.Pos)
		}
		if e.Pos.Z > EnemyCullZ {
			s.Enemies.Release(i)
		}
	})
}

func (sm *Simulation) advanceParticles() {
	s := sm.Session
	s.Particles.Each(func(i int, p *Particle) {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel.Y -= ParticleGravity
		p.Life--
		if p.Life <= 0 {
			s.Particles.Release(i)
		}
	})
}

// movePlayer applies a bounded movement intent inside the arena box.
func (sm *Simulation) movePlayer(mx, my float32) {
	p := &sm.Session.Player.Pos
	mx = clampF(mx, -1, 1)
	my = clampF(my, -1, 1)
	p.X = clampF(p.X+mx*PlayerStepX, ArenaMinX, ArenaMaxX)
	p.Y = clampF(p.Y+my*PlayerStepY, ArenaMinY, ArenaMaxY)
}
