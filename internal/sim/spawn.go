package sim

// fire launches a bullet from just ahead of the player if the cooldown has
// elapsed.
func (sm *Simulation) fire() {
	s := sm.Session
	if s.FireCooldown > 0 {
		return
	}
	i, err := s.Bullets.Allocate()
	if err != nil {
		sm.drop(PoolBullets)
		return
	}
	p := s.Player.Pos
	s.Bullets.Get(i).Pos = Vec3{p.X, p.Y, p.Z - 1}
	s.FireCooldown = FireCooldownTicks
	sm.bus.Emit(Event{Type: EventShot, Pos: p})
}

// spawnEnemy places a random archetype at the far end of the arena.
func (sm *Simulation) spawnEnemy() {
	s := sm.Session
	i, err := s.Enemies.Allocate()
	if err != nil {
		sm.drop(PoolEnemies)
		return
	}
	r := sm.rng
	x := float32(r.Intn(600)-300) / 100
	y := float32(r.Intn(200)-100) / 100
	kind := Archetype(r.Intn(ArchetypeCount))
	*s.Enemies.Get(i) = Enemy{
		Pos:    Vec3{x, y, EnemySpawnZ},
		Kind:   kind,
		Health: kind.Spec().Health,
	}
}

// spawnEnemyBullet drops a projectile at pos travelling toward the camera.
func (sm *Simulation) spawnEnemyBullet(pos Vec3) {
	s := sm.Session
	i, err := s.EnemyBullets.Allocate()
	if err != nil {
		sm.drop(PoolEnemyBullets)
		return
	}
	s.EnemyBullets.Get(i).Pos = pos
}

// burst emits up to BurstSize particles at pos, limited by free slots.
func (sm *Simulation) burst(pos Vec3) {
	s := sm.Session
	r := sm.rng
	n := 0
	for ; n < BurstSize; n++ {
		i, err := s.Particles.Allocate()
		if err != nil {
			break
		}
		p := s.Particles.Get(i)
		p.Pos = pos
		p.Vel.X = float32(r.Intn(200)-100) / 200
		p.Vel.Y = float32(r.Intn(200)-100) / 200
		p.Vel.Z = float32(r.Intn(200)-100) / 200
		p.Life = ParticleBaseLife + r.Intn(ParticleLifeJit)
		p.Color = burstColors[r.Intn(len(burstColors))]
	}
	if n < BurstSize {
		sm.drop(PoolParticles)
	}
}

func (sm *Simulation) drop(id PoolID) {
	sm.Session.Drops[id]++
	sm.bus.Emit(Event{Type: EventSpawnDropped, Data: int(id)})
}
