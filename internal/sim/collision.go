package sim

// resolveCollisions runs the three pairwise stages in fixed order.
func (sm *Simulation) resolveCollisions() {
	sm.bulletsVsEnemies()
	sm.enemyBulletsVsPlayer()
	sm.enemiesVsPlayer()
}

// bulletsVsEnemies lets each bullet damage at most the first enemy it
// overlaps, in pool order.
func (sm *Simulation) bulletsVsEnemies() {
	s := sm.Session
	s.Bullets.Each(func(bi int, b *Bullet) {
		for ei := 0; ei < s.Enemies.Cap(); ei++ {
			if !s.Enemies.Active(ei) {
				continue
			}
			e := s.Enemies.Get(ei)
			if b.Pos.Dist2(e.Pos) >= BulletEnemyRadius2 {
				continue
			}
			s.Bullets.Release(bi)
			e.Health--
			if e.Health <= 0 {
				s.Enemies.Release(ei)
				pts := e.Kind.Spec().Points
				s.Score += pts
				sm.burst(e.Pos)
				sm.bus.Emit(Event{Type: EventEnemyKilled, Pos: e.Pos, Kind: e.Kind, Data: pts})
			}
			return
		}
	})
}

func (sm *Simulation) enemyBulletsVsPlayer() {
	s := sm.Session
	s.EnemyBullets.Each(func(i int, b *EnemyBullet) {
		if s.Player.Pos.Dist2(b.Pos) >= EnemyBulletPlayerRadius2 {
			return
		}
		s.EnemyBullets.Release(i)
		sm.hitPlayer()
	})
}

func (sm *Simulation) enemiesVsPlayer() {
	s := sm.Session
	s.Enemies.Each(func(i int, e *Enemy) {
		if s.Player.Pos.Dist2(e.Pos) >= EnemyPlayerRadius2 {
			return
		}
		s.Enemies.Release(i)
		sm.hitPlayer()
		sm.burst(e.Pos)
	})
}

func (sm *Simulation) hitPlayer() {
	s := sm.Session
	s.Player.Health.Damage(1)
	sm.bus.Emit(Event{Type: EventPlayerHit, Pos: s.Player.Pos, Data: s.Player.Health.Current})
	if s.Player.Health.IsDead() && s.State != StateGameOver {
		s.State = StateGameOver
		sm.bus.Emit(Event{Type: EventGameOver, Data: s.Score})
	}
}
