package view

import (
	"fmt"

	"cubestorm/internal/sim"
)

// StatusLines renders the player-facing counters for the current state.
func StatusLines(c sim.Counters) []string {
	switch c.State {
	case sim.StateGameOver:
		return []string{
			"GAME OVER!",
			fmt.Sprintf("Final Score: %d", c.Score),
			"Enter=Restart | Esc=Exit",
		}
	case sim.StateConfigMenu:
		return []string{
			"CONFIG",
			fmt.Sprintf("Music volume: %d/%d %s", c.Volume, sim.MaxVolume, VolumeBar(c.Volume)),
			"+/-=Volume | Tab=Resume",
		}
	}
	return []string{
		fmt.Sprintf("Score: %d | Health: %d/%d", c.Score, c.Health, c.MaxHealth),
		"Arrows=Move Space=Shoot Tab=Menu Esc=Exit",
	}
}

// DebugLine summarises pool occupancy.
func DebugLine(c sim.Counters) string {
	return fmt.Sprintf("Enemies: %d | Bullets: %d | EBullets: %d | Particles: %d",
		c.Enemies, c.Bullets, c.EnemyBullets, c.Particles)
}

// VolumeBar draws level as a fixed-width gauge.
func VolumeBar(level int) string {
	level = sim.ClampVolume(level)
	bar := make([]byte, 0, sim.MaxVolume+2)
	bar = append(bar, '[')
	for i := 0; i < sim.MaxVolume; i++ {
		if i < level {
			bar = append(bar, '#')
		} else {
			bar = append(bar, '.')
		}
	}
	return string(append(bar, ']'))
}
