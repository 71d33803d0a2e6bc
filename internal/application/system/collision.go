package system

import (
	"github.com/younwookim/neondodge/internal/domain/entity"
	"github.com/younwookim/neondodge/internal/domain/geom"
)

// PlayerHitsObstacle tests the player's hitbox against an obstacle.
// The square obstacle is treated as its inscribed circle.
func PlayerHitsObstacle(player *entity.Player, obstacle *entity.Obstacle) bool {
	dist := geom.Distance(player.Position, obstacle.Position)
	return dist < player.HitboxRadius+obstacle.Size/2
}

// PlayerHitsOrb tests the player's hitbox against an orb
func PlayerHitsOrb(player *entity.Player, orb *entity.EnergyOrb) bool {
	dist := geom.Distance(player.Position, orb.Position)
	return dist < player.HitboxRadius+orb.Radius
}

// IsOffScreen reports whether pos lies outside the playfield grown by size on every side
func IsOffScreen(pos geom.Vector2, size, screenW, screenH float64) bool {
	margin := size
	return pos.X < -margin ||
		pos.X > screenW+margin ||
		pos.Y < -margin ||
		pos.Y > screenH+margin
}
