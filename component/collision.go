package component

import "github.com/jakecoffman/cp"

// Collides reports whether the hitboxes of player and enemy overlap. Boxes
// that only share an edge do not collide.
func Collides(player, enemy Body) bool {
	if player == nil || enemy == nil {
		return false
	}
	px, py := player.Position()
	ex, ey := enemy.Position()
	return overlaps(Box(px, py, player.Hitbox()), Box(ex, ey, enemy.Hitbox()))
}

func overlaps(a, b cp.BB) bool {
	return a.L < b.R &&
		b.L < a.R &&
		a.B < b.T &&
		b.B < a.T
}
