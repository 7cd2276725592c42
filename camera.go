package main

import rl "github.com/gen2brain/raylib-go/raylib"

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Set `glideSpeed` higher if you want snappier motion.
const glideSpeed = float32(22.0)

// updateGlide eases the drawn player position toward its cell center. The
// grid position itself always moves a whole cell per key press.
func updateGlide(cur, target rl.Vector2, dt float32) rl.Vector2 {
	t := clamp(glideSpeed*dt, 0, 1)
	return rl.Vector2{
		X: cur.X + (target.X-cur.X)*t,
		Y: cur.Y + (target.Y-cur.Y)*t,
	}
}
