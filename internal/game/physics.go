package game

import "github.com/vovakirdan/blockflap/internal/config"

// stepPhysics advances the player by one frame. A flap sets the velocity to
// the jump value and skips gravity for that frame; otherwise gravity is added.
// The position then moves by the new velocity.
func stepPhysics(p *Player, flap bool, phys config.Physics) {
	if flap {
		p.Vel = phys.Jump
	} else {
		p.Vel += phys.Gravity
	}
	p.Y += p.Vel
}
