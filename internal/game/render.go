package game

import (
	"strconv"

	"github.com/vovakirdan/blockflap/internal/core"
)

// render draws the player, the pipes and the score onto the canvas. The
// canvas is already cleared to the background.
func (l *Loop) render() {
	p := l.session.Player
	l.canvas.FillRect(core.NewRect(p.X, p.Y, p.Size, p.Size), core.ColorPlayer)

	l.session.Obstacles.Each(func(o *Obstacle) {
		l.canvas.FillRect(l.obstacles.TopRect(*o), core.ColorObstacle)
		l.canvas.FillRect(l.obstacles.BottomRect(*o), core.ColorObstacle)
	})

	l.canvas.DrawText(l.cfg.Layout.ScoreX, l.cfg.Layout.ScoreY, strconv.Itoa(l.session.Score), core.ColorText)
}
