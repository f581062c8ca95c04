// Package game implements blockflap: a gravity-affected block that must pass
// through the gaps of scrolling obstacles. The package is pure simulation and
// rendering into a core.Canvas; the platform supplies frame scheduling, input
// and sound.
package game

import "fmt"

// Player is the block. X and Size are fixed for the session.
type Player struct {
	X    float64 // Fixed horizontal position (left edge)
	Y    float64 // Vertical position (top edge)
	Vel  float64 // Vertical velocity in px/frame, positive is down
	Size float64 // Width and height
}

// Obstacle is a pipe pair with a gap. GapY is chosen at spawn and never
// changes.
type Obstacle struct {
	X    float64 // Left edge
	GapY float64 // Vertical center of the gap
}

// queueCapacity is the number of obstacles in flight. The design keeps
// exactly one.
const queueCapacity = 1

// ObstacleQueue is a fixed-capacity FIFO of obstacles ordered by spawn time:
// the front is the oldest, leftmost obstacle.
type ObstacleQueue struct {
	items [queueCapacity]Obstacle
	head  int
	n     int
}

// Len returns the number of queued obstacles.
func (q *ObstacleQueue) Len() int {
	return q.n
}

// Front returns the oldest obstacle. Panics on an empty queue.
func (q *ObstacleQueue) Front() Obstacle {
	if q.n == 0 {
		panic("game: front of empty obstacle queue")
	}
	return q.items[q.head]
}

// PopFront removes and returns the oldest obstacle. Panics on an empty queue.
func (q *ObstacleQueue) PopFront() Obstacle {
	o := q.Front()
	q.head = (q.head + 1) % queueCapacity
	q.n--
	return o
}

// PushBack appends an obstacle. Panics when the queue is full.
func (q *ObstacleQueue) PushBack(o Obstacle) {
	if q.n == queueCapacity {
		panic(fmt.Sprintf("game: obstacle queue full (capacity %d)", queueCapacity))
	}
	q.items[(q.head+q.n)%queueCapacity] = o
	q.n++
}

// Each calls fn for every obstacle from front to back. fn may modify the
// obstacle in place.
func (q *ObstacleQueue) Each(fn func(o *Obstacle)) {
	for i := 0; i < q.n; i++ {
		fn(&q.items[(q.head+i)%queueCapacity])
	}
}

// Slice returns a copy of the queued obstacles from front to back.
func (q *ObstacleQueue) Slice() []Obstacle {
	out := make([]Obstacle, 0, q.n)
	q.Each(func(o *Obstacle) {
		out = append(out, *o)
	})
	return out
}

// Reset empties the queue.
func (q *ObstacleQueue) Reset() {
	q.head = 0
	q.n = 0
}

// Session is the whole mutable world state of one game. It is owned by the
// Loop; nothing else keeps a reference across frames.
type Session struct {
	Player    Player
	Obstacles ObstacleQueue
	Score     int
	GameOver  bool
	Frames    int
}
