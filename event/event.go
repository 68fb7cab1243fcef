// Package event carries frame-local simulation events. The motion system is
// the sole producer; the ripple and audio consumers drain the queue within
// the same frame callback, so no synchronization is required.
package event

import (
	"github.com/lixenwraith/synaptic/vmath"
)

// Wall identifies which face of the bounding box an impact hit
type Wall uint8

const (
	WallLeft    Wall = iota // x = -HalfX
	WallRight               // x = +HalfX
	WallFloor               // y = -HalfY
	WallCeiling             // y = +HalfY
	WallBack                // z = -HalfZ
	WallFront               // z = +HalfZ, camera-facing
)

var wallNames = [...]string{"left", "right", "floor", "ceiling", "back", "front"}

func (w Wall) String() string {
	if int(w) >= len(wallNames) {
		return "unknown"
	}
	return wallNames[w]
}

// WallImpact describes one resolved wall collision
type WallImpact struct {
	Node   int         // node index at impact time
	Wall   Wall        // face identity
	Point  vmath.Vec3F // world-space contact point on the boundary
	Normal vmath.Vec3F // outward face normal
	Speed  float64     // pre-reflection outward speed along the normal
}
