package parameter

import (
	"math"

	"github.com/lixenwraith/synaptic/vmath"
)

// Lerp blends two complete parameter sets at eased progress t in [0,1].
// Scalars interpolate linearly, colors blend per RGB channel, booleans snap
// from the source value to the target value once t crosses 0.5, and the node
// count is interpolated then rounded to the nearest integer. The result keeps
// the source name; the transition engine stamps the target name on completion
func Lerp(from, to Set, t float64) Set {
	out := from
	snap := t >= 0.5

	out.NodeCount = int(math.Round(vmath.Lerp(float64(from.NodeCount), float64(to.NodeCount), t)))
	out.NodeSpeed = vmath.Lerp(from.NodeSpeed, to.NodeSpeed, t)
	out.ActivitySpeed = vmath.Lerp(from.ActivitySpeed, to.ActivitySpeed, t)
	out.ConnectionOpacity = vmath.Lerp(from.ConnectionOpacity, to.ConnectionOpacity, t)
	out.SpaceSize = vmath.Lerp(from.SpaceSize, to.SpaceSize, t)
	out.MouseInfluenceRadius = vmath.Lerp(from.MouseInfluenceRadius, to.MouseInfluenceRadius, t)

	out.BackgroundColor = from.BackgroundColor.Lerp(to.BackgroundColor, t)
	out.NodeColor = from.NodeColor.Lerp(to.NodeColor, t)
	out.ConnectionColor = from.ConnectionColor.Lerp(to.ConnectionColor, t)
	out.ParticleColor = from.ParticleColor.Lerp(to.ParticleColor, t)
	out.RippleColor = from.RippleColor.Lerp(to.RippleColor, t)

	if snap {
		out.ShowAllConnections = to.ShowAllConnections
		out.ShowParticles = to.ShowParticles
		out.ShowRipples = to.ShowRipples
	}

	out.ParticleCount = vmath.Lerp(from.ParticleCount, to.ParticleCount, t)
	out.ParticleSpeed = vmath.Lerp(from.ParticleSpeed, to.ParticleSpeed, t)
	out.ParticleSize = vmath.Lerp(from.ParticleSize, to.ParticleSize, t)

	out.RippleIntensity = vmath.Lerp(from.RippleIntensity, to.RippleIntensity, t)
	out.RippleDuration = vmath.Lerp(from.RippleDuration, to.RippleDuration, t)
	out.RippleSize = vmath.Lerp(from.RippleSize, to.RippleSize, t)

	out.WallRestitution = vmath.Lerp(from.WallRestitution, to.WallRestitution, t)
	out.WallFriction = vmath.Lerp(from.WallFriction, to.WallFriction, t)

	return out
}
