package parameter

import (
	"github.com/lixenwraith/synaptic/core"
)

// Default is the shipped starting configuration
func Default() Set {
	return Set{
		Name:                 "Synaptic",
		NodeCount:            12,
		NodeSpeed:            1.0,
		ActivitySpeed:        1.5,
		ConnectionOpacity:    0.35,
		SpaceSize:            20,
		MouseInfluenceRadius: 6,
		BackgroundColor:      core.MustHex("#0a0a14"),
		NodeColor:            core.MustHex("#00d4ff"),
		ConnectionColor:      core.MustHex("#3a6ea5"),
		ParticleColor:        core.MustHex("#ffdd66"),
		RippleColor:          core.MustHex("#66f0ff"),
		ShowAllConnections:   true,
		ShowParticles:        true,
		ShowRipples:          true,
		ParticleCount:        6,
		ParticleSpeed:        0.8,
		ParticleSize:         0.15,
		RippleIntensity:      1.0,
		RippleDuration:       1.6,
		RippleSize:           1.0,
		WallRestitution:      0.8,
		WallFriction:         0.95,
	}
}

// BuiltIn returns the shipped preset library, Default first
func BuiltIn() []Set {
	ember := Default()
	ember.Name = "Ember"
	ember.NodeCount = 8
	ember.NodeSpeed = 0.6
	ember.ActivitySpeed = 0.9
	ember.BackgroundColor = core.MustHex("#140a08")
	ember.NodeColor = core.MustHex("#ff8c3a")
	ember.ConnectionColor = core.MustHex("#a54e2a")
	ember.ParticleColor = core.MustHex("#ffd27d")
	ember.RippleColor = core.MustHex("#ff6a2a")
	ember.ParticleCount = 3
	ember.RippleDuration = 2.4
	ember.WallRestitution = 0.6

	storm := Default()
	storm.Name = "Storm"
	storm.NodeCount = 20
	storm.NodeSpeed = 1.8
	storm.ActivitySpeed = 4.0
	storm.BackgroundColor = core.MustHex("#05060f")
	storm.NodeColor = core.MustHex("#c0c8ff")
	storm.ConnectionColor = core.MustHex("#5560c0")
	storm.ParticleColor = core.MustHex("#ffffff")
	storm.RippleColor = core.MustHex("#8090ff")
	storm.ParticleCount = 14
	storm.ParticleSpeed = 2.2
	storm.RippleIntensity = 1.6
	storm.RippleDuration = 0.8
	storm.WallRestitution = 0.95
	storm.WallFriction = 0.9

	drift := Default()
	drift.Name = "Drift"
	drift.NodeCount = 6
	drift.NodeSpeed = 0.3
	drift.ActivitySpeed = 0.6
	drift.ConnectionOpacity = 0.2
	drift.SpaceSize = 28
	drift.BackgroundColor = core.MustHex("#08100c")
	drift.NodeColor = core.MustHex("#52e09a")
	drift.ConnectionColor = core.MustHex("#2a6a4a")
	drift.ParticleColor = core.MustHex("#b8ffda")
	drift.RippleColor = core.MustHex("#52e09a")
	drift.ShowParticles = false
	drift.ParticleCount = 1
	drift.RippleDuration = 3.5

	return []Set{Default(), ember, storm, drift}
}
