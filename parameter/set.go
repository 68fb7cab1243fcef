// Package parameter defines the flat tunable parameter record ("preset")
// shared by every simulation component, its JSON exchange format, boundary
// validation, and the interpolation used by preset crossfades.
package parameter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lixenwraith/synaptic/core"
)

// Set is a named, complete snapshot of all tunable parameters.
// It is the unit of save/load and of transition interpolation. Values are
// validated at the boundary (Parse / Validate); the simulation core assumes
// a fully-populated, in-range Set
type Set struct {
	Name string `json:"name"`

	NodeCount            int     `json:"nodeCount"`
	NodeSpeed            float64 `json:"nodeSpeed"`
	ActivitySpeed        float64 `json:"activitySpeed"`
	ConnectionOpacity    float64 `json:"connectionOpacity"`
	SpaceSize            float64 `json:"spaceSize"`
	MouseInfluenceRadius float64 `json:"mouseInfluenceRadius"`

	BackgroundColor core.RGB `json:"backgroundColor"`
	NodeColor       core.RGB `json:"nodeColor"`
	ConnectionColor core.RGB `json:"connectionColor"`
	ParticleColor   core.RGB `json:"particleColor"`
	RippleColor     core.RGB `json:"rippleColor"`

	ShowAllConnections bool `json:"showAllConnections"`
	ShowParticles      bool `json:"showParticles"`
	ShowRipples        bool `json:"showRipples"`

	ParticleCount float64 `json:"particleCount"`
	ParticleSpeed float64 `json:"particleSpeed"`
	ParticleSize  float64 `json:"particleSize"`

	RippleIntensity float64 `json:"rippleIntensity"`
	RippleDuration  float64 `json:"rippleDuration"`
	RippleSize      float64 `json:"rippleSize"`

	WallRestitution float64 `json:"wallRestitution"`
	WallFriction    float64 `json:"wallFriction"`
}

// exchangeKeys lists every key a complete preset document must carry.
// Absent colors and toggles would otherwise decode to zero values and slip
// past the range checks
var exchangeKeys = []string{
	"name", "nodeCount", "nodeSpeed", "activitySpeed", "connectionOpacity",
	"spaceSize", "mouseInfluenceRadius", "backgroundColor", "nodeColor",
	"connectionColor", "particleColor", "rippleColor", "showAllConnections",
	"showParticles", "showRipples", "particleCount", "particleSpeed",
	"particleSize", "rippleIntensity", "rippleDuration", "rippleSize",
	"wallRestitution", "wallFriction",
}

// Parse decodes and validates a preset from its JSON exchange form.
// This is the boundary guard: malformed, incomplete or out-of-range input
// never reaches the simulation core
func Parse(data []byte) (Set, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Set{}, fmt.Errorf("decode preset: %w", err)
	}

	var missing []string
	for _, k := range exchangeKeys {
		if _, ok := raw[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return Set{}, fmt.Errorf("%w: missing keys: %s", ErrInvalid, strings.Join(missing, ", "))
	}

	var s Set
	if err := json.Unmarshal(data, &s); err != nil {
		return Set{}, fmt.Errorf("decode preset: %w", err)
	}
	if err := Validate(s); err != nil {
		return Set{}, err
	}
	return s, nil
}

// Encode serializes a preset to its JSON exchange form
func Encode(s Set) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
